package dto

import "github.com/ougirez/revman/internal/revenue"

type ReportQuery struct {
	PropertyID int64  `param:"id" validate:"required,gt=0"`
	Year       int    `query:"year" validate:"required,gte=1970,lte=2200"`
	Month      int    `query:"month" validate:"omitempty,gte=1,lte=12"`
	Seed       string `query:"seed" validate:"omitempty,number"`
}

type OccupancyItem struct {
	Month         int     `json:"month" validate:"required,gte=1,lte=12"`
	OccupancyRate float64 `json:"occupancy_rate" validate:"gte=0,lte=100"`
}

type UpsertOccupancyRequest struct {
	PropertyID int64           `param:"id" validate:"required,gt=0"`
	Year       int             `json:"year" validate:"required,gte=1970,lte=2200"`
	Items      []OccupancyItem `json:"items" validate:"required,min=1,max=12,dive"`
}

type BackfillHolidaysRequest struct {
	PropertyID int64  `param:"id" validate:"required,gt=0"`
	SourceURL  string `json:"source_url" validate:"omitempty,url"`
}

type PublishCardRequest struct {
	PropertyID int64  `param:"id" validate:"required,gt=0"`
	Year       int    `query:"year" validate:"required,gte=1970,lte=2200"`
	Month      int    `query:"month" validate:"required,gte=1,lte=12"`
	Seed       string `query:"seed" validate:"omitempty,number"`
}

// QuoteRequest prices a single night without touching the store.
type QuoteRequest struct {
	BasePrice     float64             `json:"base_price" validate:"required,gt=0"`
	Date          string              `json:"date" validate:"required,datetime=2006-01-02"`
	OccupancyRate float64             `json:"occupancy_rate" validate:"gte=0,lte=100"`
	Holidays      map[string]string   `json:"holidays"`
	HighSeason    []int               `json:"high_season_months" validate:"omitempty,dive,gte=1,lte=12"`
	WeekendRule   revenue.WeekendRule `json:"weekend_rule" validate:"omitempty,oneof=calendar day_mod_7"`
}

type QuoteResponse struct {
	Date           string                 `json:"date"`
	Price          float64                `json:"price"`
	Flags          revenue.DayFlags       `json:"flags"`
	Recommendation revenue.Recommendation `json:"recommendation"`
}
