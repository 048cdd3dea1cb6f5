package domain

import "time"

type Year = int

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type Property struct {
	ID               int64     `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	BasePrice        float64   `db:"base_price" json:"base_price"`
	TotalRooms       int       `db:"total_rooms" json:"total_rooms"`
	HighSeasonMonths []int32   `db:"high_season_months" json:"high_season_months"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// OccupancyRecord is the recorded occupancy of one month.
type OccupancyRecord struct {
	PropertyID    int64     `db:"property_id" json:"property_id"`
	Year          Year      `db:"year" json:"year"`
	Month         int       `db:"month" json:"month"`
	OccupancyRate float64   `db:"occupancy_rate" json:"occupancy_rate"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

type Holiday struct {
	ID         int64     `db:"id" json:"id"`
	PropertyID int64     `db:"property_id" json:"property_id"`
	Month      int       `db:"month" json:"month"`
	Day        int       `db:"day" json:"day"`
	Name       string    `db:"name" json:"name"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// Closure marks a date the property does not sell rooms.
type Closure struct {
	PropertyID int64     `db:"property_id" json:"property_id"`
	Date       time.Time `db:"date" json:"date"`
	Reason     string    `db:"reason" json:"reason"`
}
