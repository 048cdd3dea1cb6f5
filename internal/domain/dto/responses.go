package dto

import (
	"github.com/google/uuid"
	"github.com/ougirez/revman/internal/revenue"
)

type PricingResponse struct {
	PropertyID int64                  `json:"property_id"`
	Year       int                    `json:"year"`
	Month      int                    `json:"month,omitempty"`
	Days       []revenue.DailyPricing `json:"days"`
}

type PerformanceResponse struct {
	ReportID   uuid.UUID             `json:"report_id"`
	PropertyID int64                 `json:"property_id"`
	Year       int                   `json:"year"`
	Months     []revenue.MonthResult `json:"months"`
	Summary    revenue.YearSummary   `json:"summary"`
}

type RecommendationsResponse struct {
	PropertyID      int64                    `json:"property_id"`
	Year            int                      `json:"year"`
	Recommendations []revenue.Recommendation `json:"recommendations"`
}

type AdviceFactsResponse struct {
	PropertyID int64    `json:"property_id"`
	Year       int      `json:"year"`
	Facts      []string `json:"facts"`
}
