package revenue

import (
	"fmt"
	"github.com/ougirez/revman/internal/pkg/constants"
	"math"
)

const (
	minGrowthFactor = 1.05
	maxGrowthFactor = 1.25
	lowerBandFactor = 0.9
	upperBandFactor = 1.1
)

// HistoricalSample is one month of recorded occupancy.
type HistoricalSample struct {
	Month           int     `json:"month"`
	ActualBooking   float64 `json:"actual_booking"`
	ActualOccupancy float64 `json:"actual_occupancy"`
}

// SampleFromOccupancy converts a stored (month, occupancy) pair into a sample.
func SampleFromOccupancy(month int, occupancyRate float64, totalRooms int) HistoricalSample {
	return HistoricalSample{
		Month:           month,
		ActualBooking:   occupancyRate / 100 * float64(totalRooms),
		ActualOccupancy: occupancyRate,
	}
}

func SampleFromBookings(month int, booking float64, totalRooms int) HistoricalSample {
	s := HistoricalSample{Month: month, ActualBooking: booking}
	if totalRooms > 0 {
		s.ActualOccupancy = booking / float64(totalRooms) * 100
	}
	return s
}

type ForecastPoint struct {
	HistoricalSample
	GrowthFactor      float64 `json:"growth_factor"`
	ForecastBooking   float64 `json:"forecast_booking"`
	ForecastOccupancy float64 `json:"forecast_occupancy"`
	LowerBound        float64 `json:"lower_bound"`
	UpperBound        float64 `json:"upper_bound"`
}

type Forecaster struct {
	totalRooms int
	random     RandomSource
}

func NewForecaster(totalRooms int, random RandomSource) (*Forecaster, error) {
	if totalRooms <= 0 {
		return nil, fmt.Errorf("total rooms %d: %w", totalRooms, constants.ErrConfiguration)
	}
	if random == nil {
		random = NewClockSource()
	}

	return &Forecaster{totalRooms: totalRooms, random: random}, nil
}

// Forecast returns exactly twelve points ordered January to December. Growth factors are
// drawn in month order so a seeded source reproduces the same forecast.
func (f *Forecaster) Forecast(samples []HistoricalSample) ([]ForecastPoint, error) {
	byMonth := make(map[int]HistoricalSample, len(samples))
	for _, s := range samples {
		if s.Month < 1 || s.Month > 12 {
			return nil, fmt.Errorf("sample month %d: %w", s.Month, constants.ErrInvalidInput)
		}
		if _, dup := byMonth[s.Month]; dup {
			return nil, fmt.Errorf("duplicate sample for month %d: %w", s.Month, constants.ErrInvalidInput)
		}
		if !finite(s.ActualOccupancy) || !finite(s.ActualBooking) ||
			s.ActualOccupancy < 0 || s.ActualOccupancy > 100 || s.ActualBooking < 0 {
			return nil, fmt.Errorf("sample month %d occupancy %v: %w", s.Month, s.ActualOccupancy, constants.ErrInvalidInput)
		}
		byMonth[s.Month] = s
	}

	rooms := float64(f.totalRooms)
	points := make([]ForecastPoint, 12)
	for month := 1; month <= 12; month++ {
		sample, ok := byMonth[month]
		if !ok {
			sample = HistoricalSample{Month: month}
		}
		if sample.ActualBooking > rooms {
			sample.ActualBooking = rooms
		}

		growth := uniform(f.random, minGrowthFactor, maxGrowthFactor)
		if !finite(growth) {
			return nil, fmt.Errorf("growth factor %v for month %d: %w", growth, month, constants.ErrConfiguration)
		}
		booking := math.Min(rooms, sample.ActualBooking*growth)

		points[month-1] = ForecastPoint{
			HistoricalSample:  sample,
			GrowthFactor:      growth,
			ForecastBooking:   booking,
			ForecastOccupancy: booking / rooms * 100,
			LowerBound:        booking * lowerBandFactor,
			UpperBound:        booking * upperBandFactor,
		}
	}

	return points, nil
}
