package revenue

import (
	"fmt"
	"github.com/ougirez/revman/internal/pkg/constants"
	"github.com/shopspring/decimal"
)

var (
	highSeasonMultiplier = decimal.RequireFromString("1.30")
	weekendMultiplier    = decimal.RequireFromString("1.15")
	holidayMultiplier    = decimal.RequireFromString("1.40")

	peakDemandMultiplier    = decimal.RequireFromString("1.25")
	highDemandMultiplier    = decimal.RequireFromString("1.15")
	veryLowDemandMultiplier = decimal.RequireFromString("0.75")
	lowDemandMultiplier     = decimal.RequireFromString("0.85")
	neutralDemandMultiplier = decimal.NewFromInt(1)
)

// DemandMultiplier picks the occupancy tier. Tiers are checked top-down and the first match wins.
func DemandMultiplier(occupancyRate float64) decimal.Decimal {
	switch {
	case occupancyRate > 80:
		return peakDemandMultiplier
	case occupancyRate > 60:
		return highDemandMultiplier
	case occupancyRate < 15:
		return veryLowDemandMultiplier
	case occupancyRate < 30:
		return lowDemandMultiplier
	default:
		return neutralDemandMultiplier
	}
}

type PriceCalculator struct {
	basePrice decimal.Decimal
}

func NewPriceCalculator(basePrice float64) (*PriceCalculator, error) {
	if !finite(basePrice) || basePrice <= 0 {
		return nil, fmt.Errorf("base price %v: %w", basePrice, constants.ErrInvalidInput)
	}

	return &PriceCalculator{basePrice: decimal.NewFromFloat(basePrice)}, nil
}

// Price compounds the multipliers on the running price in a fixed order: season, weekend,
// holiday, demand. The result is rounded to a whole currency unit.
func (p *PriceCalculator) Price(flags DayFlags, occupancyRate float64) (float64, error) {
	if !finite(occupancyRate) || occupancyRate < 0 || occupancyRate > 100 {
		return 0, fmt.Errorf("occupancy %v: %w", occupancyRate, constants.ErrInvalidInput)
	}

	price := p.basePrice
	if flags.IsHighSeason {
		price = price.Mul(highSeasonMultiplier)
	}
	if flags.IsWeekend {
		price = price.Mul(weekendMultiplier)
	}
	if flags.IsHoliday {
		price = price.Mul(holidayMultiplier)
	}
	price = price.Mul(DemandMultiplier(occupancyRate))

	return price.Round(0).InexactFloat64(), nil
}

func DynamicPrice(basePrice float64, flags DayFlags, occupancyRate float64) (float64, error) {
	calc, err := NewPriceCalculator(basePrice)
	if err != nil {
		return 0, err
	}
	return calc.Price(flags, occupancyRate)
}

// DailyPricing is one priced calendar day.
type DailyPricing struct {
	Date          string  `json:"date"`
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	Day           int     `json:"day"`
	OccupancyRate float64 `json:"occupancy_rate"`
	Bookings      float64 `json:"bookings"`
	DynamicPrice  float64 `json:"dynamic_price"`
	DayFlags
}
