package revenue

import (
	"fmt"
	"github.com/ougirez/revman/internal/pkg/constants"
	"github.com/shopspring/decimal"
)

type MonthlyAggregate struct {
	Month             int     `json:"month"`
	DaysInMonth       int     `json:"days_in_month"`
	ActualBooking     float64 `json:"actual_booking"`
	ForecastBooking   float64 `json:"forecast_booking"`
	ActualOccupancy   float64 `json:"actual_occupancy"`
	ForecastOccupancy float64 `json:"forecast_occupancy"`
	DynamicPrice      float64 `json:"dynamic_price"`
	EstimatedRevenue  float64 `json:"estimated_revenue"`
	PotentialRevenue  float64 `json:"potential_revenue"`
	TargetRevenue     float64 `json:"target_revenue"`
	RevPAR            float64 `json:"revpar"`
	RevPARPercentage  float64 `json:"revpar_percentage"`
}

// Aggregate folds one month of priced days into revenue figures. DaysInMonth is the number of
// priced (open) days, which is the calendar length unless the property was closed.
func Aggregate(days []DailyPricing, point ForecastPoint, totalRooms int) (MonthlyAggregate, error) {
	if totalRooms <= 0 {
		return MonthlyAggregate{}, fmt.Errorf("total rooms %d: %w", totalRooms, constants.ErrConfiguration)
	}
	if len(days) == 0 {
		return MonthlyAggregate{}, fmt.Errorf("month %d has no priced days: %w", point.Month, constants.ErrInsufficientData)
	}

	sum := decimal.Zero
	for _, d := range days {
		if d.Month != point.Month {
			return MonthlyAggregate{}, fmt.Errorf("day %s does not belong to month %d: %w", d.Date, point.Month, constants.ErrInvalidInput)
		}
		sum = sum.Add(decimal.NewFromFloat(d.DynamicPrice))
	}

	daysInMonth := decimal.NewFromInt(int64(len(days)))
	rooms := decimal.NewFromInt(int64(totalRooms))
	avgPrice := sum.Div(daysInMonth)

	estimated := decimal.NewFromFloat(point.ForecastBooking).Mul(avgPrice).Mul(daysInMonth)
	potential := rooms.Mul(avgPrice).Mul(daysInMonth)

	return MonthlyAggregate{
		Month:             point.Month,
		DaysInMonth:       len(days),
		ActualBooking:     point.ActualBooking,
		ForecastBooking:   point.ForecastBooking,
		ActualOccupancy:   point.ActualOccupancy,
		ForecastOccupancy: point.ForecastOccupancy,
		DynamicPrice:      roundMoney(avgPrice),
		EstimatedRevenue:  roundMoney(estimated),
		PotentialRevenue:  roundMoney(potential),
		RevPAR:            roundMoney(safeDiv(estimated, rooms.Mul(daysInMonth))),
		RevPARPercentage:  roundMoney(percentOf(estimated, potential)),
	}, nil
}

// AllocateTargets spreads the yearly target (projected revenue plus uplift) over months by
// each month's share of projected revenue. The input slice is not modified.
func AllocateTargets(months []MonthlyAggregate, uplift float64) []MonthlyAggregate {
	out := append([]MonthlyAggregate(nil), months...)

	total := decimal.Zero
	for _, m := range out {
		total = total.Add(decimal.NewFromFloat(m.EstimatedRevenue))
	}
	yearlyTarget := total.Mul(decimal.NewFromFloat(1 + uplift))

	for i := range out {
		share := safeDiv(decimal.NewFromFloat(out[i].EstimatedRevenue), total)
		out[i].TargetRevenue = roundMoney(share.Mul(yearlyTarget))
	}

	return out
}

func roundMoney(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// safeDiv returns zero when the denominator is zero: a month with no capacity or no revenue
// yet is a legitimate "no data" state.
func safeDiv(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}

func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	return safeDiv(part, whole).Mul(decimal.NewFromInt(100))
}
