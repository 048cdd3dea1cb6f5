package revenue

import (
	"github.com/shopspring/decimal"
)

const expenseJitter = 0.05

// ExpenseModel estimates operating expenses as a share of revenue. The share depends on
// season and occupancy:
//
//	high season, occupancy >= 70  0.65
//	high season, occupancy <  70  0.68
//	low season,  occupancy >= 50  0.70
//	low season,  occupancy <  50  0.72
type ExpenseModel struct {
	highSeason map[int]struct{}
}

func NewExpenseModel(highSeasonMonths []int) ExpenseModel {
	m := ExpenseModel{highSeason: make(map[int]struct{}, len(highSeasonMonths))}
	for _, month := range highSeasonMonths {
		m.highSeason[month] = struct{}{}
	}
	return m
}

func (m ExpenseModel) BaseRatio(month int, occupancyRate float64) float64 {
	_, high := m.highSeason[month]
	switch {
	case high && occupancyRate >= 70:
		return 0.65
	case high:
		return 0.68
	case occupancyRate >= 50:
		return 0.70
	default:
		return 0.72
	}
}

// Ratio applies jitter in [-0.05, 0.05] to the base ratio.
func (m ExpenseModel) Ratio(month int, occupancyRate, jitter float64) float64 {
	if jitter > expenseJitter {
		jitter = expenseJitter
	}
	if jitter < -expenseJitter {
		jitter = -expenseJitter
	}
	return m.BaseRatio(month, occupancyRate) * (1 + jitter)
}

func (m ExpenseModel) Expenses(estimatedRevenue float64, month int, occupancyRate, jitter float64) float64 {
	ratio := decimal.NewFromFloat(m.Ratio(month, occupancyRate, jitter))
	return roundMoney(decimal.NewFromFloat(estimatedRevenue).Mul(ratio))
}

// DrawJitter draws one expense jitter value from the source.
func DrawJitter(src RandomSource) float64 {
	return uniform(src, -expenseJitter, expenseJitter)
}

type PerformanceSnapshot struct {
	MonthlyAggregate
	OperatingExpenses    float64 `json:"operating_expenses"`
	ExpenseRatio         float64 `json:"expense_ratio"`
	GrossOperatingProfit float64 `json:"gross_operating_profit"`
	GOPPAR               float64 `json:"goppar"`
	GOPPARPercentage     float64 `json:"goppar_percentage"`
}

// Performance derives GOP based indicators. Zero denominators produce zero values.
func Performance(agg MonthlyAggregate, totalRooms int, operatingExpenses float64) PerformanceSnapshot {
	estimated := decimal.NewFromFloat(agg.EstimatedRevenue)
	expenses := decimal.NewFromFloat(operatingExpenses)
	gop := estimated.Sub(expenses)
	roomNights := decimal.NewFromInt(int64(totalRooms) * int64(agg.DaysInMonth))

	return PerformanceSnapshot{
		MonthlyAggregate:     agg,
		OperatingExpenses:    operatingExpenses,
		ExpenseRatio:         safeDiv(expenses, estimated).Round(4).InexactFloat64(),
		GrossOperatingProfit: roundMoney(gop),
		GOPPAR:               roundMoney(safeDiv(gop, roomNights)),
		GOPPARPercentage:     roundMoney(percentOf(gop, decimal.NewFromFloat(agg.PotentialRevenue))),
	}
}

type YearSummary struct {
	MonthsComputed       int     `json:"months_computed"`
	TotalRevenue         float64 `json:"total_revenue"`
	PotentialRevenue     float64 `json:"potential_revenue"`
	TargetRevenue        float64 `json:"target_revenue"`
	TotalExpense         float64 `json:"total_expense"`
	GrossOperatingProfit float64 `json:"gross_operating_profit"`
	EBITDAR              float64 `json:"ebitdar"`
	AverageOccupancy     float64 `json:"average_occupancy"`
	AverageRevPAR        float64 `json:"average_revpar"`
	AverageGOPPAR        float64 `json:"average_goppar"`
}

// EBITDAR is an approximation: a flat share of expenses is added back instead of a real
// interest, tax, depreciation and rent breakdown.
func EBITDAR(totalRevenue, totalExpense, addBack float64) float64 {
	rev := decimal.NewFromFloat(totalRevenue)
	exp := decimal.NewFromFloat(totalExpense)
	return roundMoney(rev.Sub(exp).Add(exp.Mul(decimal.NewFromFloat(addBack))))
}

func Summarize(snapshots []PerformanceSnapshot, addBack float64) YearSummary {
	var (
		revenue   = decimal.Zero
		potential = decimal.Zero
		target    = decimal.Zero
		expense   = decimal.Zero
		occupancy = decimal.Zero
		revpar    = decimal.Zero
		goppar    = decimal.Zero
	)
	for _, s := range snapshots {
		revenue = revenue.Add(decimal.NewFromFloat(s.EstimatedRevenue))
		potential = potential.Add(decimal.NewFromFloat(s.PotentialRevenue))
		target = target.Add(decimal.NewFromFloat(s.TargetRevenue))
		expense = expense.Add(decimal.NewFromFloat(s.OperatingExpenses))
		occupancy = occupancy.Add(decimal.NewFromFloat(s.ForecastOccupancy))
		revpar = revpar.Add(decimal.NewFromFloat(s.RevPAR))
		goppar = goppar.Add(decimal.NewFromFloat(s.GOPPAR))
	}

	n := decimal.NewFromInt(int64(len(snapshots)))
	totalRevenue := roundMoney(revenue)
	totalExpense := roundMoney(expense)

	return YearSummary{
		MonthsComputed:       len(snapshots),
		TotalRevenue:         totalRevenue,
		PotentialRevenue:     roundMoney(potential),
		TargetRevenue:        roundMoney(target),
		TotalExpense:         totalExpense,
		GrossOperatingProfit: roundMoney(revenue.Sub(expense)),
		EBITDAR:              EBITDAR(totalRevenue, totalExpense, addBack),
		AverageOccupancy:     roundMoney(safeDiv(occupancy, n)),
		AverageRevPAR:        roundMoney(safeDiv(revpar, n)),
		AverageGOPPAR:        roundMoney(safeDiv(goppar, n)),
	}
}
