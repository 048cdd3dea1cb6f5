package revenue

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestExpenseBaseRatio(t *testing.T) {
	m := NewExpenseModel(DefaultHighSeasonMonths)

	assert.Equal(t, 0.65, m.BaseRatio(12, 70))
	assert.Equal(t, 0.68, m.BaseRatio(12, 69.9))
	assert.Equal(t, 0.70, m.BaseRatio(6, 50))
	assert.Equal(t, 0.72, m.BaseRatio(6, 49.9))
}

func TestExpensesJitterIsBounded(t *testing.T) {
	m := NewExpenseModel(DefaultHighSeasonMonths)

	assert.InDelta(t, 72000, m.Expenses(100000, 6, 40, 0), 1e-6)
	assert.InDelta(t, 75600, m.Expenses(100000, 6, 40, 0.2), 1e-6)
	assert.InDelta(t, 68400, m.Expenses(100000, 6, 40, -0.2), 1e-6)

	src := NewSeededSource(3)
	for i := 0; i < 100; i++ {
		j := DrawJitter(src)
		assert.GreaterOrEqual(t, j, -0.05)
		assert.Less(t, j, 0.05)
	}
}

func TestPerformance(t *testing.T) {
	agg := MonthlyAggregate{Month: 6, DaysInMonth: 30, EstimatedRevenue: 120000, PotentialRevenue: 240000}

	s := Performance(agg, 8, 80000)
	assert.Equal(t, 40000.0, s.GrossOperatingProfit)
	assert.InDelta(t, s.EstimatedRevenue-s.OperatingExpenses, s.GrossOperatingProfit, 1e-6)
	assert.Equal(t, 166.67, s.GOPPAR)
	assert.Equal(t, 16.67, s.GOPPARPercentage)
	assert.Equal(t, 0.6667, s.ExpenseRatio)
}

func TestPerformanceGuardsZeroDenominators(t *testing.T) {
	s := Performance(MonthlyAggregate{Month: 1}, 0, 0)

	assert.Zero(t, s.GOPPAR)
	assert.Zero(t, s.GOPPARPercentage)
	assert.Zero(t, s.ExpenseRatio)
}

func TestEBITDAR(t *testing.T) {
	assert.Equal(t, 490.0, EBITDAR(1000, 600, 0.15))
	assert.Equal(t, 400.0, EBITDAR(1000, 600, 0))
}

func TestSummarize(t *testing.T) {
	snapshots := []PerformanceSnapshot{
		Performance(MonthlyAggregate{Month: 1, DaysInMonth: 31, EstimatedRevenue: 1000, PotentialRevenue: 2000, TargetRevenue: 1100, ForecastOccupancy: 50, RevPAR: 10}, 4, 600),
		Performance(MonthlyAggregate{Month: 2, DaysInMonth: 29, EstimatedRevenue: 3000, PotentialRevenue: 4000, TargetRevenue: 3300, ForecastOccupancy: 70, RevPAR: 30}, 4, 2000),
	}

	sum := Summarize(snapshots, 0.15)
	assert.Equal(t, 2, sum.MonthsComputed)
	assert.Equal(t, 4000.0, sum.TotalRevenue)
	assert.Equal(t, 2600.0, sum.TotalExpense)
	assert.Equal(t, 1400.0, sum.GrossOperatingProfit)
	assert.Equal(t, 1790.0, sum.EBITDAR)
	assert.Equal(t, 4400.0, sum.TargetRevenue)
	assert.Equal(t, 60.0, sum.AverageOccupancy)
	assert.Equal(t, 20.0, sum.AverageRevPAR)

	empty := Summarize(nil, 0.15)
	assert.Zero(t, empty.AverageOccupancy)
}
