package revenue

import (
	"context"
	"github.com/ougirez/revman/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func testHistory(totalRooms int) []HistoricalSample {
	occupancy := []float64{72, 68, 55, 90, 40, 35, 45, 50, 30, 48, 75, 85}
	out := make([]HistoricalSample, 0, 12)
	for i, occ := range occupancy {
		out = append(out, SampleFromOccupancy(i+1, occ, totalRooms))
	}
	return out
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultConfig(2500, 8))
	require.NoError(t, err)
	return e
}

func TestNewEngineRejectsBrokenConfig(t *testing.T) {
	_, err := NewEngine(DefaultConfig(2500, 0))
	assert.ErrorIs(t, err, constants.ErrConfiguration)

	_, err = NewEngine(DefaultConfig(0, 8))
	assert.ErrorIs(t, err, constants.ErrInvalidInput)

	cfg := DefaultConfig(2500, 8)
	cfg.WeekendRule = "fridays"
	_, err = NewEngine(cfg)
	assert.ErrorIs(t, err, constants.ErrConfiguration)

	cfg = DefaultConfig(2500, 8)
	cfg.Holidays["4-31x"] = "typo"
	_, err = NewEngine(cfg)
	assert.ErrorIs(t, err, constants.ErrInvalidInput)

	cfg = DefaultConfig(2500, 8)
	cfg.Holidays["04-13"] = "Water Festival"
	_, err = NewEngine(cfg)
	assert.ErrorIs(t, err, constants.ErrInvalidInput)
}

func TestNewEngineRejectsNonFiniteConfig(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1)} {
		_, err := NewEngine(DefaultConfig(v, 8))
		assert.ErrorIs(t, err, constants.ErrInvalidInput, v)

		cfg := DefaultConfig(2500, 8)
		cfg.Policy.TargetUplift = v
		_, err = NewEngine(cfg)
		assert.ErrorIs(t, err, constants.ErrConfiguration, v)

		cfg = DefaultConfig(2500, 8)
		cfg.Policy.EBITDARAddBack = v
		_, err = NewEngine(cfg)
		assert.ErrorIs(t, err, constants.ErrConfiguration, v)
	}
}

func TestComputeYearSongkranSaturday(t *testing.T) {
	e := newTestEngine(t)

	report, err := e.ComputeYear(context.Background(), YearInput{
		Year:    2024,
		History: testHistory(8),
		Random:  ConstantSource(0),
	})
	require.NoError(t, err)
	require.Len(t, report.Days, 366)

	var songkran *DailyPricing
	for i := range report.Days {
		if report.Days[i].Date == "2024-04-13" {
			songkran = &report.Days[i]
		}
	}
	require.NotNil(t, songkran)
	assert.True(t, songkran.IsHoliday)
	assert.True(t, songkran.IsWeekend)
	assert.True(t, songkran.IsHighSeason)
	assert.Greater(t, songkran.OccupancyRate, 80.0)
	assert.Equal(t, 6541.0, songkran.DynamicPrice)
}

func TestComputeYearIsReproducibleWithSeed(t *testing.T) {
	e := newTestEngine(t)
	in := func() YearInput {
		return YearInput{Year: 2025, History: testHistory(8), Random: NewSeededSource(42)}
	}

	first, err := e.ComputeYear(context.Background(), in())
	require.NoError(t, err)
	second, err := e.ComputeYear(context.Background(), in())
	require.NoError(t, err)

	assert.NotEqual(t, first.ReportID, second.ReportID)
	assert.Equal(t, first.Forecast, second.Forecast)
	assert.Equal(t, first.Days, second.Days)
	assert.Equal(t, first.Months, second.Months)
	assert.Equal(t, first.Summary, second.Summary)
}

func TestComputeYearInvariants(t *testing.T) {
	e := newTestEngine(t)

	report, err := e.ComputeYear(context.Background(), YearInput{Year: 2023, History: testHistory(8), Random: NewSeededSource(1)})
	require.NoError(t, err)
	require.Len(t, report.Months, 12)
	assert.Len(t, report.Days, 365)

	total := 0.0
	for _, m := range report.Months {
		require.False(t, m.Skipped, "month %d", m.Month)
		s := m.Snapshot
		assert.GreaterOrEqual(t, s.PotentialRevenue, s.EstimatedRevenue, "month %d", m.Month)
		assert.LessOrEqual(t, s.ForecastBooking, 8.0)
		assert.InDelta(t, s.EstimatedRevenue-s.OperatingExpenses, s.GrossOperatingProfit, 0.011)
		assert.Equal(t, DaysIn(2023, m.Month), s.DaysInMonth)
		assert.Len(t, m.Recommendations, 3)
		total += s.EstimatedRevenue
	}
	assert.InDelta(t, total*1.10, report.Summary.TargetRevenue, 1)
	assert.Equal(t, 12, report.Summary.MonthsComputed)
}

func TestComputeYearSkipsClosedMonth(t *testing.T) {
	e := newTestEngine(t)

	closed := make([]CalendarDay, 0, 29)
	for d := 1; d <= 29; d++ {
		closed = append(closed, CalendarDay{Year: 2024, Month: 2, Day: d})
	}
	closed = append(closed, CalendarDay{Year: 2024, Month: 3, Day: 1})

	report, err := e.ComputeYear(context.Background(), YearInput{
		Year:    2024,
		History: testHistory(8),
		Random:  NewSeededSource(5),
		Closed:  closed,
	})
	require.NoError(t, err)

	feb, ok := report.Month(2)
	require.True(t, ok)
	assert.True(t, feb.Skipped)
	assert.Nil(t, feb.Snapshot)
	assert.Contains(t, feb.Reason, constants.ErrInsufficientData.Error())
	assert.Empty(t, report.DaysOf(2))

	mar, _ := report.Month(3)
	require.NotNil(t, mar.Snapshot)
	assert.Equal(t, 30, mar.Snapshot.DaysInMonth)

	assert.Equal(t, 11, report.Summary.MonthsComputed)
	assert.Len(t, report.Snapshots(), 11)
}

func TestComputeYearAbortsOnInvalidInput(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.ComputeYear(context.Background(), YearInput{Year: 0})
	assert.ErrorIs(t, err, constants.ErrInvalidInput)

	_, err = e.ComputeYear(context.Background(), YearInput{
		Year:    2024,
		History: []HistoricalSample{SampleFromOccupancy(5, 140, 8)},
	})
	assert.ErrorIs(t, err, constants.ErrInvalidInput)

	report, err := e.ComputeYear(context.Background(), YearInput{
		Year:    2024,
		History: []HistoricalSample{{Month: 3, ActualBooking: math.NaN(), ActualOccupancy: math.NaN()}},
		Random:  ConstantSource(0),
	})
	assert.ErrorIs(t, err, constants.ErrInvalidInput)
	assert.Nil(t, report)
}

func TestComputeYearHonoursCancellation(t *testing.T) {
	e := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.ComputeYear(ctx, YearInput{Year: 2024, History: testHistory(8), Random: ConstantSource(0)})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFacts(t *testing.T) {
	e := newTestEngine(t)
	report, err := e.ComputeYear(context.Background(), YearInput{
		Year:    2024,
		History: testHistory(8),
		Random:  ConstantSource(0.5),
		Closed:  []CalendarDay{},
	})
	require.NoError(t, err)

	facts := Facts(report)
	require.Len(t, facts, 14)
	assert.Contains(t, facts[0], "Year 2024: 8 rooms")
	assert.Contains(t, facts[4], "April")
	assert.Contains(t, facts[4], string(TierExcellent))
}

func TestComputeYearRejectsNonFiniteRandomSource(t *testing.T) {
	e := newTestEngine(t)

	report, err := e.ComputeYear(context.Background(), YearInput{
		Year:    2024,
		History: testHistory(8),
		Random:  ConstantSource(math.NaN()),
	})
	assert.ErrorIs(t, err, constants.ErrConfiguration)
	assert.Nil(t, report)
}
