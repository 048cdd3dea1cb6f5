package revenue

import (
	"github.com/ougirez/revman/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestForecastWithFixedGrowth(t *testing.T) {
	f, err := NewForecaster(8, ConstantSource(0))
	require.NoError(t, err)

	points, err := f.Forecast([]HistoricalSample{
		SampleFromOccupancy(1, 50, 8),
		SampleFromOccupancy(4, 100, 8),
	})
	require.NoError(t, err)
	require.Len(t, points, 12)

	jan := points[0]
	assert.Equal(t, 1, jan.Month)
	assert.InDelta(t, 1.05, jan.GrowthFactor, 1e-9)
	assert.InDelta(t, 4.2, jan.ForecastBooking, 1e-9)
	assert.InDelta(t, 52.5, jan.ForecastOccupancy, 1e-9)
	assert.InDelta(t, 3.78, jan.LowerBound, 1e-9)
	assert.InDelta(t, 4.62, jan.UpperBound, 1e-9)

	apr := points[3]
	assert.Equal(t, 8.0, apr.ForecastBooking, "clamped to room count")
	assert.Equal(t, 100.0, apr.ForecastOccupancy)

	feb := points[1]
	assert.Equal(t, 2, feb.Month)
	assert.Zero(t, feb.ForecastBooking)
}

func TestForecastGrowthRange(t *testing.T) {
	f, err := NewForecaster(10, ConstantSource(0.999999))
	require.NoError(t, err)

	points, err := f.Forecast([]HistoricalSample{SampleFromBookings(6, 2, 10)})
	require.NoError(t, err)
	assert.LessOrEqual(t, points[5].GrowthFactor, 1.25)
	assert.Greater(t, points[5].GrowthFactor, 1.24)
}

func TestForecastInvariants(t *testing.T) {
	f, err := NewForecaster(12, NewSeededSource(7))
	require.NoError(t, err)

	samples := make([]HistoricalSample, 0, 12)
	for m := 1; m <= 12; m++ {
		samples = append(samples, SampleFromOccupancy(m, float64(m*8), 12))
	}

	points, err := f.Forecast(samples)
	require.NoError(t, err)
	for _, p := range points {
		assert.LessOrEqual(t, p.LowerBound, p.ForecastBooking, "month %d", p.Month)
		assert.LessOrEqual(t, p.ForecastBooking, p.UpperBound, "month %d", p.Month)
		assert.LessOrEqual(t, p.ForecastBooking, 12.0, "month %d", p.Month)
		assert.GreaterOrEqual(t, p.GrowthFactor, 1.05)
		assert.LessOrEqual(t, p.GrowthFactor, 1.25)
	}
}

func TestForecastErrors(t *testing.T) {
	_, err := NewForecaster(0, ConstantSource(0))
	assert.ErrorIs(t, err, constants.ErrConfiguration)

	f, err := NewForecaster(8, ConstantSource(0))
	require.NoError(t, err)

	_, err = f.Forecast([]HistoricalSample{{Month: 13}})
	assert.ErrorIs(t, err, constants.ErrInvalidInput)

	_, err = f.Forecast([]HistoricalSample{{Month: 2}, {Month: 2}})
	assert.ErrorIs(t, err, constants.ErrInvalidInput)

	_, err = f.Forecast([]HistoricalSample{SampleFromOccupancy(3, 120, 8)})
	assert.ErrorIs(t, err, constants.ErrInvalidInput)
}

func TestForecastRejectsNonFiniteSamples(t *testing.T) {
	f, err := NewForecaster(8, ConstantSource(0))
	require.NoError(t, err)

	samples := []HistoricalSample{
		{Month: 3, ActualBooking: math.NaN(), ActualOccupancy: math.NaN()},
		{Month: 3, ActualBooking: 4, ActualOccupancy: math.NaN()},
		{Month: 3, ActualBooking: math.NaN(), ActualOccupancy: 50},
		{Month: 3, ActualBooking: math.Inf(1), ActualOccupancy: 50},
		{Month: 3, ActualBooking: 4, ActualOccupancy: math.Inf(-1)},
	}
	for _, s := range samples {
		_, err := f.Forecast([]HistoricalSample{s})
		assert.ErrorIs(t, err, constants.ErrInvalidInput, "%+v", s)
	}
}
