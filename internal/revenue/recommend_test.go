package revenue

import (
	"github.com/ougirez/revman/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestOccupancyBands(t *testing.T) {
	cases := []struct {
		occ  float64
		tier Tier
	}{
		{0, TierNeedsImprovement},
		{49.999, TierNeedsImprovement},
		{50.0, TierFair},
		{69.999, TierFair},
		{70.0, TierExcellent},
		{100, TierExcellent},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.tier, RecommendByOccupancy(3, tc.occ).Tier, "occupancy %v", tc.occ)
	}

	assert.Equal(t, "discount 10–20%", RecommendByOccupancy(1, 10).Action)
	assert.Equal(t, "hold price, minor increase 0–5%", RecommendByOccupancy(1, 55).Action)
	assert.Equal(t, "raise price 5–25%", RecommendByOccupancy(1, 75).Action)
}

func TestRevPARBands(t *testing.T) {
	cases := []struct {
		pct  float64
		tier Tier
	}{
		{95, TierExcellent},
		{90, TierExcellent},
		{89.999, TierGood},
		{70, TierGood},
		{69.999, TierFair},
		{50, TierFair},
		{49.999, TierNeedsImprovement},
		{-5, TierNeedsImprovement},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.tier, RecommendByRevPARPercentage(1, tc.pct).Tier, "revpar %v", tc.pct)
		assert.Equal(t, tc.tier, RecommendByGOPPARPercentage(1, tc.pct).Tier, "goppar %v", tc.pct)
	}
}

func TestRecommendByAxis(t *testing.T) {
	rec, err := Recommend(7, AxisGOPPARPercentage, 72)
	assert.NoError(t, err)
	assert.Equal(t, Recommendation{SubjectMonth: 7, Axis: AxisGOPPARPercentage, Value: 72, Tier: TierGood, Action: revparBands[1].action}, rec)

	_, err = Recommend(7, Axis("adr"), 72)
	assert.ErrorIs(t, err, constants.ErrInvalidInput)
}

func TestRecommendSnapshot(t *testing.T) {
	s := PerformanceSnapshot{MonthlyAggregate: MonthlyAggregate{Month: 4, ForecastOccupancy: 80, RevPARPercentage: 80}, GOPPARPercentage: 20}

	recs := RecommendSnapshot(s)
	assert.Len(t, recs, 3)
	assert.Equal(t, TierExcellent, recs[0].Tier)
	assert.Equal(t, TierGood, recs[1].Tier)
	assert.Equal(t, TierNeedsImprovement, recs[2].Tier)
}
