package revenue

import (
	"fmt"
	"github.com/ougirez/revman/internal/pkg/constants"
)

type Tier string

const (
	TierExcellent        Tier = "Excellent"
	TierGood             Tier = "Good"
	TierFair             Tier = "Fair"
	TierNeedsImprovement Tier = "NeedsImprovement"
)

type Axis string

const (
	AxisOccupancy        Axis = "occupancy"
	AxisRevPARPercentage Axis = "revpar_percentage"
	AxisGOPPARPercentage Axis = "goppar_percentage"
)

type Recommendation struct {
	SubjectMonth int     `json:"subject_month"`
	Axis         Axis    `json:"axis"`
	Value        float64 `json:"value"`
	Tier         Tier    `json:"tier"`
	Action       string  `json:"action"`
}

type band struct {
	min    float64
	tier   Tier
	action string
}

// Bands are business policy and ordered high to low; the first band whose lower bound is
// reached wins.
var occupancyBands = []band{
	{min: 70, tier: TierExcellent, action: "raise price 5–25%"},
	{min: 50, tier: TierFair, action: "hold price, minor increase 0–5%"},
	{min: 0, tier: TierNeedsImprovement, action: "discount 10–20%"},
}

var revparBands = []band{
	{min: 90, tier: TierExcellent, action: "keep current rates and limit discounting"},
	{min: 70, tier: TierGood, action: "run targeted promotions on low-demand days"},
	{min: 50, tier: TierFair, action: "bundle packages and push channel promotions"},
	{min: 0, tier: TierNeedsImprovement, action: "launch an aggressive promotion, discount 10–20%"},
}

func classify(bands []band, value float64) band {
	for _, b := range bands {
		if value >= b.min {
			return b
		}
	}
	return bands[len(bands)-1]
}

func RecommendByOccupancy(month int, occupancyRate float64) Recommendation {
	b := classify(occupancyBands, occupancyRate)
	return Recommendation{SubjectMonth: month, Axis: AxisOccupancy, Value: occupancyRate, Tier: b.tier, Action: b.action}
}

func RecommendByRevPARPercentage(month int, pct float64) Recommendation {
	b := classify(revparBands, pct)
	return Recommendation{SubjectMonth: month, Axis: AxisRevPARPercentage, Value: pct, Tier: b.tier, Action: b.action}
}

// RecommendByGOPPARPercentage uses the RevPAR percentage bands.
func RecommendByGOPPARPercentage(month int, pct float64) Recommendation {
	b := classify(revparBands, pct)
	return Recommendation{SubjectMonth: month, Axis: AxisGOPPARPercentage, Value: pct, Tier: b.tier, Action: b.action}
}

func Recommend(month int, axis Axis, value float64) (Recommendation, error) {
	switch axis {
	case AxisOccupancy:
		return RecommendByOccupancy(month, value), nil
	case AxisRevPARPercentage:
		return RecommendByRevPARPercentage(month, value), nil
	case AxisGOPPARPercentage:
		return RecommendByGOPPARPercentage(month, value), nil
	default:
		return Recommendation{}, fmt.Errorf("axis %q: %w", axis, constants.ErrInvalidInput)
	}
}

// RecommendSnapshot classifies a month on every axis.
func RecommendSnapshot(s PerformanceSnapshot) []Recommendation {
	return []Recommendation{
		RecommendByOccupancy(s.Month, s.ForecastOccupancy),
		RecommendByRevPARPercentage(s.Month, s.RevPARPercentage),
		RecommendByGOPPARPercentage(s.Month, s.GOPPARPercentage),
	}
}
