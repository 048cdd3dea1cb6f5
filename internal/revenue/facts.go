package revenue

import (
	"fmt"
	"time"
)

// Facts renders a report as plain sentences for the advice prompt builder.
func Facts(r *YearReport) []string {
	facts := make([]string, 0, len(r.Months)+2)
	facts = append(facts, fmt.Sprintf(
		"Year %d: %d rooms at a base rate of %.0f, projected revenue %.2f against a target of %.2f.",
		r.Year, r.TotalRooms, r.BasePrice, r.Summary.TotalRevenue, r.Summary.TargetRevenue,
	))

	for _, m := range r.Months {
		name := time.Month(m.Month).String()
		if m.Snapshot == nil {
			facts = append(facts, fmt.Sprintf("%s: no data.", name))
			continue
		}

		s := m.Snapshot
		occupancy := RecommendByOccupancy(m.Month, s.ForecastOccupancy)
		facts = append(facts, fmt.Sprintf(
			"%s: forecast occupancy %.1f%% (%s, %s), average rate %.0f, RevPAR %.2f (%.1f%% of potential), GOPPAR %.2f.",
			name, s.ForecastOccupancy, occupancy.Tier, occupancy.Action, s.DynamicPrice, s.RevPAR, s.RevPARPercentage, s.GOPPAR,
		))
	}

	facts = append(facts, fmt.Sprintf(
		"Gross operating profit %.2f, EBITDAR estimate %.2f.",
		r.Summary.GrossOperatingProfit, r.Summary.EBITDAR,
	))

	return facts
}
