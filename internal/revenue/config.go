package revenue

import (
	"fmt"
	"github.com/ougirez/revman/internal/pkg/constants"
	"math"
	"sort"
	"strconv"
	"strings"
)

// DefaultHighSeasonMonths is the property's elevated-demand month set.
var DefaultHighSeasonMonths = []int{11, 12, 1, 2, 4}

// DefaultHolidays is keyed by "month-day".
var DefaultHolidays = map[string]string{
	"1-1":   "New Year's Day",
	"4-6":   "Chakri Memorial Day",
	"4-13":  "Songkran Festival",
	"4-14":  "Songkran Festival",
	"4-15":  "Songkran Festival",
	"5-1":   "National Labour Day",
	"5-4":   "Coronation Day",
	"6-3":   "Queen Suthida's Birthday",
	"7-28":  "King Vajiralongkorn's Birthday",
	"8-12":  "Mother's Day",
	"10-13": "King Bhumibol Memorial Day",
	"10-23": "Chulalongkorn Day",
	"12-5":  "Father's Day",
	"12-10": "Constitution Day",
	"12-31": "New Year's Eve",
}

// Policy holds business placeholders that product may tune per property.
type Policy struct {
	// TargetUplift is the yearly growth applied on top of projected revenue.
	TargetUplift float64 `json:"target_uplift"`
	// EBITDARAddBack approximates interest, tax, depreciation and rent as a share of expenses.
	EBITDARAddBack float64 `json:"ebitdar_addback"`
}

func DefaultPolicy() Policy {
	return Policy{TargetUplift: 0.10, EBITDARAddBack: 0.15}
}

// Config is everything the pipeline needs to know about one property.
type Config struct {
	BasePrice        float64           `json:"base_price"`
	TotalRooms       int               `json:"total_rooms"`
	HighSeasonMonths []int             `json:"high_season_months"`
	Holidays         map[string]string `json:"holidays"`
	WeekendRule      WeekendRule       `json:"weekend_rule"`
	Policy           Policy            `json:"policy"`
}

// DefaultConfig returns a config with the project defaults for everything but price and rooms.
func DefaultConfig(basePrice float64, totalRooms int) Config {
	holidays := make(map[string]string, len(DefaultHolidays))
	for k, v := range DefaultHolidays {
		holidays[k] = v
	}

	return Config{
		BasePrice:        basePrice,
		TotalRooms:       totalRooms,
		HighSeasonMonths: append([]int(nil), DefaultHighSeasonMonths...),
		Holidays:         holidays,
		WeekendRule:      WeekendCalendar,
		Policy:           DefaultPolicy(),
	}
}

// Validate reports configuration problems that must abort the whole computation.
func (c Config) Validate() error {
	if c.TotalRooms <= 0 {
		return fmt.Errorf("total rooms %d: %w", c.TotalRooms, constants.ErrConfiguration)
	}
	if !finite(c.BasePrice) || c.BasePrice <= 0 {
		return fmt.Errorf("base price %v: %w", c.BasePrice, constants.ErrInvalidInput)
	}
	for _, m := range c.HighSeasonMonths {
		if m < 1 || m > 12 {
			return fmt.Errorf("high season month %d: %w", m, constants.ErrConfiguration)
		}
	}
	if _, err := NormalizeHolidays(c.Holidays); err != nil {
		return err
	}
	switch c.WeekendRule {
	case "", WeekendCalendar, WeekendDayMod7:
	default:
		return fmt.Errorf("weekend rule %q: %w", c.WeekendRule, constants.ErrConfiguration)
	}
	if !finite(c.Policy.TargetUplift) || !finite(c.Policy.EBITDARAddBack) ||
		c.Policy.TargetUplift < 0 || c.Policy.EBITDARAddBack < 0 {
		return fmt.Errorf("policy constants %v, %v: %w", c.Policy.TargetUplift, c.Policy.EBITDARAddBack, constants.ErrConfiguration)
	}

	return nil
}

func HolidayKey(month, day int) string {
	return strconv.Itoa(month) + "-" + strconv.Itoa(day)
}

// ParseHolidayKey accepts "4-13" as well as zero padded "04-13".
func ParseHolidayKey(key string) (month, day int, err error) {
	parts := strings.Split(strings.TrimSpace(key), "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("holiday key %q: %w", key, constants.ErrInvalidInput)
	}

	month, err = strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("holiday key %q: %w", key, constants.ErrInvalidInput)
	}
	day, err = strconv.Atoi(parts[1])
	if err != nil || day < 1 || day > 31 {
		return 0, 0, fmt.Errorf("holiday key %q: %w", key, constants.ErrInvalidInput)
	}

	return month, day, nil
}

// NormalizeHolidays re-keys a holiday table to canonical "m-d" keys. Two keys naming the same
// date, such as "04-13" and "4-13", are rejected.
func NormalizeHolidays(holidays map[string]string) (map[string]string, error) {
	keys := make([]string, 0, len(holidays))
	for key := range holidays {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make(map[string]string, len(holidays))
	seen := make(map[string]string, len(holidays))
	for _, key := range keys {
		month, day, err := ParseHolidayKey(key)
		if err != nil {
			return nil, err
		}
		canonical := HolidayKey(month, day)
		if prev, dup := seen[canonical]; dup {
			return nil, fmt.Errorf("holiday keys %q and %q name the same date: %w", prev, key, constants.ErrInvalidInput)
		}
		seen[canonical] = key
		out[canonical] = holidays[key]
	}

	return out, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
