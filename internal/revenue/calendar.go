package revenue

import (
	"sort"
	"time"
)

type WeekendRule string

const (
	// WeekendCalendar flags real Saturdays and Sundays.
	WeekendCalendar WeekendRule = "calendar"
	// WeekendDayMod7 flags days where day%7 is 0 or 6 regardless of the actual weekday.
	WeekendDayMod7 WeekendRule = "day_mod_7"
)

type CalendarDay struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func (d CalendarDay) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func (d CalendarDay) String() string {
	return d.Time().Format(time.DateOnly)
}

type DayFlags struct {
	IsWeekend    bool   `json:"is_weekend"`
	IsHoliday    bool   `json:"is_holiday"`
	HolidayName  string `json:"holiday_name,omitempty"`
	IsHighSeason bool   `json:"is_high_season"`
}

// Classifier is a read-only lookup and safe for concurrent use.
type Classifier struct {
	holidays    map[string]string
	highSeason  map[int]struct{}
	weekendRule WeekendRule
}

func NewClassifier(holidays map[string]string, highSeasonMonths []int, rule WeekendRule) *Classifier {
	c := &Classifier{
		holidays:    make(map[string]string, len(holidays)),
		highSeason:  make(map[int]struct{}, len(highSeasonMonths)),
		weekendRule: rule,
	}
	if c.weekendRule == "" {
		c.weekendRule = WeekendCalendar
	}

	// Keys are visited in order and a canonical key beats a padded one, so duplicates resolve
	// the same way on every run. Config.Validate rejects them before they get here.
	keys := make([]string, 0, len(holidays))
	for key := range holidays {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		month, day, err := ParseHolidayKey(key)
		if err != nil {
			continue
		}
		canonical := HolidayKey(month, day)
		if _, taken := c.holidays[canonical]; taken && key != canonical {
			continue
		}
		c.holidays[canonical] = holidays[key]
	}
	for _, m := range highSeasonMonths {
		c.highSeason[m] = struct{}{}
	}

	return c
}

func (c *Classifier) Classify(d CalendarDay) DayFlags {
	name, isHoliday := c.holidays[HolidayKey(d.Month, d.Day)]
	_, isHighSeason := c.highSeason[d.Month]

	return DayFlags{
		IsWeekend:    c.IsWeekend(d),
		IsHoliday:    isHoliday,
		HolidayName:  name,
		IsHighSeason: isHighSeason,
	}
}

func (c *Classifier) IsWeekend(d CalendarDay) bool {
	if c.weekendRule == WeekendDayMod7 {
		rem := d.Day % 7
		return rem == 0 || rem == 6
	}

	switch d.Time().Weekday() {
	case time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}

// DaysIn returns the length of the month, leap years included.
func DaysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
