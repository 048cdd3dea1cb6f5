package dto

import (
	"fmt"
	"github.com/ougirez/revman/internal/domain"
	"sort"
	"sync"
)

// HolidayTable collects holidays parsed concurrently from calendar pages.
type HolidayTable struct {
	Holidays   map[string]*domain.Holiday
	holidaysMx sync.Mutex
}

func NewHolidayTable() *HolidayTable {
	return &HolidayTable{Holidays: make(map[string]*domain.Holiday)}
}

// Put keeps the first name seen for a date.
func (t *HolidayTable) Put(month, day int, name string) error {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return fmt.Errorf("invalid holiday date %d-%d", month, day)
	}

	t.holidaysMx.Lock()
	defer t.holidaysMx.Unlock()

	key := fmt.Sprintf("%d-%d", month, day)
	if _, ok := t.Holidays[key]; !ok {
		t.Holidays[key] = &domain.Holiday{Month: month, Day: day, Name: name}
	}
	return nil
}

func (t *HolidayTable) List() []*domain.Holiday {
	t.holidaysMx.Lock()
	defer t.holidaysMx.Unlock()

	out := make([]*domain.Holiday, 0, len(t.Holidays))
	for _, h := range t.Holidays {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}
		return out[i].Day < out[j].Day
	})
	return out
}
