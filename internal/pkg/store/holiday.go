package store

import (
	"context"
	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/revman/internal/domain"
	"github.com/ougirez/revman/internal/pkg/logger"
)

var holidayColumns = []string{"id", "property_id", "month", "day", "name", "created_at"}

func listHolidaysQuery(propertyID int64) sq.SelectBuilder {
	return builder().Select(holidayColumns...).
		From(tableHolidays).
		Where(sq.Eq{"property_id": propertyID}).
		OrderBy("month, day")
}

func upsertHolidaysQuery(propertyID int64, holidays []*domain.Holiday) sq.InsertBuilder {
	query := builder().Insert(tableHolidays).
		Columns("property_id", "month", "day", "name")

	for _, h := range holidays {
		query = query.Values(propertyID, h.Month, h.Day, h.Name)
	}

	return query.Suffix(`on conflict (property_id, month, day) do update set name = excluded.name`)
}

func (s *store) ListHolidays(ctx context.Context, propertyID int64) ([]*domain.Holiday, error) {
	var selected []*domain.Holiday
	if err := s.pool.Selectx(ctx, &selected, listHolidaysQuery(propertyID)); err != nil {
		logger.Error(ctx, err.Error())
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) UpsertHolidays(ctx context.Context, propertyID int64, holidays []*domain.Holiday) error {
	if len(holidays) == 0 {
		return nil
	}

	if _, err := s.pool.Execx(ctx, upsertHolidaysQuery(propertyID, holidays)); err != nil {
		logger.Errorf(ctx, "upsertHolidays: %s", err.Error())
		return wrapErr(err)
	}

	return nil
}
