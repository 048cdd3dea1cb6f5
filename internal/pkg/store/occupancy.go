package store

import (
	"context"
	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/revman/internal/domain"
	"github.com/ougirez/revman/internal/pkg/logger"
)

var occupancyColumns = []string{"property_id", "year", "month", "occupancy_rate", "updated_at"}

func listOccupancyQuery(propertyID int64, year domain.Year) sq.SelectBuilder {
	return builder().Select(occupancyColumns...).
		From(tableOccupancy).
		Where(sq.And{
			sq.Eq{"property_id": propertyID},
			sq.Eq{"year": year},
		}).
		OrderBy("month")
}

func upsertOccupancyQuery(records []*domain.OccupancyRecord) sq.InsertBuilder {
	query := builder().Insert(tableOccupancy).
		Columns("property_id", "year", "month", "occupancy_rate")

	for _, r := range records {
		query = query.Values(r.PropertyID, r.Year, r.Month, r.OccupancyRate)
	}

	return query.Suffix(`
on conflict (property_id, year, month)
do update
set
	occupancy_rate = excluded.occupancy_rate,
	updated_at = now()`)
}

func (s *store) ListOccupancy(ctx context.Context, propertyID int64, year domain.Year) ([]*domain.OccupancyRecord, error) {
	var selected []*domain.OccupancyRecord
	if err := s.pool.Selectx(ctx, &selected, listOccupancyQuery(propertyID, year)); err != nil {
		logger.Error(ctx, err.Error())
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) UpsertOccupancy(ctx context.Context, records []*domain.OccupancyRecord) error {
	if len(records) == 0 {
		return nil
	}

	if _, err := s.pool.Execx(ctx, upsertOccupancyQuery(records)); err != nil {
		logger.Error(ctx, err.Error())
		return wrapErr(err)
	}

	return nil
}
