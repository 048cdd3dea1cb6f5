package store

import (
	"context"
	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/revman/internal/domain"
	"time"
)

var closureColumns = []string{"property_id", "date", "reason"}

func listClosuresQuery(propertyID int64, year domain.Year) sq.SelectBuilder {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	return builder().Select(closureColumns...).
		From(tableClosures).
		Where(sq.And{
			sq.Eq{"property_id": propertyID},
			sq.GtOrEq{"date": from},
			sq.Lt{"date": to},
		}).
		OrderBy("date")
}

func (s *store) ListClosures(ctx context.Context, propertyID int64, year domain.Year) ([]*domain.Closure, error) {
	var selected []*domain.Closure
	if err := s.pool.Selectx(ctx, &selected, listClosuresQuery(propertyID, year)); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
