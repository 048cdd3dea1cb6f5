package store

import (
	"context"
	"fmt"
	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/revman/internal/domain"
)

var propertyColumns = []string{"id", "name", "base_price", "total_rooms", "high_season_months", "created_at", "updated_at"}

func listPropertiesQuery() sq.SelectBuilder {
	return builder().Select(propertyColumns...).
		From(tableProperties).
		OrderBy("name")
}

func getPropertyQuery(id int64) sq.SelectBuilder {
	return builder().Select(propertyColumns...).
		From(tableProperties).
		Where(sq.Eq{"id": id})
}

func (s *store) ListProperties(ctx context.Context) ([]*domain.Property, error) {
	var selected []*domain.Property
	if err := s.pool.Selectx(ctx, &selected, listPropertiesQuery()); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) GetProperty(ctx context.Context, id int64) (*domain.Property, error) {
	var selected domain.Property
	if err := s.pool.Getx(ctx, &selected, getPropertyQuery(id)); err != nil {
		return nil, fmt.Errorf("property %d: %w", id, wrapErr(err))
	}

	return &selected, nil
}
