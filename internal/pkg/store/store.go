package store

import (
	"context"
	"github.com/ougirez/revman/internal/domain"
	"github.com/ougirez/revman/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	ListProperties(ctx context.Context) ([]*domain.Property, error)
	GetProperty(ctx context.Context, id int64) (*domain.Property, error)

	ListOccupancy(ctx context.Context, propertyID int64, year domain.Year) ([]*domain.OccupancyRecord, error)
	UpsertOccupancy(ctx context.Context, records []*domain.OccupancyRecord) error

	ListHolidays(ctx context.Context, propertyID int64) ([]*domain.Holiday, error)
	UpsertHolidays(ctx context.Context, propertyID int64, holidays []*domain.Holiday) error

	ListClosures(ctx context.Context, propertyID int64, year domain.Year) ([]*domain.Closure, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
