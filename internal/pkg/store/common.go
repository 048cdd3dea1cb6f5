package store

import (
	"errors"
	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/ougirez/revman/internal/pkg/constants"
)

const (
	tableProperties = "properties"
	tableOccupancy  = "occupancy_records"
	tableHolidays   = "holidays"
	tableClosures   = "closures"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if pgxscan.NotFound(err) {
		return constants.ErrDBNotFound
	}
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder возвращает squirrel SQL Builder обьект.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
