package controller

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/revman/internal/domain/dto"
	"github.com/ougirez/revman/internal/pkg/constants"
	"net/http"
)

func (c *Controller) UpsertOccupancy(ctx echo.Context) error {
	var req dto.UpsertOccupancyRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	records, err := c.revenue.UpsertOccupancy(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, records)
}

func (c *Controller) BackfillHolidays(ctx echo.Context) error {
	var req dto.BackfillHolidaysRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	sourceURL := req.SourceURL
	if sourceURL == "" {
		sourceURL = c.holidaySourceURL
	}
	if sourceURL == "" {
		return fmt.Errorf("no holiday source url configured: %w", constants.ErrInvalidInput)
	}

	holidays, err := c.holidays.ImportHolidays(ctx.Request().Context(), req.PropertyID, sourceURL)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, holidays)
}

func (c *Controller) PublishCard(ctx echo.Context) error {
	var req dto.PublishCardRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	card, err := c.revenue.PublishCard(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusAccepted, card)
}
