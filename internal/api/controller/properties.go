package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/ougirez/revman/internal/domain/dto"
	"net/http"
)

func (c *Controller) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (c *Controller) ListProperties(ctx echo.Context) error {
	properties, err := c.revenue.ListProperties(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, properties)
}

func (c *Controller) GetReport(ctx echo.Context) error {
	var q dto.ReportQuery
	if err := bindAndValidate(ctx, &q); err != nil {
		return err
	}

	report, err := c.revenue.Report(ctx.Request().Context(), q)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, report)
}

func (c *Controller) GetPricing(ctx echo.Context) error {
	var q dto.ReportQuery
	if err := bindAndValidate(ctx, &q); err != nil {
		return err
	}

	resp, err := c.revenue.Pricing(ctx.Request().Context(), q)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) GetPerformance(ctx echo.Context) error {
	var q dto.ReportQuery
	if err := bindAndValidate(ctx, &q); err != nil {
		return err
	}

	resp, err := c.revenue.Performance(ctx.Request().Context(), q)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) GetRecommendations(ctx echo.Context) error {
	var q dto.ReportQuery
	if err := bindAndValidate(ctx, &q); err != nil {
		return err
	}

	resp, err := c.revenue.Recommendations(ctx.Request().Context(), q)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) GetAdviceFacts(ctx echo.Context) error {
	var q dto.ReportQuery
	if err := bindAndValidate(ctx, &q); err != nil {
		return err
	}

	resp, err := c.revenue.AdviceFacts(ctx.Request().Context(), q)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) Quote(ctx echo.Context) error {
	var req dto.QuoteRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	resp, err := c.revenue.Quote(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}
