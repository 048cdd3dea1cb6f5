package controller

import (
	"github.com/labstack/echo/v4"
	holidaysService "github.com/ougirez/revman/internal/service/holidays"
	revenueService "github.com/ougirez/revman/internal/service/revenue"
)

type Controller struct {
	revenue          *revenueService.Service
	holidays         *holidaysService.Service
	holidaySourceURL string
}

func NewController(revenue *revenueService.Service, holidays *holidaysService.Service, holidaySourceURL string) *Controller {
	return &Controller{revenue: revenue, holidays: holidays, holidaySourceURL: holidaySourceURL}
}

func bindAndValidate(ctx echo.Context, dst interface{}) error {
	if err := ctx.Bind(dst); err != nil {
		return err
	}
	return ctx.Validate(dst)
}
