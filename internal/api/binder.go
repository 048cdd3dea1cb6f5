package api

import (
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/revman/internal/pkg/constants"
)

type Validator struct {
	validator *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validator: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return fmt.Errorf("%s: %w", err.Error(), constants.ErrInvalidInput)
	}
	return nil
}

// Binder fills path, query and body fields for every method. echo's default binder skips the
// query string on POST, and the publish endpoint takes year and month from it.
type Binder struct {
	echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	if err := b.BindPathParams(c, i); err != nil {
		return fmt.Errorf("BindPathParams: %s: %w", err.Error(), constants.ErrInvalidInput)
	}
	if err := b.BindQueryParams(c, i); err != nil {
		return fmt.Errorf("BindQueryParams: %s: %w", err.Error(), constants.ErrInvalidInput)
	}
	if err := b.BindBody(c, i); err != nil {
		return fmt.Errorf("BindBody: %s: %w", err.Error(), constants.ErrInvalidInput)
	}
	return nil
}
