package api

import (
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/revman/internal/domain"
	"github.com/ougirez/revman/internal/pkg/constants"
	"github.com/ougirez/revman/internal/pkg/logger"
	"net/http"
)

func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	msg := err.Error()
	code := http.StatusInternalServerError
	for unwrapped := err; unwrapped != nil; unwrapped = errors.Unwrap(unwrapped) {
		if ce, ok := unwrapped.(*constants.CodedError); ok {
			code = ce.Code()
			break
		}
		if he, ok := unwrapped.(*echo.HTTPError); ok {
			code = he.Code
			msg = fmt.Sprint(he.Message)
			break
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error(c.Request().Context(), "request failed", "path", c.Path(), "error", err)
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
