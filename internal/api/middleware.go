package api

import (
	"github.com/labstack/echo/v4"
	"github.com/ougirez/revman/internal/pkg/constants"
	"github.com/ougirez/revman/internal/pkg/utils"
	"github.com/spf13/viper"
	"strings"
)

// AdminMiddleware lets through requests carrying a token signed with the configured secret,
// either in the secret_token cookie or as a bearer token.
func (svc *APIService) AdminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		secret := viper.GetString(constants.ViperSecretKey)
		if secret == "" {
			return constants.ErrUnauthorized
		}

		raw := strings.TrimPrefix(ctx.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
		if cookie, err := ctx.Cookie(constants.CookieKeySecretToken); err == nil {
			raw = cookie.Value
		}
		if raw == "" {
			return constants.ErrUnauthorized
		}

		token, err := utils.ParseAuthToken(raw, secret)
		if err != nil {
			return err
		}

		if token.Secret != secret {
			return constants.ErrUnauthorized
		}

		return next(ctx)
	}
}
