package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"digital_store/internal/tokens"
)

const CtxUserID = "user_id"

// RequireAuth guards mutating routes: it expects an
// "Authorization: Bearer <token>" header signed with the server secret.
func RequireAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, err := tokens.FromAuthHeader(header)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token missing!")
			}

			claims, err := tokens.ClaimsFromToken(raw, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Token")
			}

			c.Set(CtxUserID, claims.UserID)
			return next(c)
		}
	}
}
