package middleware

import (
	"context"
	"net/http"
	"strings"

	"BrLegalAPI/internal/model"

	"github.com/labstack/echo/v4"
)

// IdentityResolver exchanges a presented bearer token for the account
// it belongs to.
type IdentityResolver interface {
	ResolveToken(ctx context.Context, token string) (*model.User, error)
}

// TokenAuth returns an echo middleware that rejects requests without a
// valid bearer token with 401, before any handler logic runs. The
// resolved account is attached to the request context.
func TokenAuth(resolver IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if auth == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing authorization header"})
			}
			parts := strings.Fields(auth)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid authorization header"})
			}
			user, err := resolver.ResolveToken(c.Request().Context(), parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			c.Set("auth_user", user)
			return next(c)
		}
	}
}

// CurrentUser extracts the authenticated account set by TokenAuth.
func CurrentUser(c echo.Context) *model.User {
	v := c.Get("auth_user")
	if v == nil {
		return nil
	}
	if u, ok := v.(*model.User); ok {
		return u
	}
	return nil
}

// StaffOnly requires the authenticated account to carry the staff flag.
func StaffOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		u := CurrentUser(c)
		if u == nil || !u.IsStaff {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "staff access required"})
		}
		return next(c)
	}
}
