package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campusdesk/portal/core/account"
)

const (
	loginPath     = "/login"
	dashboardPath = "/dashboard"
)

// guard lets a request through only when a session exists and, if roles are given, has one of them.
// Otherwise the client is redirected to the login page or to its dashboard.
func guard(roles ...account.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			sess, ok, err := getContextSession(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context session")
			}
			if !ok {
				return ctx.Redirect(http.StatusFound, loginPath)
			}
			if len(roles) == 0 {
				return next(ctx)
			}
			for _, role := range roles {
				if sess.Role == role {
					return next(ctx)
				}
			}
			return ctx.Redirect(http.StatusFound, dashboardPath)
		}
	}
}
