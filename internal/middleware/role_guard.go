package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nazmulhossain17/niyenin-api/internal/usecase/authz"
)

// RequireRoleはmin以上の権限（levelがmin以下）を要求する。
// AuthJWTの後段に置くこと。
func RequireRole(min authz.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			if !p.Role.AtLeast(min) {
				return c.JSON(http.StatusForbidden, errorJSON("forbidden"))
			}

			return next(c)
		}
	}
}

// AdminOnlyはadmin専用ルート向けのショートカット。
func AdminOnly() echo.MiddlewareFunc {
	return RequireRole(authz.RoleAdmin)
}
