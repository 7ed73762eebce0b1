package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/poseidontrading/refdata-api/internal/api/metrics"
)

// RBAC enforces role-based access control. A token whose role claim is not
// in the allowed set gets 403; the rejection is logged with the route and
// caller identity for the audit trail.
func RBAC(log zerolog.Logger, allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				username, _ := c.Get("username").(string)
				log.Warn().
					Str("method", c.Request().Method).
					Str("path", c.Request().URL.Path).
					Str("username", username).
					Str("role", role).
					Msg("insufficient role")
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
