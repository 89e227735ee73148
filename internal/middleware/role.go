package middleware // middleware provides shared request processing for handlers

import (
	"net/http" // http package defines standard HTTP status codes

	"github.com/labstack/echo/v4" // echo provides middleware chaining and context
)

// RequireRole returns a middleware that enforces that the authenticated user
// holds one of the given roles. It composes after JWTAuth, which stores the
// role claim in the context; without that, every request is rejected. The
// error message names the allowed roles so clients understand what tier the
// endpoint requires.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	msg := roleError(roles)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxRole).(string)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": msg})
			}
			return next(c)
		}
	}
}

func roleError(roles []string) string {
	switch {
	case len(roles) == 1 && roles[0] == "admin":
		return "Admin access required"
	case len(roles) == 2:
		return "Farmer or Admin access required"
	}
	return "forbidden"
}
