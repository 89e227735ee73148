package handler // handler defines http handlers

import (
	"log"      // log records internal failures server-side
	"net/http" // net/http provides status codes
	"strconv"  // strconv converts strings to numeric types
	"strings"  // strings provides trimming helpers

	"github.com/labstack/echo/v4" // echo defines request context types
)

// internalError logs the underlying failure and reports a generic message to
// the client. Error text from the store or other internals never reaches the
// response body.
func internalError(c echo.Context, err error) error {
	log.Printf("handler: %s %s: %v", c.Request().Method, c.Path(), err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
}

// toFloat coerces a JSON value into a float64. Clients send prices both as
// numbers and as strings; anything non-numeric becomes 0.
func toFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f
		}
	}
	return 0
}

// toInt coerces a JSON value into an int, defaulting to 0 on non-numeric
// input.
func toInt(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case int:
		return t
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n
		}
	}
	return 0
}

// strOr returns s, or def when s is empty.
func strOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
