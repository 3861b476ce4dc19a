package context

import (
	"log/slog"

	"github.com/labstack/echo/v4"
)

// SetCaller records the authenticated caller's email on c. The request logger,
// when present, is re-bound with a caller attribute so use case logs carry it.
func SetCaller(c echo.Context, email string) {
	c.Set(string(keyCaller), email)

	if logger := Logger(c.Request().Context(), nil); logger != nil {
		bindLogger(c, logger.With(slog.String("caller", email)))
	}
}

// GetCaller returns the authenticated caller's email and whether one is present.
func GetCaller(c echo.Context) (string, bool) {
	email, ok := c.Get(string(keyCaller)).(string)

	return email, ok && email != ""
}
