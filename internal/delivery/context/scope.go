// Package context carries request-scoped values between middleware, handlers and use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	keyRequestID contextKey = "request_id"
	keyLogger    contextKey = "logger"
	keyCaller    contextKey = "caller"
)

// BeginRequest records the request id on c and binds a logger tagged with it
// to the request's context.Context.
func BeginRequest(c echo.Context, requestID string, base *slog.Logger) {
	c.Set(string(keyRequestID), requestID)
	bindLogger(c, base.With(slog.String("request_id", requestID)))
}

// GetRequestID returns the id recorded by BeginRequest, or "" if none was.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(keyRequestID)).(string)

	return id
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// Logger returns the request-scoped logger carried by ctx, or fallback.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func bindLogger(c echo.Context, logger *slog.Logger) {
	req := c.Request()
	c.SetRequest(req.WithContext(WithLogger(req.Context(), logger)))
}
