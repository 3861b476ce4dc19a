package rdb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"recipes/config"
	deliverycontext "recipes/internal/delivery/context"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// statementLogger routes gorm output to slog. Statements run inside a request are
// logged through that request's logger so they carry its request_id and caller.
// Missing rows are a normal outcome for recipe and account lookups and are never logged.
type statementLogger struct {
	base      *slog.Logger
	level     logger.LogLevel
	slowAfter time.Duration
}

func newStatementLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	l := &statementLogger{
		base:      base,
		level:     logger.Warn,
		slowAfter: defaultSlowQueryThreshold,
	}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Database.SlowQueryThreshold > 0 {
		l.slowAfter = cfg.Database.SlowQueryThreshold
	}

	return l
}

func (l *statementLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *statementLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *statementLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *statementLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *statementLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		l.statement(ctx, slog.LevelError, "sql statement failed", fc, elapsed, slog.String("error", err.Error()))
	case l.slowAfter > 0 && elapsed > l.slowAfter && l.level >= logger.Warn:
		l.statement(ctx, slog.LevelWarn, "slow sql statement", fc, elapsed, slog.Duration("threshold", l.slowAfter))
	case l.level >= logger.Info:
		l.statement(ctx, slog.LevelDebug, "sql statement", fc, elapsed)
	}
}

func (l *statementLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold {
		return
	}
	l.scoped(ctx).LogAttrs(ctx, level, fmt.Sprintf(msg, args...), slog.String("component", "gorm"))
}

func (l *statementLogger) statement(ctx context.Context, level slog.Level, msg string, fc func() (string, int64), elapsed time.Duration, extra ...slog.Attr) {
	sql, rows := fc()
	attrs := append([]slog.Attr{
		slog.String("component", "gorm"),
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}, extra...)
	l.scoped(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *statementLogger) scoped(ctx context.Context) *slog.Logger {
	if ctx == nil {
		ctx = context.Background()
	}
	if scoped := deliverycontext.Logger(ctx, l.base); scoped != nil {
		return scoped
	}

	return slog.New(slog.DiscardHandler)
}
