package rdb

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"recipes/internal/errors"
	"recipes/internal/infra/persistence/rdb/migrations"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// goose keeps its dialect and filesystem in package globals.
var gooseMu sync.Mutex

// Migrate applies every pending embedded migration for the database's dialect.
func Migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	gooseDialect, dir, err := migrationSource(db.Dialector.Name())
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB for migrations")
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(&gooseSlogLogger{logger: logger})
	if err := goose.SetDialect(gooseDialect); err != nil {
		return errors.Wrapf(err, "failed to set goose dialect %s", gooseDialect)
	}

	if err := goose.UpContext(ctx, sqlDB, dir); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

func migrationSource(dialectorName string) (gooseDialect, dir string, err error) {
	switch dialectorName {
	case dialectPostgres:
		return "postgres", "postgres", nil
	case dialectSQLite:
		return "sqlite3", "sqlite", nil
	default:
		return "", "", errors.Errorf("no migrations for dialect %q", dialectorName)
	}
}

// gooseSlogLogger routes goose progress output through slog.
type gooseSlogLogger struct {
	logger *slog.Logger
}

func (l *gooseSlogLogger) Printf(format string, v ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Info("goose", slog.String("message", strings.TrimSpace(fmt.Sprintf(format, v...))))
}

func (l *gooseSlogLogger) Fatalf(format string, v ...any) {
	if l.logger != nil {
		l.logger.Error("goose fatal", slog.String("message", strings.TrimSpace(fmt.Sprintf(format, v...))))
	}
	os.Exit(1)
}
