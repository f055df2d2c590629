package postgres

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

func pgLogger() *slog.Logger {
	return slog.Default().With(
		"service", "taskdeck-auth",
		"module", "postgres",
		"layer", "adapter",
	)
}

// Connect opens and validates a Postgres-backed GORM connection pool.
// Pool parameters are set centrally to keep service behavior predictable across runtimes.
func Connect(ctx context.Context, databaseURL string, maxConns int32) (*gorm.DB, error) {
	pgLogger().InfoContext(ctx, "postgres connect started",
		"operation", "connect",
		"outcome", "start",
	)
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("gorm sql db: %w", err)
	}
	if maxConns > 0 {
		sqlDB.SetMaxOpenConns(int(maxConns))
		sqlDB.SetMaxIdleConns(int(maxConns) / 2)
	}
	sqlDB.SetConnMaxIdleTime(15 * time.Minute)
	sqlDB.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	pgLogger().InfoContext(ctx, "postgres connect completed",
		"operation", "connect",
		"outcome", "success",
	)
	return db, nil
}

// RunMigrations applies embedded SQL migrations in lexical order.
// Embedding migrations with the binary avoids drift between code and schema at startup.
func RunMigrations(ctx context.Context, db *gorm.DB) error {
	entries, err := migrationFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	pgLogger().InfoContext(ctx, "postgres migrations started",
		"operation", "run_migrations",
		"outcome", "start",
		"migration_count", len(names),
	)

	for _, name := range names {
		raw, err := migrationFS.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if err := db.WithContext(ctx).Exec(string(raw)).Error; err != nil {
			return fmt.Errorf("exec migration %s: %w", name, err)
		}
		pgLogger().InfoContext(ctx, "migration applied",
			"operation", "apply_migration",
			"outcome", "success",
			"migration", name,
		)
	}
	pgLogger().InfoContext(ctx, "postgres migrations completed",
		"operation", "run_migrations",
		"outcome", "success",
		"migration_count", len(names),
	)
	return nil
}
