// masternet-engine bootstrap: applies schema migrations and seeds the course
// catalog and identity tables from fixture data, exactly once per store.
//
// The process always exits zero: every seeding failure is caught and logged,
// and a migration failure only skips seeding for the run.
package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/masternet-io/masternet-engine/pkg/config"
	"github.com/masternet-io/masternet-engine/pkg/database"
	"github.com/masternet-io/masternet-engine/pkg/fixtures"
	"github.com/masternet-io/masternet-engine/pkg/repositories"
	"github.com/masternet-io/masternet-engine/pkg/retry"
	"github.com/masternet-io/masternet-engine/pkg/seed"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// .env is optional; environment wins either way
	_ = godotenv.Load()

	cfg, err := config.Load(Version)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		return
	}

	logger := buildLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting masternet bootstrap",
		zap.String("version", cfg.Version),
		zap.String("env", cfg.Env),
		zap.String("database", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database)))

	ctx := context.Background()

	if err := migrate(cfg, logger); err != nil {
		logger.Error("Migration failed, seeding skipped for this run", zap.Error(err))
		return
	}

	db, err := retry.DoWithResultIfRetryable(ctx, nil, func() (*database.DB, error) {
		return database.NewConnection(ctx, &database.Config{
			URL:            cfg.Database.ConnectionString(),
			MaxConnections: cfg.Database.MaxConnections,
		})
	})
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		return
	}
	defer db.Close()

	store := fixtures.NewStore()
	if cfg.Seed.FixtureDir != "" {
		store = fixtures.NewStoreAt(cfg.Seed.FixtureDir)
	}

	orchestrator := seed.NewOrchestrator(
		store,
		repositories.NewPrecioRepository(db),
		repositories.NewInstructorRepository(db),
		repositories.NewCursoRepository(db),
		repositories.NewCalificacionRepository(db),
		logger,
	)
	for _, outcome := range orchestrator.Run(ctx) {
		switch outcome.Status {
		case seed.StatusSeeded:
			fmt.Printf("group %-15s seeded (%d rows)\n", outcome.Group, outcome.Rows)
		case seed.StatusSkipped:
			fmt.Printf("group %-15s skipped: %s\n", outcome.Group, outcome.Reason)
		case seed.StatusFailed:
			fmt.Printf("group %-15s FAILED: %s\n", outcome.Group, outcome.Reason)
		}
	}

	identity := seed.NewIdentityBootstrap(repositories.NewIdentityRepository(db), logger)
	if err := identity.Run(ctx); err != nil {
		logger.Warn("Identity bootstrap failed", zap.Error(err))
	}

	fmt.Println("Migration and seeding completed")
}

func migrate(cfg *config.Config, logger *zap.Logger) error {
	sqlDB, err := database.OpenSQL(cfg.Database.ConnectionString())
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()

	return database.RunMigrations(sqlDB, cfg.Seed.MigrationsPath, logger)
}

func buildLogger(env string) *zap.Logger {
	if env == "local" {
		logger, err := zap.NewDevelopment()
		if err == nil {
			return logger
		}
	}
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
