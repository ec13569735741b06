// devseed populates an empty development database with faker-generated
// catalog data instead of fixtures. It never touches tables that already
// contain rows.
//
// Usage: go run ./scripts/devseed [-seed N]
//
// Database connection: standard PG* environment variables (or config.yaml).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/masternet-io/masternet-engine/pkg/config"
	"github.com/masternet-io/masternet-engine/pkg/database"
	"github.com/masternet-io/masternet-engine/pkg/repositories"
	"github.com/masternet-io/masternet-engine/pkg/seed"
)

func main() {
	fakerSeed := flag.Uint64("seed", 0, "Faker seed (0 = random)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load("dev")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	db, err := database.NewConnection(ctx, &database.Config{
		URL:            cfg.Database.ConnectionString(),
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	generator := seed.NewSynthetic(
		repositories.NewPrecioRepository(db),
		repositories.NewInstructorRepository(db),
		repositories.NewCursoRepository(db),
		repositories.NewCalificacionRepository(db),
		logger,
		*fakerSeed,
	)
	if err := generator.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Synthetic seeding failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Synthetic seeding completed")
}
