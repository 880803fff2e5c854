package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/pageza/cookbook/backend/config"
	"github.com/pageza/cookbook/backend/internal/database"
)

func main() {
	// Parse command line flags
	dbPath := flag.String("db", "", "SQLite database file (defaults to DB_PATH)")
	dryRun := flag.Bool("dry-run", false, "Report rows that would change without writing them")
	rollback := flag.Bool("rollback", false, "Rewrite JSON ingredients back into the legacy text encoding")
	flag.Parse()

	if err := run(*dbPath, *dryRun, *rollback); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
}

func run(dbPath string, dryRun, rollback bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if dbPath != "" {
		cfg.DBDriver = config.DriverSQLite
		cfg.DBPath = dbPath
	}

	// Opening the database also creates the recipes table if it is missing
	db, err := database.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	ctx := context.Background()
	if rollback {
		n, err := database.RevertToLegacyIngredients(ctx, db, dryRun)
		if err != nil {
			return err
		}
		log.Printf("Reverted %d recipes to legacy ingredients (dry run: %t)", n, dryRun)
		return nil
	}

	n, err := database.ConvertLegacyIngredients(ctx, db, dryRun)
	if err != nil {
		return err
	}
	log.Printf("Converted %d recipes to JSON ingredients (dry run: %t)", n, dryRun)
	return nil
}
