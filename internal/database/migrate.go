package database

import (
	"fmt"
	"log"

	"github.com/pageza/cookbook/backend/internal/model"
	"gorm.io/gorm"
)

// recipesTableSQLite is the on-device table layout. It is kept verbatim so
// files written by earlier versions of the app open without changes.
const recipesTableSQLite = `
CREATE TABLE IF NOT EXISTS recipes (
	id INTEGER PRIMARY KEY NOT NULL,
	name TEXT NOT NULL,
	category TEXT NOT NULL,
	area TEXT NOT NULL,
	image_url TEXT NULL,
	instructions TEXT NOT NULL,
	ingredients TEXT NOT NULL
);`

// RunMigrations ensures the recipes table exists. It is safe to run repeatedly.
func RunMigrations(db *gorm.DB) error {
	if db.Dialector.Name() == "sqlite" {
		if err := db.Exec(recipesTableSQLite).Error; err != nil {
			return fmt.Errorf("failed to create recipes table: %w", err)
		}
		return nil
	}

	log.Printf("Using GORM auto-migration for %s", db.Dialector.Name())
	if err := db.AutoMigrate(&model.Recipe{}); err != nil {
		return fmt.Errorf("failed to migrate recipes table: %w", err)
	}
	return nil
}
