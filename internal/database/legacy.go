package database

import (
	"context"
	"fmt"
	"log"

	"github.com/pageza/cookbook/backend/internal/model"
	"gorm.io/gorm"
)

type ingredientsRow struct {
	ID          int64
	Ingredients string
}

// ConvertLegacyIngredients rewrites every row still holding the pipe-and-comma
// ingredient text as a JSON array and returns how many rows qualified.
// With dryRun set nothing is written.
func ConvertLegacyIngredients(ctx context.Context, db *gorm.DB, dryRun bool) (int, error) {
	var rows []ingredientsRow
	if err := db.WithContext(ctx).Raw("SELECT id, ingredients FROM recipes ORDER BY id").Scan(&rows).Error; err != nil {
		return 0, fmt.Errorf("failed to read recipes: %w", err)
	}

	var legacy []ingredientsRow
	for _, row := range rows {
		if model.IsLegacyEncoded(row.Ingredients) {
			legacy = append(legacy, row)
		}
	}
	if dryRun || len(legacy) == 0 {
		for _, row := range legacy {
			log.Printf("Recipe %d would be converted: %q", row.ID, row.Ingredients)
		}
		return len(legacy), nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range legacy {
			decoded := model.DecodeLegacyIngredients(row.Ingredients)
			if err := tx.Model(&model.Recipe{}).Where("id = ?", row.ID).Update("ingredients", decoded).Error; err != nil {
				return fmt.Errorf("failed to convert recipe %d: %w", row.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(legacy), nil
}

// RevertToLegacyIngredients rewrites JSON ingredient rows back into the
// pipe-and-comma text read by older app versions. It writes nothing when any
// row holds a value containing a delimiter, since that row cannot be encoded.
func RevertToLegacyIngredients(ctx context.Context, db *gorm.DB, dryRun bool) (int, error) {
	var rows []ingredientsRow
	if err := db.WithContext(ctx).Raw("SELECT id, ingredients FROM recipes ORDER BY id").Scan(&rows).Error; err != nil {
		return 0, fmt.Errorf("failed to read recipes: %w", err)
	}

	encoded := make(map[int64]string)
	for _, row := range rows {
		if model.IsLegacyEncoded(row.Ingredients) {
			continue
		}
		var ingredients model.Ingredients
		if err := ingredients.Scan(row.Ingredients); err != nil {
			return 0, fmt.Errorf("failed to decode recipe %d: %w", row.ID, err)
		}
		text, err := model.EncodeLegacyIngredients(ingredients)
		if err != nil {
			return 0, fmt.Errorf("recipe %d: %w", row.ID, err)
		}
		encoded[row.ID] = text
	}
	if dryRun || len(encoded) == 0 {
		return len(encoded), nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, text := range encoded {
			if err := tx.Exec("UPDATE recipes SET ingredients = ? WHERE id = ?", text, id).Error; err != nil {
				return fmt.Errorf("failed to revert recipe %d: %w", id, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(encoded), nil
}
