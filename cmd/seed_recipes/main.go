package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/pageza/cookbook/backend/config"
	"github.com/pageza/cookbook/backend/internal/database"
	"github.com/pageza/cookbook/backend/internal/model"
	"github.com/pageza/cookbook/backend/internal/service"
)

func main() {
	letters := flag.String("letters", "a", "First letters of the TheMealDB meals to import")
	limit := flag.Int("limit", 0, "Maximum number of recipes to import (0 for no limit)")
	flag.Parse()

	if err := run(*letters, *limit); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}

func run(letters string, limit int) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	meals := service.NewMealService(cfg.MealDBBaseURL, cfg.MealDBTimeout, nil)
	recipes := service.NewRecipeService(db)

	n, err := seed(context.Background(), meals, recipes, letters, limit)
	log.Printf("Imported %d recipes", n)
	return err
}

// seed copies the meals listed under each letter into the personal store
func seed(ctx context.Context, meals service.IMealService, recipes service.IRecipeService, letters string, limit int) (int, error) {
	imported := 0
	for _, letter := range strings.Split(letters, "") {
		remote, err := meals.ListMealsByLetter(ctx, letter)
		if err != nil {
			return imported, fmt.Errorf("failed to list meals for %q: %w", letter, err)
		}
		log.Printf("Found %d meals starting with %q", len(remote), letter)

		for _, meal := range remote {
			if limit > 0 && imported >= limit {
				return imported, nil
			}
			recipe, err := recipes.CreateRecipe(ctx, model.FromRemote(meal))
			if err != nil {
				return imported, fmt.Errorf("failed to save %q: %w", meal.Name, err)
			}
			log.Printf("Created recipe %d: %s", recipe.ID, recipe.Name)
			imported++
		}
	}
	return imported, nil
}
