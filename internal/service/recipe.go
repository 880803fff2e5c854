package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/pageza/cookbook/backend/internal/model"
	"gorm.io/gorm"
)

// RecipeService handles personal recipe storage
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListRecipes returns every stored recipe ordered by id.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]*model.Recipe, error) {
	recipes := make([]*model.Recipe, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&recipes).Error; err != nil {
		return nil, s.storageError("list", err)
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id int64) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, s.storageError("get", err)
	}
	return &recipe, nil
}

// CreateRecipe stores a new recipe, filling empty fields with defaults.
// The id is always assigned by the database.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	recipe.ID = 0
	recipe.ApplyDefaults()

	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, s.storageError("insert", err)
	}
	return recipe, nil
}

// UpdateRecipe rewrites every field of the recipe with the given id.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id int64, recipe *model.Recipe) (*model.Recipe, error) {
	if strings.TrimSpace(recipe.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidRecipe)
	}
	if recipe.Ingredients == nil {
		recipe.Ingredients = model.Ingredients{}
	}

	// A map keeps empty strings in the SET clause; id is never among the columns
	result := s.db.WithContext(ctx).
		Model(&model.Recipe{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":         recipe.Name,
			"category":     recipe.Category,
			"area":         recipe.Area,
			"image_url":    recipe.ImageURL,
			"instructions": recipe.Instructions,
			"ingredients":  recipe.Ingredients,
		})
	if result.Error != nil {
		return nil, s.storageError("update", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecipeNotFound
	}
	return s.GetRecipe(ctx, id)
}

// DeleteRecipe deletes a recipe
func (s *RecipeService) DeleteRecipe(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Recipe{})
	if result.Error != nil {
		return s.storageError("delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

// SetImageURL replaces only the image of a stored recipe.
func (s *RecipeService) SetImageURL(ctx context.Context, id int64, imageURL string) (*model.Recipe, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Recipe{}).
		Where("id = ?", id).
		Update("image_url", imageURL)
	if result.Error != nil {
		return nil, s.storageError("update image", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecipeNotFound
	}
	return s.GetRecipe(ctx, id)
}

func (s *RecipeService) storageError(op string, err error) error {
	log.Printf("[RecipeService] recipe %s failed: %v", op, err)
	return &StorageError{Op: op, Err: err}
}
