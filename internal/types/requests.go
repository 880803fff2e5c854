package types

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pageza/cookbook/backend/internal/model"
)

// ErrBlankField is returned when a required field holds only whitespace
var ErrBlankField = errors.New("required field is blank")

// IngredientRequest is one ingredient line in a request body
type IngredientRequest struct {
	Ingredient string `json:"ingredient" binding:"required"`
	Measure    string `json:"measure"`
}

// CreateRecipeRequest represents the request body for creating a recipe.
// Every field is optional; omitted ones receive their defaults.
type CreateRecipeRequest struct {
	Name         string              `json:"name"`
	Category     string              `json:"category"`
	Area         string              `json:"area"`
	ImageURL     string              `json:"image_url"`
	Instructions string              `json:"instructions"`
	Ingredients  []IngredientRequest `json:"ingredients" binding:"omitempty,dive"`
}

// UpdateRecipeRequest represents the request body for updating a recipe
type UpdateRecipeRequest struct {
	Name         string              `json:"name" binding:"required,min=3"`
	Category     string              `json:"category" binding:"required"`
	Area         string              `json:"area" binding:"required"`
	ImageURL     string              `json:"image_url"`
	Instructions string              `json:"instructions"`
	Ingredients  []IngredientRequest `json:"ingredients" binding:"required,min=1,dive"`
}

// ToRecipe converts the request into a recipe model. Values are kept as sent.
func (r *CreateRecipeRequest) ToRecipe() *model.Recipe {
	return &model.Recipe{
		Name:         r.Name,
		Category:     r.Category,
		Area:         r.Area,
		ImageURL:     r.ImageURL,
		Instructions: r.Instructions,
		Ingredients:  toIngredients(r.Ingredients),
	}
}

// Validate re-checks the binding rules against trimmed values, so padding
// cannot satisfy a required or min-length constraint.
func (r *UpdateRecipeRequest) Validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(r.Name)) < 3 {
		return fmt.Errorf("%w: name must have at least 3 characters", ErrBlankField)
	}
	if strings.TrimSpace(r.Category) == "" {
		return fmt.Errorf("%w: category", ErrBlankField)
	}
	if strings.TrimSpace(r.Area) == "" {
		return fmt.Errorf("%w: area", ErrBlankField)
	}
	for i, ing := range r.Ingredients {
		if strings.TrimSpace(ing.Ingredient) == "" {
			return fmt.Errorf("%w: ingredient %d", ErrBlankField, i)
		}
	}
	return nil
}

// ToRecipe converts the request into a recipe model
func (r *UpdateRecipeRequest) ToRecipe() *model.Recipe {
	return &model.Recipe{
		Name:         r.Name,
		Category:     r.Category,
		Area:         r.Area,
		ImageURL:     r.ImageURL,
		Instructions: r.Instructions,
		Ingredients:  toIngredients(r.Ingredients),
	}
}

func toIngredients(in []IngredientRequest) model.Ingredients {
	out := make(model.Ingredients, 0, len(in))
	for _, ing := range in {
		out = append(out, model.Ingredient{Ingredient: ing.Ingredient, Measure: ing.Measure})
	}
	return out
}
