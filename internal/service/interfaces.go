package service

import (
	"context"
	"io"

	"github.com/pageza/cookbook/backend/internal/model"
)

// IRecipeService defines the interface for personal recipe storage
type IRecipeService interface {
	ListRecipes(ctx context.Context) ([]*model.Recipe, error)
	GetRecipe(ctx context.Context, id int64) (*model.Recipe, error)
	CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error)
	UpdateRecipe(ctx context.Context, id int64, recipe *model.Recipe) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, id int64) error
	SetImageURL(ctx context.Context, id int64, imageURL string) (*model.Recipe, error)
}

// IMealService defines the interface for browsing TheMealDB
type IMealService interface {
	ListMeals(ctx context.Context) ([]*model.RemoteRecipe, error)
	ListMealsByLetter(ctx context.Context, letter string) ([]*model.RemoteRecipe, error)
	SearchMeals(ctx context.Context, name string) ([]*model.RemoteRecipe, error)
	LookupMeal(ctx context.Context, id string) (*model.RemoteRecipe, error)
}

// IImageService defines the interface for recipe image storage
type IImageService interface {
	UploadRecipeImage(ctx context.Context, recipeID int64, r io.Reader) (string, error)
}

var (
	_ IRecipeService = (*RecipeService)(nil)
	_ IMealService   = (*MealService)(nil)
	_ IImageService  = (*ImageService)(nil)
)
