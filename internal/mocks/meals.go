package mocks

import (
	"context"
	"io"

	"github.com/pageza/cookbook/backend/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockMealService is a mock implementation of the TheMealDB client
type MockMealService struct {
	mock.Mock
}

func (m *MockMealService) ListMeals(ctx context.Context) ([]*model.RemoteRecipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.RemoteRecipe), args.Error(1)
}

func (m *MockMealService) ListMealsByLetter(ctx context.Context, letter string) ([]*model.RemoteRecipe, error) {
	args := m.Called(ctx, letter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.RemoteRecipe), args.Error(1)
}

func (m *MockMealService) SearchMeals(ctx context.Context, name string) ([]*model.RemoteRecipe, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.RemoteRecipe), args.Error(1)
}

func (m *MockMealService) LookupMeal(ctx context.Context, id string) (*model.RemoteRecipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RemoteRecipe), args.Error(1)
}

// MockImageService is a mock implementation of the image service
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) UploadRecipeImage(ctx context.Context, recipeID int64, r io.Reader) (string, error) {
	args := m.Called(ctx, recipeID, r)
	return args.String(0), args.Error(1)
}
