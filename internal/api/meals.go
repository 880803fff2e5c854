package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/cookbook/backend/internal/model"
	"github.com/pageza/cookbook/backend/internal/service"
)

// MealHandler serves the TheMealDB browse flow
type MealHandler struct {
	meals   service.IMealService
	recipes service.IRecipeService
}

// NewMealHandler creates a meal handler
func NewMealHandler(meals service.IMealService, recipes service.IRecipeService) *MealHandler {
	return &MealHandler{
		meals:   meals,
		recipes: recipes,
	}
}

// RegisterRoutes mounts the meal routes. guards run before saving a meal.
func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup, guards ...gin.HandlerFunc) {
	meals := router.Group("/meals")
	{
		meals.GET("", h.ListMeals)
		meals.GET("/:id", h.GetMeal)
		meals.POST("/:id/save", guarded(guards, h.SaveMeal)...)
	}
}

// ListMeals searches by ?q=, filters by ?letter=, or lists the default page
func (h *MealHandler) ListMeals(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		meals []*model.RemoteRecipe
		err   error
	)
	switch q, letter := c.Query("q"), c.Query("letter"); {
	case q != "":
		meals, err = h.meals.SearchMeals(ctx, q)
	case letter != "":
		meals, err = h.meals.ListMealsByLetter(ctx, letter)
	default:
		meals, err = h.meals.ListMeals(ctx)
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"meals": meals,
	})
}

func (h *MealHandler) GetMeal(c *gin.Context) {
	meal, err := h.meals.LookupMeal(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, meal)
}

// SaveMeal copies a remote meal into the personal store
func (h *MealHandler) SaveMeal(c *gin.Context) {
	ctx := c.Request.Context()

	meal, err := h.meals.LookupMeal(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	recipe, err := h.recipes.CreateRecipe(ctx, model.FromRemote(meal))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"recipe": recipe,
	})
}

// fail reports caller mistakes through the error middleware and everything else as a bad gateway
func (h *MealHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, service.ErrInvalidLetter) || errors.Is(err, service.ErrMealNotFound) {
		_ = c.Error(err)
		return
	}
	log.Printf("[MealHandler] TheMealDB request failed: %v", err)
	c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch meals from TheMealDB"})
}
