package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/cookbook/backend/internal/service"
	"github.com/pageza/cookbook/backend/internal/types"
)

// RecipeHandler serves the personal recipe store
type RecipeHandler struct {
	recipes service.IRecipeService
	images  service.IImageService
}

// NewRecipeHandler creates a recipe handler. images may be nil when no bucket is configured.
func NewRecipeHandler(recipes service.IRecipeService, images service.IImageService) *RecipeHandler {
	return &RecipeHandler{
		recipes: recipes,
		images:  images,
	}
}

// RegisterRoutes mounts the recipe routes. guards run before every write.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, guards ...gin.HandlerFunc) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", guarded(guards, h.CreateRecipe)...)
		recipes.PUT("/:id", guarded(guards, h.UpdateRecipe)...)
		recipes.DELETE("/:id", guarded(guards, h.DeleteRecipe)...)
		recipes.POST("/:id/image", guarded(guards, h.UploadImage)...)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipes(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), req.ToRecipe())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"recipe": recipe,
	})
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.UpdateRecipe(c.Request.Context(), id, req.ToRecipe())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipe": recipe,
	})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	if err := h.recipes.DeleteRecipe(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadImage stores the multipart "image" file and points the recipe at it
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image storage is not configured"})
		return
	}

	id, ok := recipeID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	// Check the recipe first so a bad id never leaves an orphaned object behind
	if _, err := h.recipes.GetRecipe(ctx, id); err != nil {
		_ = c.Error(err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image file"})
		return
	}
	defer file.Close()

	imageURL, err := h.images.UploadRecipeImage(ctx, id, file)
	if err != nil {
		_ = c.Error(err)
		return
	}

	recipe, err := h.recipes.SetImageURL(ctx, id, imageURL)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"image_url": imageURL,
		"recipe":    recipe,
	})
}

// recipeID parses the :id parameter, answering 400 when it is not a positive integer
func recipeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return 0, false
	}
	return id, true
}

func guarded(guards []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(guards)+1)
	chain = append(chain, guards...)
	return append(chain, handler)
}
