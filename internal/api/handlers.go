package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/cookbook/backend/internal/database"
	"github.com/pageza/cookbook/backend/internal/middleware"
	"github.com/pageza/cookbook/backend/internal/service"
)

// Dependencies are the services behind the API. Redis, Images, Tokens and
// RateLimiter are optional.
type Dependencies struct {
	DB          *gorm.DB
	Redis       *redis.Client
	Recipes     service.IRecipeService
	Meals       service.IMealService
	Images      service.IImageService
	Tokens      middleware.TokenValidator
	RateLimiter *middleware.RateLimiter
}

// HealthCheck returns the health status of the API. The database is required;
// Redis only backs the cache and rate limiter, so losing it is reported
// without failing the check.
func HealthCheck(db *gorm.DB, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if db != nil {
			if err := database.HealthCheck(ctx, db); err != nil {
				log.Printf("[HealthCheck] database unreachable: %v", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
				return
			}
		}

		redisStatus := "disabled"
		if redisClient != nil {
			redisStatus = "ok"
			if err := database.RedisHealthCheck(ctx, redisClient); err != nil {
				log.Printf("[HealthCheck] redis unreachable: %v", err)
				redisStatus = "unavailable"
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "CookBook API is running",
			"redis":   redisStatus,
		})
	}
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	// Health check endpoint (no auth required)
	router.GET("/health", HealthCheck(deps.DB, deps.Redis))

	var guards []gin.HandlerFunc
	if deps.Tokens != nil {
		guards = append(guards, middleware.AuthMiddleware(deps.Tokens))
	} else {
		log.Printf("Warning: JWT_SECRET not set, write routes are unauthenticated")
	}
	if deps.RateLimiter != nil {
		guards = append(guards, deps.RateLimiter.RateLimitMiddleware())
	}

	v1 := router.Group("/api/v1")
	v1.GET("/health", HealthCheck(deps.DB, deps.Redis))
	NewRecipeHandler(deps.Recipes, deps.Images).RegisterRoutes(v1, guards...)
	NewMealHandler(deps.Meals, deps.Recipes).RegisterRoutes(v1, guards...)
}
