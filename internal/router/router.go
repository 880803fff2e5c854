package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/cookbook/backend/config"
	"github.com/pageza/cookbook/backend/internal/api"
	"github.com/pageza/cookbook/backend/internal/middleware"
)

// SetupRouter configures the middleware chain and the application routes
func SetupRouter(cfg *config.Config, deps api.Dependencies) *gin.Engine {
	if config.GetEnvironment().ReleaseMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())

	// Panics and handler errors become JSON responses
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(middleware.CORS(cfg.CORSOrigins))

	api.RegisterRoutes(router, deps)

	return router
}
