package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/cookbook/backend/config"
	"github.com/pageza/cookbook/backend/internal/api"
	"github.com/pageza/cookbook/backend/internal/database"
	"github.com/pageza/cookbook/backend/internal/middleware"
	"github.com/pageza/cookbook/backend/internal/server"
	"github.com/pageza/cookbook/backend/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Starting CookBook API in %s mode", config.GetEnvironment())

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	redisClient := connectRedis(cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	srv := server.New(cfg, buildDependencies(cfg, db, redisClient))

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			log.Printf("Server error: %v", err)
			return
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	// Gracefully shutdown the server
	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

// connectRedis returns nil when Redis is not configured or unreachable
func connectRedis(cfg *config.Config) *redis.Client {
	if !cfg.RedisEnabled() {
		log.Println("Redis not configured, running without response cache and rate limiting")
		return nil
	}
	client, err := database.NewRedisClient(context.Background(), cfg)
	if err != nil {
		log.Printf("Warning: %v; running without response cache and rate limiting", err)
		return nil
	}
	return client
}

func buildDependencies(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) api.Dependencies {
	deps := api.Dependencies{
		DB:      db,
		Redis:   redisClient,
		Recipes: service.NewRecipeService(db),
	}

	var cache service.ResponseCache
	if redisClient != nil && cfg.MealDBCacheTTL > 0 {
		cache = service.NewRedisCache(redisClient, "mealdb:", cfg.MealDBCacheTTL)
	}
	deps.Meals = service.NewMealService(cfg.MealDBBaseURL, cfg.MealDBTimeout, cache)

	if redisClient != nil {
		deps.RateLimiter = middleware.NewRecipeWriteRateLimiter(redisClient)
	}

	if cfg.JWTSecret != "" {
		deps.Tokens = service.NewTokenService(cfg.JWTSecret)
	}

	if cfg.ImageStorageEnabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s3Config, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			log.Printf("Warning: image uploads disabled: %v", err)
		} else {
			deps.Images = service.NewImageService(s3Config)
		}
	}

	return deps
}
