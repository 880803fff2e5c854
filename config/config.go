package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Database drivers understood by the database package
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort  string
	ServerHost  string
	CORSOrigins []string

	// Database configuration
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration; an empty secret leaves write routes unguarded
	JWTSecret string

	// TheMealDB client
	MealDBBaseURL  string
	MealDBTimeout  time.Duration
	MealDBCacheTTL time.Duration

	// Recipe image storage
	S3BucketName string
	AWSRegion    string
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := defaults()

	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load %s configuration: %w", env, err)
	}

	// Outside CI, sensitive values fall back to Docker secrets
	if env.ReadsDockerSecrets() {
		loadSecrets(cfg)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		ServerPort:     "8080",
		ServerHost:     "0.0.0.0",
		DBDriver:       DriverSQLite,
		DBPath:         filepath.Join("data", "CookBook.db"),
		DBPort:         "5432",
		DBSSLMode:      "disable",
		RedisPort:      "6379",
		MealDBBaseURL:  "https://www.themealdb.com/api/json/v1/1",
		MealDBTimeout:  10 * time.Second,
		MealDBCacheTTL: time.Hour,
	}
}

func loadFromEnv(cfg *Config) error {
	setString(&cfg.ServerPort, "SERVER_PORT")
	setString(&cfg.ServerHost, "SERVER_HOST")
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitList(origins)
	}

	setString(&cfg.DBDriver, "DB_DRIVER")
	cfg.DBDriver = strings.ToLower(cfg.DBDriver)
	setString(&cfg.DBPath, "DB_PATH")
	setString(&cfg.DBHost, "DB_HOST")
	setString(&cfg.DBPort, "DB_PORT")
	setString(&cfg.DBUser, "DB_USER")
	setString(&cfg.DBPassword, "DB_PASSWORD")
	setString(&cfg.DBName, "DB_NAME")
	setString(&cfg.DBSSLMode, "DB_SSL_MODE")

	setString(&cfg.RedisHost, "REDIS_HOST")
	setString(&cfg.RedisPort, "REDIS_PORT")
	setString(&cfg.RedisPassword, "REDIS_PASSWORD")
	setString(&cfg.RedisURL, "REDIS_URL")
	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		cfg.RedisDB = db
	}

	setString(&cfg.JWTSecret, "JWT_SECRET")

	setString(&cfg.MealDBBaseURL, "MEALDB_BASE_URL")
	cfg.MealDBBaseURL = strings.TrimRight(cfg.MealDBBaseURL, "/")
	if err := setDuration(&cfg.MealDBTimeout, "MEALDB_TIMEOUT"); err != nil {
		return err
	}
	if err := setDuration(&cfg.MealDBCacheTTL, "MEALDB_CACHE_TTL"); err != nil {
		return err
	}

	setString(&cfg.S3BucketName, "S3_BUCKET_NAME")
	setString(&cfg.AWSRegion, "AWS_REGION")

	return nil
}

// loadSecrets fills sensitive values that were not provided through the environment
func loadSecrets(cfg *Config) {
	if cfg.DBPassword == "" {
		cfg.DBPassword = readSecret("db_password")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = readSecret("jwt_secret")
	}
	if cfg.RedisPassword == "" {
		cfg.RedisPassword = readSecret("redis_password")
	}
}

// RedisEnabled reports whether any Redis endpoint was configured
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// ImageStorageEnabled reports whether recipe images can be uploaded
func (c *Config) ImageStorageEnabled() bool {
	return c.S3BucketName != ""
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = d
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
