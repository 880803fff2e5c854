package config

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in a configuration
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "\n")
}

// ConfigRequirements defines required configuration for each environment
type ConfigRequirements struct {
	RequireJWTSecret bool
}

var requirements = map[Environment]ConfigRequirements{
	Development: {},
	Test:        {},
	CI:          {},
	Production:  {RequireJWTSecret: true},
}

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	reqs := requirements[GetEnvironment()]

	var errs ValidationErrors

	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{"SERVER_PORT", "must not be empty"})
	}

	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.DBPath == "" {
			errs = append(errs, ValidationError{"DB_PATH", "required for the sqlite driver"})
		}
	case DriverPostgres:
		for field, value := range map[string]string{
			"DB_HOST": cfg.DBHost,
			"DB_USER": cfg.DBUser,
			"DB_NAME": cfg.DBName,
		} {
			if value == "" {
				errs = append(errs, ValidationError{field, "required for the postgres driver"})
			}
		}
	default:
		errs = append(errs, ValidationError{"DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}

	if cfg.MealDBBaseURL == "" {
		errs = append(errs, ValidationError{"MEALDB_BASE_URL", "must not be empty"})
	}
	if cfg.MealDBTimeout <= 0 {
		errs = append(errs, ValidationError{"MEALDB_TIMEOUT", "must be positive"})
	}
	if cfg.MealDBCacheTTL < time.Second && cfg.MealDBCacheTTL != 0 {
		errs = append(errs, ValidationError{"MEALDB_CACHE_TTL", "must be zero or at least one second"})
	}

	if reqs.RequireJWTSecret && cfg.JWTSecret == "" {
		errs = append(errs, ValidationError{"JWT_SECRET", "required in production"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
