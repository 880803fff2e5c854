package config

import (
	"os"
	"strings"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// ParseEnvironment maps an ENV value onto a known environment.
// Empty or unknown values fall back to development.
func ParseEnvironment(value string) Environment {
	switch env := Environment(strings.ToLower(strings.TrimSpace(value))); env {
	case Development, Test, CI, Production:
		return env
	default:
		return Development
	}
}

// GetEnvironment determines the current environment. CI=true wins over ENV.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	return ParseEnvironment(os.Getenv("ENV"))
}

// ReadsDockerSecrets reports whether values missing from the environment
// may be filled from /run/secrets.
func (e Environment) ReadsDockerSecrets() bool {
	return e != CI
}

// ReleaseMode reports whether the HTTP engine runs without debug output.
func (e Environment) ReleaseMode() bool {
	return e == Production
}
