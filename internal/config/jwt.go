package config

import (
	"fmt"
	"os"
	"strconv"
)

// JWTConfig holds configuration for JWT token generation and validation.
// An empty Secret disables bearer authentication.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig creates a JWT configuration from environment variables.
// AIRPOWER_JWT_SECRET overrides fallbackSecret; AIRPOWER_JWT_EXPIRATION_HOURS
// defaults to 24.
func NewJWTConfig(fallbackSecret string) (*JWTConfig, error) {
	secret := os.Getenv("AIRPOWER_JWT_SECRET")
	if secret == "" {
		secret = fallbackSecret
	}

	expirationStr := os.Getenv("AIRPOWER_JWT_EXPIRATION_HOURS")
	if expirationStr == "" {
		expirationStr = "24" // default
	}

	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid AIRPOWER_JWT_EXPIRATION_HOURS: %v", err)
	}

	config := &JWTConfig{
		Secret:          secret,
		ExpirationHours: expirationHours,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// Enabled reports whether bearer authentication is required.
func (c *JWTConfig) Enabled() bool {
	return c != nil && c.Secret != ""
}

// normalize validates the configuration.
func (c *JWTConfig) normalize() error {
	if c.ExpirationHours < 1 {
		return fmt.Errorf("AIRPOWER_JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	return nil
}
