package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig loads rate limiting configuration from AIRPOWER_RATE_LIMIT_*
// environment variables. masteryPerMinute limits POST /mastery per client.
func LoadConfig(masteryPerMinute int) *Config {
	enabled := getEnvBool("AIRPOWER_RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{
			Enabled: false,
		}
	}

	defaultLimit := getEnvInt("AIRPOWER_RATE_LIMIT_DEFAULT_LIMIT", 600)
	defaultWindow := getEnvDuration("AIRPOWER_RATE_LIMIT_DEFAULT_WINDOW", time.Minute)
	cleanupInterval := getEnvDuration("AIRPOWER_RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute)

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    defaultLimit,
		DefaultWindow:   defaultWindow,
		CleanupInterval: cleanupInterval,
		Whitelist:       parseIPList(getEnvString("AIRPOWER_RATE_LIMIT_WHITELIST", "")),
		Blacklist:       parseIPList(getEnvString("AIRPOWER_RATE_LIMIT_BLACKLIST", "")),
		EndpointConfigs: DefaultEndpointConfigs(masteryPerMinute),
	}
}

// DefaultEndpointConfigs returns the endpoint-specific limits. Reads fall back to
// the default limit and the health check is never limited.
func DefaultEndpointConfigs(masteryPerMinute int) []EndpointConfig {
	if masteryPerMinute <= 0 {
		return nil
	}
	return []EndpointConfig{
		{Path: "/mastery", Method: "POST", Limit: masteryPerMinute, Window: time.Minute, Burst: max(masteryPerMinute/6, 1)},
	}
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
