package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/airpower-calculator/internal/mastery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"aircraft": "testdata/aircraft.json",
		"ships": "testdata/ships.json",
		"mode": "airDefense",
		"high_altitude": true,
		"port": 9090,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "testdata/aircraft.json", cfg.Aircraft)
	assert.Equal(t, "testdata/ships.json", cfg.Ships)
	assert.Equal(t, "airDefense", cfg.Mode)
	assert.True(t, cfg.HighAltitude)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	content := `
ships: ships.yaml
mode: airDefence
rate_limit_per_minute: 5
jwt_secret: s3cret
`
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, "ships.yaml", cfg.Ships)
	assert.Equal(t, 5, cfg.RateLimitPerMinute)
	assert.Equal(t, "s3cret", cfg.JWTSecret)

	mode, err := cfg.ParsedMode()
	require.NoError(t, err)
	assert.Equal(t, mastery.AirDefense, mode)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("port: [unclosed"), 0644))

	_, err := LoadConfig(tmpFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_Mode(t *testing.T) {
	cfg := &Config{Mode: "dogfight"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported mastery mode")

	cfg.Mode = "airDefence"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_NumericRanges(t *testing.T) {
	cfg := &Config{Port: 70000}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port")

	cfg = &Config{RateLimitPerMinute: -1}
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit_per_minute")
}

func TestValidate_FileNotFound(t *testing.T) {
	cfg := &Config{Ships: "/nonexistent/ships.json"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ships file not found")
}

func TestValidate_ExistingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aircraft.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0644))

	cfg := &Config{Aircraft: path}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{
		Ships: "my-ships.yaml",
		Port:  9000,
	}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "my-ships.yaml", merged.Ships)
	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, "sortie", merged.Mode)
	assert.Equal(t, 60, merged.RateLimitPerMinute)
	assert.Empty(t, merged.Aircraft)
}

func TestParsedMode_Default(t *testing.T) {
	cfg := &Config{}
	mode, err := cfg.ParsedMode()
	require.NoError(t, err)
	assert.Equal(t, mastery.Sortie, mode)
}
