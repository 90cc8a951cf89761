package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig_DefaultValues(t *testing.T) {
	t.Setenv("AIRPOWER_JWT_SECRET", "test-secret-key")
	t.Setenv("AIRPOWER_JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig("")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "test-secret-key", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours, "should use default expiration of 24 hours")
	assert.True(t, cfg.Enabled())
}

func TestNewJWTConfig_EnvOverridesFallback(t *testing.T) {
	t.Setenv("AIRPOWER_JWT_SECRET", "from-env")

	cfg, err := NewJWTConfig("from-config")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Secret)
}

func TestNewJWTConfig_FallbackSecret(t *testing.T) {
	t.Setenv("AIRPOWER_JWT_SECRET", "")

	cfg, err := NewJWTConfig("from-config")
	require.NoError(t, err)
	assert.Equal(t, "from-config", cfg.Secret)
}

func TestNewJWTConfig_NoSecretDisablesAuth(t *testing.T) {
	t.Setenv("AIRPOWER_JWT_SECRET", "")

	cfg, err := NewJWTConfig("")
	require.NoError(t, err)
	assert.False(t, cfg.Enabled())

	var missing *JWTConfig
	assert.False(t, missing.Enabled())
}

func TestNewJWTConfig_CustomExpiration(t *testing.T) {
	tests := []struct {
		name          string
		expiration    string
		expectedHours int
		wantErr       bool
	}{
		{name: "custom expiration 12 hours", expiration: "12", expectedHours: 12},
		{name: "minimum expiration 1 hour", expiration: "1", expectedHours: 1},
		{name: "large expiration", expiration: "168", expectedHours: 168},
		{name: "zero expiration", expiration: "0", wantErr: true},
		{name: "negative expiration", expiration: "-5", wantErr: true},
		{name: "non-numeric expiration", expiration: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AIRPOWER_JWT_SECRET", "test-secret-key")
			t.Setenv("AIRPOWER_JWT_EXPIRATION_HOURS", tt.expiration)

			cfg, err := NewJWTConfig("")
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				assert.Equal(t, tt.expectedHours, cfg.ExpirationHours)
			}
		})
	}
}
