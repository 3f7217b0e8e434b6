package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Env:                 "development",
		Port:                "8375",
		JWTSecret:           "secure-secret-at-least-32-chars-long",
		DBPassword:          "secure-password",
		DBSSLMode:           "disable",
		RedisURL:            "localhost:6379",
		FeedCacheTTLSeconds: 20,
	}
}

func TestConfig_ValidateProduction(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"valid production", func(c *Config) {
			c.Env = "production"
			c.DBSSLMode = "require"
		}, false},
		{"default JWT secret", func(c *Config) {
			c.Env = "production"
			c.DBSSLMode = "require"
			c.JWTSecret = "your-secret-key-change-in-production"
		}, true},
		{"short JWT secret", func(c *Config) {
			c.Env = "production"
			c.DBSSLMode = "require"
			c.JWTSecret = "short"
		}, true},
		{"default DB password", func(c *Config) {
			c.Env = "production"
			c.DBSSLMode = "require"
			c.DBPassword = "password"
		}, true},
		{"SSL disabled", func(c *Config) {
			c.Env = "prod"
			c.DBSSLMode = "disable"
		}, true},
		{"development allows disabled SSL", func(c *Config) {
			c.DBSSLMode = "disable"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateRequiredFields(t *testing.T) {
	c := validConfig()
	c.Port = ""
	assert.Error(t, c.Validate())

	c = validConfig()
	c.JWTSecret = ""
	assert.Error(t, c.Validate())

	c = validConfig()
	c.FeedCacheTTLSeconds = -1
	assert.Error(t, c.Validate())
}

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	os.Setenv("APP_ENV", "development")
	t.Cleanup(func() { os.Unsetenv("APP_ENV") })

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8375", cfg.Port)
	assert.Equal(t, 20, cfg.FeedCacheTTLSeconds)
	assert.Equal(t, "stdout", cfg.TracingExporter)
	assert.False(t, cfg.TracingEnabled)
}
