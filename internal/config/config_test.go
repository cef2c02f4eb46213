package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Port:          "8480",
		JWTSecret:     strings.Repeat("s", 32),
		JWTTTLMinutes: 30,
		DBPassword:    "dev-password",
		DBSSLMode:     "require",
		Env:           "development",
	}
}

func TestValidate_Defaults(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing port", func(c *Config) { c.Port = "" }},
		{"missing jwt secret", func(c *Config) { c.JWTSecret = "" }},
		{"zero token ttl", func(c *Config) { c.JWTTTLMinutes = 0 }},
		{"negative token ttl", func(c *Config) { c.JWTTTLMinutes = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_ProductionHardening(t *testing.T) {
	cfg := validConfig()
	cfg.Env = "production"
	assert.NoError(t, cfg.Validate())

	t.Run("rejects default secret", func(t *testing.T) {
		c := validConfig()
		c.Env = "production"
		c.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, c.Validate())
	})

	t.Run("rejects short secret", func(t *testing.T) {
		c := validConfig()
		c.Env = "prod"
		c.JWTSecret = "short"
		assert.Error(t, c.Validate())
	})

	t.Run("rejects default db password", func(t *testing.T) {
		c := validConfig()
		c.Env = "production"
		c.DBPassword = "password"
		assert.Error(t, c.Validate())
	})
}

func TestValidate_DevelopmentAllowsWeakSecret(t *testing.T) {
	cfg := validConfig()
	cfg.JWTSecret = "dev-secret"
	assert.NoError(t, cfg.Validate())
}
