package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Port:      "8640",
		JWTSecret: "dev-secret-change-in-production",
		MediaDir:  "./media",
		Env:       "development",
	}
}

func TestValidate_Development(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_RequiredFields(t *testing.T) {
	cfg := validConfig()
	cfg.Port = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.JWTSecret = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.MediaDir = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_ProductionRejectsWeakSecrets(t *testing.T) {
	cfg := validConfig()
	cfg.Env = "production"
	cfg.DBPassword = "strong-db-password"
	assert.Error(t, cfg.Validate(), "default JWT secret must be rejected")

	cfg.JWTSecret = "short"
	assert.Error(t, cfg.Validate(), "short JWT secret must be rejected")

	cfg.JWTSecret = "a-sufficiently-long-production-secret-value"
	cfg.DBPassword = "pulse"
	assert.Error(t, cfg.Validate(), "default DB password must be rejected")

	cfg.DBPassword = "strong-db-password"
	assert.NoError(t, cfg.Validate())
}
