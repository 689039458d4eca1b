package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvtoInt(t *testing.T) {
	assert.Equal(t, 42, EnvtoInt("42"))
	assert.Equal(t, 0, EnvtoInt(""))
	assert.Equal(t, 0, EnvtoInt("abc"))
}

func TestClampCooldown(t *testing.T) {
	assert.Equal(t, DefaultCooldownSeconds, clampCooldown(0))
	assert.Equal(t, MinCooldownSeconds, clampCooldown(10))
	assert.Equal(t, 90, clampCooldown(90))
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 5, cfg.App.RefreshMinutes)
}
