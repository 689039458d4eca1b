package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSettingsDefaults(t *testing.T) {
	settings := ParseSettings("")
	assert.Equal(t, 60, settings.APICooldown)
	assert.Equal(t, 5.0, settings.PriceAlertThreshold)

	assert.Equal(t, DefaultSettings(), ParseSettings("{}"))
}

func TestParseSettingsMergesOverDefaults(t *testing.T) {
	settings := ParseSettings(`{"api_cooldown": 120}`)
	assert.Equal(t, 120, settings.APICooldown)
	assert.Equal(t, 5.0, settings.PriceAlertThreshold)
}

func TestParseSettingsIgnoresUnknownKeys(t *testing.T) {
	settings := ParseSettings(`{"api_cooldown": 90, "theme": "dark"}`)
	assert.Equal(t, 90, settings.APICooldown)
}

func TestParseSettingsMalformedBlob(t *testing.T) {
	assert.Equal(t, DefaultSettings(), ParseSettings("not json"))
}

func TestParseSettingsClampsCooldown(t *testing.T) {
	settings := ParseSettings(`{"api_cooldown": 5}`)
	assert.Equal(t, 30, settings.APICooldown)
}

func TestParseSettingsRejectsBadThreshold(t *testing.T) {
	settings := ParseSettings(`{"price_alert_threshold": -1}`)
	assert.Equal(t, 5.0, settings.PriceAlertThreshold)
}

func TestTransactionTotalValue(t *testing.T) {
	tx := Transaction{Amount: 2, PriceUSD: 150}
	assert.Equal(t, 300.0, tx.TotalValue())
}
