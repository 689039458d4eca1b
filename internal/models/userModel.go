package models

import (
	"encoding/json"
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey"`
	Username  string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	LastLogin time.Time
	Settings  string `gorm:"default:'{}'"`
}

// TableName sets the table name for User model
func (User) TableName() string {
	return "users"
}

// UserSettings is the typed view of the free-form settings blob stored on the
// user row. Unknown keys in the blob are ignored.
type UserSettings struct {
	APICooldown         int     `json:"api_cooldown"`
	PriceAlertThreshold float64 `json:"price_alert_threshold"`
}

func DefaultSettings() UserSettings {
	return UserSettings{
		APICooldown:         60,
		PriceAlertThreshold: 5.0,
	}
}

// ParseSettings merges a stored settings blob over the defaults. A malformed
// blob falls back to the defaults entirely. The cooldown is clamped to 30
// seconds, the minimum the upstream rate limit tolerates.
func ParseSettings(blob string) UserSettings {
	settings := DefaultSettings()
	if blob == "" {
		return settings
	}
	if err := json.Unmarshal([]byte(blob), &settings); err != nil {
		return DefaultSettings()
	}
	if settings.APICooldown < 30 {
		settings.APICooldown = 30
	}
	if settings.PriceAlertThreshold <= 0 {
		settings.PriceAlertThreshold = DefaultSettings().PriceAlertThreshold
	}
	return settings
}
