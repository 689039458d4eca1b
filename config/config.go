package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIBaseURL      = "https://api.coingecko.com/api/v3"
	DefaultCooldownSeconds = 60
	MinCooldownSeconds     = 30
)

func Load() (*config, error) {
	// .env is optional; environment variables alone are fine
	_ = godotenv.Load()

	return &config{
		API: APIConfig{
			BaseURL:         envOrDefault("API_BASE_URL", DefaultAPIBaseURL),
			CooldownSeconds: clampCooldown(EnvtoInt(os.Getenv("API_COOLDOWN_SECONDS"))),
			TimeoutSeconds:  intOrDefault(os.Getenv("API_TIMEOUT_SECONDS"), 15),
		},
		Database: DatabaseConfig{
			Driver:   envOrDefault("DB_DRIVER", "sqlite"),
			Path:     envOrDefault("DB_PATH", "cryptofolio.db"),
			Host:     envOrDefault("DB_HOST", "localhost"),
			Port:     intOrDefault(os.Getenv("DB_PORT"), 5432),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   os.Getenv("DB_NAME"),
		},
		App: AppConfig{
			Username:            envOrDefault("PORTFOLIO_USER", "jandie"),
			RefreshMinutes:      intOrDefault(os.Getenv("REFRESH_MINUTES"), 5),
			PriceAlertThreshold: floatOrDefault(os.Getenv("PRICE_ALERT_THRESHOLD"), 5.0),
		},
	}, nil
}

// helper env(string) to int
func EnvtoInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intOrDefault(s string, fallback int) int {
	if i := EnvtoInt(s); i > 0 {
		return i
	}
	return fallback
}

func floatOrDefault(s string, fallback float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return fallback
	}
	return f
}

// clampCooldown enforces the minimum cooldown the upstream rate limit tolerates.
func clampCooldown(seconds int) int {
	if seconds == 0 {
		return DefaultCooldownSeconds
	}
	if seconds < MinCooldownSeconds {
		return MinCooldownSeconds
	}
	return seconds
}
