package config

type config struct {
	API      APIConfig
	Database DatabaseConfig
	App      AppConfig
}

type APIConfig struct {
	BaseURL         string
	CooldownSeconds int
	TimeoutSeconds  int
}

type DatabaseConfig struct {
	Driver   string // "sqlite" or "postgres"
	Path     string // sqlite database file
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type AppConfig struct {
	Username            string
	RefreshMinutes      int
	PriceAlertThreshold float64
}
