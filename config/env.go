package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	Port            string
	APIBaseURL      string
	MediaBaseURL    string
	CredentialsFile string
	JWTSecret       string
	AccessExpiry    time.Duration
	RefreshExpiry   time.Duration
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	accessExpiry, err := time.ParseDuration(getEnv("JWT_ACCESS_EXPIRY", "1h"))
	if err != nil {
		accessExpiry = time.Hour
	}
	refreshExpiry, err := time.ParseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	AppConfig = &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("APP_PORT", getEnv("PORT", "8000")),
		// No fallback on purpose: the client refuses to start against an
		// unset base URL instead of silently talking to the wrong host.
		APIBaseURL:      os.Getenv("API_BASE_URL"),
		MediaBaseURL:    os.Getenv("MEDIA_BASE_URL"),
		CredentialsFile: getEnv("CREDENTIALS_FILE", ""),
		JWTSecret:       getEnv("JWT_SECRET", "secret"),
		AccessExpiry:    accessExpiry,
		RefreshExpiry:   refreshExpiry,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
