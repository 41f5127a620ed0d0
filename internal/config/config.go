package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Backend BackendConfig
	Session SessionConfig
	Display DisplayConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// BackendConfig holds the remote timekeeping API configuration
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig holds session token configuration
type SessionConfig struct {
	Secret     string
	Expiration string
}

// DisplayConfig holds presentation settings shared by all views
type DisplayConfig struct {
	Timezone string
	Currency string
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// Backend API configuration
	backendTimeout, err := time.ParseDuration(getEnv("BACKEND_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKEND_TIMEOUT: %w", err)
	}

	config.Backend = BackendConfig{
		BaseURL: getEnv("BACKEND_BASE_URL", "https://aoncodev.work.gd"),
		Timeout: backendTimeout,
	}

	// Session configuration
	config.Session = SessionConfig{
		Secret:     getEnv("SESSION_SECRET_KEY", ""),
		Expiration: getEnv("SESSION_EXPIRATION_TIME", "12h"),
	}

	// Display configuration
	config.Display = DisplayConfig{
		Timezone: getEnv("DISPLAY_TIMEZONE", "Asia/Seoul"),
		Currency: getEnv("DISPLAY_CURRENCY", "₩"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("BACKEND_BASE_URL is required")
	}
	if !strings.HasPrefix(c.Backend.BaseURL, "http://") && !strings.HasPrefix(c.Backend.BaseURL, "https://") {
		return fmt.Errorf("BACKEND_BASE_URL must be an http(s) URL")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.Session.Expiration); err != nil {
		return fmt.Errorf("invalid SESSION_EXPIRATION_TIME: %w", err)
	}
	if _, err := time.LoadLocation(c.Display.Timezone); err != nil {
		return fmt.Errorf("invalid DISPLAY_TIMEZONE: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	var result []string = strings.Split(value, ",")
	return result
}
