package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	ServerPort string

	// Backend API the dashboard reads from and writes through
	BackendAPIURL string

	// Redis (sessions + notification fan-out)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// JWT session tokens
	JWTSecret  string
	SessionTTL time.Duration

	// Payments
	DefaultCurrency string
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	config := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		BackendAPIURL: getEnv("BACKEND_API_URL", "http://localhost:8000"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       0,

		JWTSecret:  getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		SessionTTL: time.Duration(getEnvInt("SESSION_TTL_MINUTES", 720)) * time.Minute,

		DefaultCurrency: getEnv("DEFAULT_CURRENCY", "USD"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
