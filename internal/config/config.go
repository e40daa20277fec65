package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string
	HTTPTimeout time.Duration
	SessionDir  string
	CacheTTL    time.Duration
	Environment string
	HomeLimit   int
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

// defaultSessionDir - каталог для хранения сессии по умолчанию
func defaultSessionDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".solidaire"
	}
	return filepath.Join(configDir, "solidaire")
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:8080"),
		HTTPTimeout: parseDuration(getEnv("HTTP_TIMEOUT", "15s"), 15*time.Second),
		SessionDir:  getEnv("SESSION_DIR", defaultSessionDir()),
		CacheTTL:    parseDuration(getEnv("CACHE_TTL", "30s"), 30*time.Second),
		Environment: getEnv("ENVIRONMENT", "development"),
		HomeLimit:   getEnvAsInt("HOME_LIMIT", 4),
	}
}
