package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL      string
	APIToken        string
	BoardID         string
	CachePath       string
	RefreshInterval time.Duration
	MetricsAddr     string
	LogLevel        string
	LogJSON         bool
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		APIBaseURL:      getEnv("API_BASE_URL", "http://localhost:3000"),
		APIToken:        getEnv("API_TOKEN", ""),
		BoardID:         getEnv("BOARD_ID", "default"),
		CachePath:       getEnv("CACHE_PATH", ""),
		RefreshInterval: getDurationEnv("REFRESH_INTERVAL", 5*time.Minute),
		MetricsAddr:     getEnv("METRICS_ADDR", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogJSON:         getEnv("LOG_JSON", "false") == "true",
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getDurationEnv(key string, defaultVal time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("⚠️  Invalid %s %q, using default %s", key, value, defaultVal)
		return defaultVal
	}
	return d
}
