package api

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries environment-driven settings for the query API process.
type Config struct {
	Port          string
	PostgresDSN   string
	SalesDataPath string
}

// LoadConfig reads a local .env file when present, then environment
// variables, applying defaults.
func LoadConfig() Config {
	_ = godotenv.Load()
	return Config{
		Port:          envDefault("PORT", "8080"),
		PostgresDSN:   strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		SalesDataPath: envDefault("SALES_DATA_PATH", "sales/data.json"),
	}
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
