package tools

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries environment-driven settings for the tool relay process.
type Config struct {
	Port            string
	SalesAPIBaseURL string
}

// LoadConfig reads a local .env file when present, then environment
// variables, applying defaults.
func LoadConfig() Config {
	_ = godotenv.Load()
	return Config{
		Port:            envDefault("TOOLS_PORT", "8090"),
		SalesAPIBaseURL: envDefault("SALES_API_BASE_URL", "http://127.0.0.1:8080"),
	}
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
