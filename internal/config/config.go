// internal/config/config.go
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries the service port and the environment-supplied exporter
// defaults used to seed the input form.
type Config struct {
	Port            string
	ExporterName    string
	ExporterAddress string
}

// Load reads configuration from the environment, honoring a .env file when
// one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8083"),
		ExporterName:    getEnv("EXPORTER_NAME", ""),
		ExporterAddress: getEnv("EXPORTER_ADDRESS", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
