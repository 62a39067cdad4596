package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	ExtractPath string
	StoresPath  string
}

// Load reads configuration from the environment, with a .env file layered
// underneath when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        getenv("PORT", "8080"),
		ExtractPath: getenv("EXTRACT_CSV_PATH", "data/extract-data.csv"),
		StoresPath:  getenv("STORES_CSV_PATH", "data/stores.csv"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
