package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/mini-rodalies-3d/bikeshare/internal/trip"
)

// Config holds all configuration for the bikeshare explorer
type Config struct {
	// Directory the dataset files are resolved against
	DataDir string

	// Per-city dataset file overrides (file name or absolute path)
	CityFiles map[trip.City]string

	// DEBUG, INFO, WARN or ERROR; logs go to stderr
	LogLevel string
}

// cityEnv names the override variable for each city
var cityEnv = map[trip.City]string{
	trip.Chicago:     "BIKESHARE_CHICAGO_FILE",
	trip.NewYorkCity: "BIKESHARE_NEW_YORK_CITY_FILE",
	trip.Washington:  "BIKESHARE_WASHINGTON_FILE",
}

// LoadEnvFiles loads .env and then .env.local from dir.
// .env never replaces variables already set; .env.local always does.
// Missing files are ignored.
func LoadEnvFiles(dir string) {
	_ = godotenv.Load(filepath.Join(dir, ".env"))
	_ = godotenv.Overload(filepath.Join(dir, ".env.local"))
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	cfg := &Config{
		DataDir:   getEnv("BIKESHARE_DATA_DIR", "."),
		LogLevel:  getEnv("BIKESHARE_LOG_LEVEL", "WARN"),
		CityFiles: make(map[trip.City]string),
	}

	for _, city := range trip.AllCities() {
		if v := getEnv(cityEnv[city], ""); v != "" {
			cfg.CityFiles[city] = v
		}
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
