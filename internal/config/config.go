package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings read from the environment.
type Config struct {
	Port         string
	DBPath       string
	SecretKey    string
	Timezone     string
	CookieSecure bool
	IsProd       bool
}

// Load reads the configuration from the environment, honoring a local .env
// file when present.
func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		Port:         getEnv("PORT", "8080"),
		DBPath:       getEnv("DB_PATH", filepath.Join("data", "satlog.db")),
		SecretKey:    getEnv("SECRET_KEY", "change_me_in_production"),
		Timezone:     getEnv("TZ", "UTC"),
		CookieSecure: os.Getenv("COOKIE_SECURE") == "true",
		IsProd:       os.Getenv("IS_PROD") == "true",
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
