package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port               string
	Timezone           string
	DBPath             string
	LogDir             string
	ClipAllowedDomains string
	ClipMaxBytes       int
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	maxBytes := 1500000
	if v := os.Getenv("CLIP_MAX_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxBytes = n
		}
	}
	cfg := AppConfig{
		Port:               get("PORT", "8080"),
		Timezone:           get("TZ", "Asia/Tokyo"),
		DBPath:             get("DB_PATH", "lifedash.db"),
		LogDir:             get("LOG_DIR", "logs"),
		ClipAllowedDomains: get("CLIP_ALLOWED_DOMAINS", ""),
		ClipMaxBytes:       maxBytes,
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
