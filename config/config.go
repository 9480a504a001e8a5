package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port            string
	Timezone        string
	DBPath          string
	ProviderURL     string
	ProviderAPIKey  string
	ProviderTimeout time.Duration
	ImportTick      time.Duration
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
	dur := func(k string, def time.Duration) time.Duration {
		if v := os.Getenv(k); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				return d
			}
			log.Printf("[cfg] invalid duration for %s: %q, using %s", k, v, def)
		}
		return def
	}
	cfg := AppConfig{
		Port:            get("PORT", "8080"),
		Timezone:        get("TZ", "Europe/Berlin"),
		DBPath:          get("DB_PATH", "cookitsimple.db"),
		ProviderURL:     get("PROVIDER_URL", "https://bmghizokulvmkzwisinz.supabase.co/functions/v1/export-recipes"),
		ProviderAPIKey:  get("PROVIDER_API_KEY", ""),
		ProviderTimeout: dur("PROVIDER_TIMEOUT", 15*time.Second),
		ImportTick:      dur("IMPORT_TICK", time.Hour),
	}
	log.Printf("[cfg] port=%s db=%s provider=%s tick=%s", cfg.Port, cfg.DBPath, cfg.ProviderURL, cfg.ImportTick)
	return cfg
}
