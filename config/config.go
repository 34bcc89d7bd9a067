package config

import (
	"log"
	"os"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env          string
	Port         string
	DatabaseURL  string
	SecretKey    string
	TemplateGlob string
}

func Load() *Config {
	cfg := &Config{
		Env:          getEnv("APP_ENV", EnvDevelopment),
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  getEnv("DATABASE_URL", "host=localhost port=5432 user=postgres dbname=inkwell sslmode=disable"),
		SecretKey:    getEnv("SECRET_KEY", "dev-secret"),
		TemplateGlob: getEnv("TEMPLATE_GLOB", "templates/*.html"),
	}

	// The development profile falls back to local defaults; production
	// refuses to start without explicit credentials.
	if cfg.IsProduction() {
		if os.Getenv("DATABASE_URL") == "" {
			log.Fatal("DATABASE_URL must be set in production")
		}
		if os.Getenv("SECRET_KEY") == "" {
			log.Fatal("SECRET_KEY must be set in production")
		}
	}

	return cfg
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
