package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDevelopmentDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SECRET_KEY", "")
	t.Setenv("TEMPLATE_GLOB", "")

	cfg := Load()

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "templates/*.html", cfg.TemplateGlob)
	assert.NotEmpty(t, cfg.DatabaseURL)
	assert.NotEmpty(t, cfg.SecretKey)
}

func TestLoadHonorsEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "host=db port=5432 user=blog dbname=blog")
	t.Setenv("SECRET_KEY", "super-secret")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "host=db port=5432 user=blog dbname=blog", cfg.DatabaseURL)
	assert.Equal(t, "super-secret", cfg.SecretKey)
}
