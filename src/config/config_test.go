package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL", "LOG_FORMAT", "IBGE_API_URL", "IPEADATA_API_URL",
		"HTTP_CLIENT_TIMEOUT", "RATE_LIMIT_PER_SECOND", "RATE_LIMIT_BURST", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, DefaultIBGEAPIURL, cfg.IBGEAPIURL)
	assert.Equal(t, DefaultIPEADataAPIURL, cfg.IPEADataAPIURL)
	assert.Equal(t, 20*time.Second, cfg.HTTPClientTimeout)
	assert.Equal(t, 10.0, cfg.RateLimitPerSecond)
	assert.Equal(t, 30, cfg.RateLimitBurst)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IBGE_API_URL", "http://ibge.test/agregados")
	t.Setenv("IPEADATA_API_URL", "http://ipea.test/odata")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT_PER_SECOND", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "4")
	t.Setenv("ALLOWED_ORIGINS", " https://pib.example , ,http://localhost:5173")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://ibge.test/agregados", cfg.IBGEAPIURL)
	assert.Equal(t, "http://ipea.test/odata", cfg.IPEADataAPIURL)
	assert.Equal(t, 3*time.Second, cfg.HTTPClientTimeout)
	assert.Equal(t, 2.5, cfg.RateLimitPerSecond)
	assert.Equal(t, 4, cfg.RateLimitBurst)
	assert.Equal(t, []string{"https://pib.example", "http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("HTTP_CLIENT_TIMEOUT", "soon")
	t.Setenv("RATE_LIMIT_PER_SECOND", "-1")
	t.Setenv("RATE_LIMIT_BURST", "many")

	cfg := Load()
	assert.Equal(t, 20*time.Second, cfg.HTTPClientTimeout)
	assert.Equal(t, 10.0, cfg.RateLimitPerSecond)
	assert.Equal(t, 30, cfg.RateLimitBurst)
}
