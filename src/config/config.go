package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultIBGEAPIURL queries aggregate 6784 (PIB and PIB per capita) for 1996-2022 at national level.
	DefaultIBGEAPIURL = "https://servicodados.ibge.gov.br/api/v3/agregados/6784/periodos/1996|1997|1998|1999|2000|2001|2002|2003|2004|2005|2006|2007|2008|2009|2010|2011|2012|2013|2014|2015|2016|2017|2018|2019|2020|2021|2022/variaveis/9808|9812?localidades=N1[all]"

	// DefaultIPEADataAPIURL is the BM_ERV series (BRL per 1 USD).
	DefaultIPEADataAPIURL = "https://www.ipeadata.gov.br/api/odata4/ValoresSerie(SERCODIGO='BM_ERV')"
)

// AppConfig holds all configuration for the application.
// The values are loaded from environment variables.
type AppConfig struct {
	// Core settings
	Port      string
	LogLevel  string
	LogFormat string

	// Upstream APIs
	IBGEAPIURL        string
	IPEADataAPIURL    string
	HTTPClientTimeout time.Duration

	// Rate limiting per client IP
	RateLimitPerSecond float64
	RateLimitBurst     int

	// CORS
	AllowedOrigins []string
}

// Cfg is a global instance of the AppConfig.
var Cfg *AppConfig

// LoadConfig loads configuration from environment variables or a .env file
// and stores it in Cfg.
func LoadConfig() {
	// 1. Try loading from the current directory (standard behavior)
	errEnv := godotenv.Load()

	// 2. If not found, try loading from the parent directory
	if errEnv != nil {
		errEnv = godotenv.Load("../.env")
	}

	if errEnv != nil {
		if os.IsNotExist(errEnv) {
			log.Println("Info: No .env file found in current or parent directory. Relying on OS environment variables.")
		} else {
			log.Printf("Warning: Error loading .env file: %v. Relying on OS environment variables.", errEnv)
		}
	} else {
		log.Println(".env file loaded successfully.")
	}

	Cfg = Load()

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, IBGE=%s, IPEA=%s",
		Cfg.Port, Cfg.LogLevel, Cfg.IBGEAPIURL, Cfg.IPEADataAPIURL)
}

// Load reads the configuration from the process environment without touching .env files.
func Load() *AppConfig {
	return &AppConfig{
		Port:      getEnv("PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		IBGEAPIURL:        getEnv("IBGE_API_URL", DefaultIBGEAPIURL),
		IPEADataAPIURL:    getEnv("IPEADATA_API_URL", DefaultIPEADataAPIURL),
		HTTPClientTimeout: getEnvAsDuration("HTTP_CLIENT_TIMEOUT", 20*time.Second),

		RateLimitPerSecond: getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 30),

		AllowedOrigins: getList("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"),
	}
}

// getEnv retrieves an environment variable or returns a fallback value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

// getEnvAsInt retrieves an environment variable as an integer or returns a fallback.
func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid integer value for %s ('%s'), using default: %d", key, valueStr, fallback)
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil && value > 0 {
		return value
	}
	log.Printf("Invalid number for %s ('%s'), using default: %g", key, valueStr, fallback)
	return fallback
}

// getEnvAsDuration retrieves an environment variable as a time.Duration or returns a fallback.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}

// getList parses a comma-separated variable, dropping empty entries.
func getList(key, fallback string) []string {
	raw := getEnv(key, fallback)
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
