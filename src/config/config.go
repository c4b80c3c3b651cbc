package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port               string
	LogLevel           string
	UploadDir          string
	MaxUploadSizeBytes int64
	ReportCacheTTL     time.Duration
	CacheCleanupEvery  time.Duration
	RateLimitInterval  time.Duration
	RateLimitBurst     int
	CORSAllowedOrigin  string
}

var Cfg *AppConfig

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found. Relying on OS environment variables and defaults.")
	}

	maxUploadSizeBytesStr := getEnv("MAX_UPLOAD_SIZE_BYTES", "10485760")
	maxUploadSizeBytes, err := strconv.ParseInt(maxUploadSizeBytesStr, 10, 64)
	if err != nil {
		log.Printf("WARNING: Invalid MAX_UPLOAD_SIZE_BYTES format '%s'. Using default 10MB. Error: %v", maxUploadSizeBytesStr, err)
		maxUploadSizeBytes = 10 * 1024 * 1024
	}

	Cfg = &AppConfig{
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadSizeBytes: maxUploadSizeBytes,
		ReportCacheTTL:     getEnvAsDuration("REPORT_CACHE_TTL", 15*time.Minute),
		CacheCleanupEvery:  getEnvAsDuration("CACHE_CLEANUP_INTERVAL", 30*time.Minute),
		RateLimitInterval:  getEnvAsDuration("RATE_LIMIT_INTERVAL", 100*time.Millisecond),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 30),
		CORSAllowedOrigin:  getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),
	}

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, UploadDir=%s",
		Cfg.Port, Cfg.LogLevel, Cfg.UploadDir)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("WARNING: Invalid integer for %s: '%s'. Using default %d.", key, valueStr, fallback)
		return fallback
	}
	return value
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("WARNING: Invalid duration for %s: '%s'. Using default %s.", key, valueStr, fallback)
		return fallback
	}
	return value
}
