package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port                 string
	DatabasePath         string
	LogLevel             string
	MaxRequestBodyBytes  int64
	CORSAllowedOrigin    string

	// Evaluation result cache. Backend is "memory" (in-process) or "redis".
	CacheBackend         string
	RedisAddr            string
	CacheExpiration      time.Duration
	CacheCleanupInterval time.Duration
}

var Cfg *AppConfig

func LoadConfig() {
	errEnv := godotenv.Load()
	if errEnv != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", errEnv)
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	maxBodyBytesStr := getEnv("MAX_REQUEST_BODY_BYTES", "1048576")
	maxBodyBytes, err := strconv.ParseInt(maxBodyBytesStr, 10, 64)
	if err != nil {
		log.Printf("WARNING: Invalid MAX_REQUEST_BODY_BYTES format '%s'. Using default 1MB. Error: %v", maxBodyBytesStr, err)
		maxBodyBytes = 1024 * 1024
	}

	cacheBackend := getEnv("CACHE_BACKEND", "memory")
	if cacheBackend != "memory" && cacheBackend != "redis" {
		log.Printf("WARNING: Invalid CACHE_BACKEND '%s'. Using 'memory'.", cacheBackend)
		cacheBackend = "memory"
	}

	Cfg = &AppConfig{
		Port:                getEnv("PORT", "8080"),
		DatabasePath:        getEnv("DATABASE_PATH", "./propfolio.db"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		MaxRequestBodyBytes: maxBodyBytes,
		CORSAllowedOrigin:   getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),

		CacheBackend:         cacheBackend,
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		CacheExpiration:      getEnvAsDuration("CACHE_EXPIRATION", 15*time.Minute),
		CacheCleanupInterval: getEnvAsDuration("CACHE_CLEANUP_INTERVAL", 30*time.Minute),
	}

	if Cfg.CacheBackend == "redis" && Cfg.RedisAddr == "" {
		log.Fatalf("FATAL: REDIS_ADDR is required when CACHE_BACKEND is 'redis', but it's not set in environment or .env file.")
	}

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, DBPath=%s, CacheBackend=%s",
		Cfg.Port, Cfg.LogLevel, Cfg.DatabasePath, Cfg.CacheBackend)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		log.Printf("Duration value for %s not set or empty, using default: %s", key, fallback.String())
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}
