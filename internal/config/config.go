package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	Environment string
	LogLevel    string

	DBDriver    string
	DatabaseDSN string

	RedisAddr string
	RedisDB   int
	RedisPass string

	// AuthURL is the base URL of the hosted auth service, e.g. https://xyz.example.co.
	AuthURL       string
	AuthAnonKey   string
	AuthJWTSecret string
	AuthTimeout   time.Duration

	SessionCookie string
	SessionTTL    time.Duration
	CookieSecure  bool

	SwaggerHost string
}

// Load builds Config from a local .env file (if any) and the environment with sensible defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		Environment:   getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DBDriver:      strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DatabaseDSN:   getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=buildhub port=5432 sslmode=disable"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		AuthURL:       strings.TrimRight(getEnv("AUTH_URL", "http://localhost:54321"), "/"),
		AuthAnonKey:   os.Getenv("AUTH_ANON_KEY"),
		AuthJWTSecret: getEnv("AUTH_JWT_SECRET", "change-me"),
		AuthTimeout:   getEnvDuration("AUTH_TIMEOUT", 10*time.Second),
		SessionCookie: getEnv("SESSION_COOKIE", "bh_session"),
		SessionTTL:    getEnvDuration("SESSION_TTL", 7*24*time.Hour),
		CookieSecure:  getEnvBool("COOKIE_SECURE", false),
		SwaggerHost:   os.Getenv("SWAGGER_HOST"),
	}
}

// IsProduction reports whether the service runs with production defaults.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
