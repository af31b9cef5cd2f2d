package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultJWTSecret is the development fallback for JWT_SECRET.
const DefaultJWTSecret = "change-this-in-production"

// Config holds all configuration values
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Admin     AdminConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port      string
	Env       string
	BodyLimit int64

	// TrustedProxies lists the proxy IPs/CIDRs allowed to set
	// X-Forwarded-For. Empty means the socket address is the client IP.
	TrustedProxies []string
}

// IsProduction reports whether error details must be hidden from clients.
func (c ServerConfig) IsProduction() bool {
	return c.Env == "production"
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string
	DSN      string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Timeout  time.Duration
}

// URL returns the database connection URL. DATABASE_URL wins over the
// individual DB_* settings.
func (c DatabaseConfig) URL() string {
	if c.DSN != "" {
		return c.DSN
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + strconv.Itoa(c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// AdminConfig holds the single admin credential pair. PassHash is a bcrypt
// hash, never the plain password.
type AdminConfig struct {
	User     string
	PassHash string
}

// Configured reports whether both admin settings are present.
func (c AdminConfig) Configured() bool {
	return c.User != "" && c.PassHash != ""
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// UsesDefaultSecret reports whether JWT_SECRET was left unset.
func (c JWTConfig) UsesDefaultSecret() bool {
	return c.Secret == DefaultJWTSecret
}

type CORSConfig struct {
	Origin string
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      getEnv("SERVER_PORT", "3001"),
			Env:       getEnv("SERVER_ENV", "development"),
			BodyLimit: getEnvAsInt64("BODY_LIMIT_BYTES", 10<<20),

			TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "postgres"),
			DSN:      getEnv("DATABASE_URL", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "club_site"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			Timeout:  getEnvAsDuration("DB_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Admin: AdminConfig{
			User:     getEnv("ADMIN_USER", ""),
			PassHash: getEnv("ADMIN_PASS", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", DefaultJWTSecret),
			Expiry: getEnvAsDuration("JWT_EXPIRY", 24*time.Hour),
		},
		CORS: CORSConfig{
			Origin: getEnv("CORS_ORIGIN", "http://localhost:5173"),
		},
		RateLimit: RateLimitConfig{
			Max:    getEnvAsInt("RATE_LIMIT_MAX", 100),
			Window: getEnvAsDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil && intVal > 0 {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated value, dropping blanks. Unset
// yields nil.
func getEnvAsList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
