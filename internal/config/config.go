package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration, resolved from environment variables
type Config struct {
	Env  string
	Port int

	Postgres PostgresConfig
	Redis    RedisConfig
	Auth     AuthConfig
	CORS     CORSConfig

	RateLimitPerMinute int
}

// PostgresConfig holds database connection settings
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN returns the GORM postgres DSN
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}

// RedisConfig holds redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// AuthConfig holds external auth service settings
type AuthConfig struct {
	ServiceHost string
	Timeout     time.Duration
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowOrigins string
}

// Load resolves the configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{
		Env:  getEnv("APP_ENV", "local"),
		Port: getEnvInt("PORT", 8080),
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			User:            getEnv("POSTGRES_USER", "goodgifts"),
			Password:        os.Getenv("POSTGRES_PASSWORD"),
			Database:        getEnv("POSTGRES_DB", "goodgifts"),
			SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: time.Duration(getEnvInt("POSTGRES_CONN_MAX_LIFETIME_MIN", 30)) * time.Minute,
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
			PoolSize: getEnvInt("REDIS_POOL_SIZE", 10),
		},
		Auth: AuthConfig{
			ServiceHost: os.Getenv("AUTH_SERVICE_HOST"),
			Timeout:     time.Duration(getEnvInt("AUTH_SERVICE_TIMEOUT_SEC", 10)) * time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
	}

	if cfg.Auth.ServiceHost == "" {
		return nil, fmt.Errorf("AUTH_SERVICE_HOST is required")
	}

	return cfg, nil
}

// IsDevelopment reports whether the app runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Env == "local" || c.Env == "development" || c.Env == "dev"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
