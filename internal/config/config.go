package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

const devJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Port       string
	Env        string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	JWTExpiry  time.Duration
}

func Load() Config {
	cfg := Config{
		Port:       getEnv("PORT", "5000"),
		Env:        getEnv("ENV", "development"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "fullstack_template"),
		JWTSecret:  getEnv("JWT_SECRET", devJWTSecret),
		JWTExpiry:  getDurationEnv("JWT_EXPIRES_IN", 24*time.Hour),
	}

	if cfg.Env == "production" && cfg.JWTSecret == devJWTSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

// DSN returns the MySQL connection string for the configured database.
// parseTime is required so TIMESTAMP columns scan into time.Time.
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// ServerDSN returns a connection string without a database selected,
// used by the setup wizard before the database exists.
func (c Config) ServerDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/", c.DBUser, c.DBPassword, c.DBHost, c.DBPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration, using fallback", "key", key, "value", v, "fallback", fallback)
		return fallback
	}
	return d
}
