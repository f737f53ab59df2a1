package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Pool lifetimes are fixed; only connection coordinates and pool sizes come
// from the environment.
const (
	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 5
	connMaxLifetime     = 30 * time.Minute
	connMaxIdleTime     = 5 * time.Minute
)

// LoadConfigFromEnv assembles the connection config from DB_* variables,
// filling defaults for anything unset. Only a malformed DB_PORT is an
// error; malformed pool sizes fall back to their defaults.
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		Host:            "localhost",
		Port:            5432,
		User:            "groundcontrol",
		Password:        os.Getenv("DB_PASSWORD"),
		Database:        "groundcontrol",
		SSLMode:         "disable",
		MaxOpenConns:    defaultMaxOpenConns,
		MaxIdleConns:    defaultMaxIdleConns,
		ConnMaxLifetime: connMaxLifetime,
		ConnMaxIdleTime: connMaxIdleTime,
	}

	overlay(&cfg.Host, "DB_HOST")
	overlay(&cfg.User, "DB_USER")
	overlay(&cfg.Database, "DB_NAME")
	overlay(&cfg.SSLMode, "DB_SSLMODE")
	overlayInt(&cfg.MaxOpenConns, "DB_MAX_OPEN_CONNS")
	overlayInt(&cfg.MaxIdleConns, "DB_MAX_IDLE_CONNS")

	if raw := os.Getenv("DB_PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DB_PORT: %w", err)
		}
		cfg.Port = port
	}
	return cfg, nil
}

// overlay replaces dst when the variable is set and non-empty.
func overlay(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// overlayInt replaces dst when the variable holds a valid integer.
func overlayInt(dst *int, key string) {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		*dst = v
	}
}
