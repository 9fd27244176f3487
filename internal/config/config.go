// Package config reads tool settings from the environment, optionally seeded
// from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the environment-level defaults shared by the tools. Command
// line flags override them.
type Config struct {
	AppEnv        string
	LogLevel      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DBDriver      string
	DBDSN         string
	ReviewSeed    int64
	// EnvFile is the dotenv file that was loaded, if any.
	EnvFile string
}

const (
	defaultAppEnv = "development"
	defaultSeed   = 789
)

// Load reads .env.local when APP_ENV is "local", .env otherwise. A missing
// file is not an error; existing environment variables always win.
func Load() (Config, error) {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = defaultAppEnv
	}
	envFile := ".env"
	if appEnv == "local" {
		envFile = ".env.local"
	}
	loaded := ""
	if err := godotenv.Load(envFile); err == nil {
		loaded = envFile
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := Config{
		AppEnv:        appEnv,
		LogLevel:      getenv("LOG_LEVEL", "info"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		DBDriver:      getenv("DB_DRIVER", "sqlite"),
		DBDSN:         os.Getenv("DB_DSN"),
		ReviewSeed:    defaultSeed,
		EnvFile:       loaded,
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("REDIS_DB: %w", err)
		}
		cfg.RedisDB = n
	}
	if v := os.Getenv("REVIEW_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("REVIEW_SEED: %w", err)
		}
		cfg.ReviewSeed = n
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
