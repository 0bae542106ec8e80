// Package config loads service configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Zakrzewiaczek/CLI-Solitaire/engine"
)

// Config holds everything the binaries need from the environment.
type Config struct {
	HTTPAddr   string
	LogLevel   logrus.Level
	DBPath     string
	Difficulty engine.Difficulty
}

// Load reads a .env file when present, then the environment. Unset
// variables fall back to defaults.
func Load() (Config, error) {
	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	c := Config{
		HTTPAddr: envOr("SOLITAIRE_ADDR", ":8080"),
		DBPath:   envOr("SOLITAIRE_DB", "solitaire.db"),
	}

	level, err := logrus.ParseLevel(envOr("SOLITAIRE_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SOLITAIRE_LOG_LEVEL: %w", err)
	}
	c.LogLevel = level

	diff, err := ParseDifficulty(envOr("SOLITAIRE_DIFFICULTY", "easy"))
	if err != nil {
		return Config{}, err
	}
	c.Difficulty = diff

	return c, nil
}

// ParseDifficulty maps the two accepted difficulty names.
func ParseDifficulty(s string) (engine.Difficulty, error) {
	switch s {
	case "easy":
		return engine.Easy, nil
	case "hard":
		return engine.Hard, nil
	default:
		return engine.Easy, fmt.Errorf("invalid difficulty %q (want easy or hard)", s)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
