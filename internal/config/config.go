package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("invalid configuration")

// ColorMode selects when console output is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds runtime settings for the console program. None of it reaches the
// validation or transaction code; it only shapes logging and presentation.
type Config struct {
	LogLevel  string
	LogOutput string
	Currency  string
	Color     ColorMode
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel:  "warn",
		LogOutput: "stderr",
		Currency:  "K",
		Color:     ColorAuto,
	}
}

// Load reads an optional .env file from dir and then the process environment.
// Variables already present in the environment win over the file.
func Load(dir string) (Config, error) {
	if dir == "" {
		dir = "."
	}
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if v, ok := os.LookupEnv("BANK_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv("BANK_LOG_OUTPUT"); ok && v != "" {
		cfg.LogOutput = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv("BANK_CURRENCY"); ok {
		cfg.Currency = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv("BANK_COLOR"); ok && v != "" {
		cfg.Color = ColorMode(strings.ToLower(strings.TrimSpace(v)))
	}
	// https://no-color.org
	if v, ok := os.LookupEnv("NO_COLOR"); ok && v != "" {
		cfg.Color = ColorNever
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: BANK_LOG_LEVEL %q must be one of debug, info, warn, error", ErrInvalidConfig, c.LogLevel)
	}
	if c.LogOutput == "" {
		return fmt.Errorf("%w: BANK_LOG_OUTPUT must not be empty", ErrInvalidConfig)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: BANK_COLOR %q must be one of auto, always, never", ErrInvalidConfig, c.Color)
	}
	return nil
}

// ColorEnabled resolves the color mode against whether stdout is a terminal.
func (c Config) ColorEnabled(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}
