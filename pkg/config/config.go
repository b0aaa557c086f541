// Package config loads session settings for prompting programs from defaults,
// an optional JSON file and PROMPTER_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix scopes the environment variables read by Load.
const EnvPrefix = "PROMPTER_"

// DefaultMessageTrailer is appended after every field-level error message.
const DefaultMessageTrailer = " Please try again."

// Settings holds the recognised session options.
type Settings struct {
	MessageTrailer  string `koanf:"message_trailer"`
	DisableTrailer  bool   `koanf:"disable_trailer"`
	Color           bool   `koanf:"color"`
	Interactive     bool   `koanf:"interactive"`
	LogLevel        string `koanf:"log_level" validate:"omitempty,oneof=debug info warn error"`
	DeclarationFile string `koanf:"declaration_file"`
}

// Defaults returns the settings used when nothing else is configured.
func Defaults() Settings {
	return Settings{
		MessageTrailer: DefaultMessageTrailer,
		LogLevel:       "info",
	}
}

// Trailer resolves the effective error-message trailer.
func (s Settings) Trailer() string {
	if s.DisableTrailer {
		return ""
	}
	return s.MessageTrailer
}

// Load resolves settings.
// Priority: Environment variables > config file > defaults
func Load(path string) (Settings, error) {
	k := koanf.New(".")

	defaults := Defaults()
	for key, value := range map[string]any{
		"message_trailer": defaults.MessageTrailer,
		"disable_trailer": defaults.DisableTrailer,
		"color":           defaults.Color,
		"interactive":     defaults.Interactive,
		"log_level":       defaults.LogLevel,
	} {
		if err := k.Set(key, value); err != nil {
			return Settings{}, fmt.Errorf("config: set default %s: %w", key, err)
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return Settings{}, fmt.Errorf("config: stat %s: %w", path, err)
		}
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return Settings{}, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return Settings{}, fmt.Errorf("config: load environment: %w", err)
	}

	var cfg Settings
	if err := k.Unmarshal("", &cfg); err != nil {
		return Settings{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Settings{}, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

// envTransform converts environment variable names to config keys
// Example: PROMPTER_MESSAGE_TRAILER -> message_trailer
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}
