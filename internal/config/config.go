// Package config provides Viper-based configuration loading for the inventory reader.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/invreader/internal/importer"
	"github.com/cory-johannsen/invreader/internal/inventory"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// ReaderConfig controls how export files are decoded, parsed, and resolved.
type ReaderConfig struct {
	// Encoding is the export character encoding, or "auto".
	Encoding string `mapstructure:"encoding"`
	// PartialCount is the Count given to two-column lines: 0 or 1.
	PartialCount int `mapstructure:"partial_count"`
	// AmmoStopsParse ends parsing at the first "Ammo" line.
	AmmoStopsParse bool `mapstructure:"ammo_stops_parse"`
	// Aliases maps extra export locations to equipment categories.
	Aliases []AliasConfig `mapstructure:"aliases"`
}

// AliasConfig maps one export location onto an equipment category.
// A list is used instead of a map because Viper lower-cases map keys.
type AliasConfig struct {
	Location string `mapstructure:"location"`
	Category string `mapstructure:"category"`
}

// RenderConfig controls the printed projection of an inventory.
type RenderConfig struct {
	// Format is "text" or "yaml".
	Format string `mapstructure:"format"`
	// Color is "auto", "always", or "never".
	Color string `mapstructure:"color"`
	// NameWidth is the cell width of the item-name column.
	NameWidth int `mapstructure:"name_width"`
	// ShowItems prints the flat item list after the slot layout.
	ShowItems bool `mapstructure:"show_items"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Reader  ReaderConfig  `mapstructure:"reader"`
	Render  RenderConfig  `mapstructure:"render"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateReader(c.Reader); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateRender(c.Render); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateReader(r ReaderConfig) error {
	var errs []string
	if !importer.Encoding(r.Encoding).Valid() {
		errs = append(errs, fmt.Sprintf("reader.encoding must be one of [auto, utf-8, utf-16le, utf-16be, windows-1252], got %q", r.Encoding))
	}
	if r.PartialCount != 0 && r.PartialCount != 1 {
		errs = append(errs, fmt.Sprintf("reader.partial_count must be 0 or 1, got %d", r.PartialCount))
	}
	for i, a := range r.Aliases {
		if a.Location == "" {
			errs = append(errs, fmt.Sprintf("reader.aliases[%d].location must not be empty", i))
		}
		if inventory.Category(a.Category).Slots() == nil {
			errs = append(errs, fmt.Sprintf("reader.aliases[%d].category must name an equipment category, got %q", i, a.Category))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateRender(r RenderConfig) error {
	var errs []string
	validFormats := map[string]bool{"text": true, "yaml": true}
	if !validFormats[r.Format] {
		errs = append(errs, fmt.Sprintf("render.format must be one of [text, yaml], got %q", r.Format))
	}
	validColors := map[string]bool{"auto": true, "always": true, "never": true}
	if !validColors[r.Color] {
		errs = append(errs, fmt.Sprintf("render.color must be one of [auto, always, never], got %q", r.Color))
	}
	if r.NameWidth < 15 {
		errs = append(errs, fmt.Sprintf("render.name_width must be >= 15, got %d", r.NameWidth))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment overrides.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with INVREADER_ prefix
	v.SetEnvPrefix("INVREADER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns a Viper instance holding only the default settings.
func Defaults() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("reader.encoding", "auto")
	v.SetDefault("reader.partial_count", 1)
	v.SetDefault("reader.ammo_stops_parse", true)

	v.SetDefault("render.format", "text")
	v.SetDefault("render.color", "auto")
	v.SetDefault("render.name_width", 15)
	v.SetDefault("render.show_items", true)
}
