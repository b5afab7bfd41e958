// Package config provides configuration types and defaults for beats.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gilbeats/beats/internal/beat"
	"github.com/gilbeats/beats/internal/log"
	"github.com/gilbeats/beats/internal/render"

	"github.com/spf13/viper"
)

// Config holds all configuration options for beats.
type Config struct {
	Format    string         `mapstructure:"format" yaml:"format"`
	Color     bool           `mapstructure:"color" yaml:"color"`
	LookupURL string         `mapstructure:"lookup_url" yaml:"lookup_url"`
	SwiftBar  SwiftBarConfig `mapstructure:"swiftbar" yaml:"swiftbar"`
	Log       LogConfig      `mapstructure:"log" yaml:"log"`
	Trace     bool           `mapstructure:"trace" yaml:"trace"`
}

// SwiftBarConfig holds options for the swiftbar plugin output.
type SwiftBarConfig struct {
	// TimeLayout is a Go time layout for the human time line.
	TimeLayout string `mapstructure:"time_layout" yaml:"time_layout"`
}

// LogConfig holds debug logging options.
type LogConfig struct {
	Debug bool   `mapstructure:"debug" yaml:"debug"`
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Format:    string(render.FormatText),
		LookupURL: beat.DefaultLookupURL,
		SwiftBar: SwiftBarConfig{
			TimeLayout: render.DefaultTimeLayout,
		},
		Log: LogConfig{
			Level: "debug",
		},
	}
}

// SetDefaults registers Defaults() on v so unset keys fall back to them.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("format", d.Format)
	v.SetDefault("color", d.Color)
	v.SetDefault("lookup_url", d.LookupURL)
	v.SetDefault("swiftbar.time_layout", d.SwiftBar.TimeLayout)
	v.SetDefault("log.debug", d.Log.Debug)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("trace", d.Trace)
}

// Load reads the config file at path into v and returns the merged config.
// A missing file is only an error when required is set.
func Load(v *viper.Viper, path string, required bool) (Config, error) {
	SetDefaults(v)

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("reading config %s: %w", path, err)
			}
			log.Info(log.CatConfig, "Loaded config file", "path", path)
		case errors.Is(err, os.ErrNotExist) && !required:
			log.Debug(log.CatConfig, "No config file, using defaults", "path", path)
		default:
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks configuration for errors.
func Validate(cfg Config) error {
	if _, err := render.ParseFormat(cfg.Format); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if cfg.LookupURL == "" {
		return fmt.Errorf("lookup_url is required")
	}
	if cfg.SwiftBar.TimeLayout == "" {
		return fmt.Errorf("swiftbar.time_layout is required")
	}
	return nil
}

// RenderOptions returns the render options described by the config.
func (c Config) RenderOptions() render.Options {
	return render.Options{
		LookupURL:  c.LookupURL,
		TimeLayout: c.SwiftBar.TimeLayout,
		Color:      c.Color,
	}
}

// LogOptions returns the logger settings described by the config.
func (c Config) LogOptions() log.Config {
	return log.Config{
		Enabled: c.Log.Debug,
		Level:   c.Log.Level,
		File:    c.Log.File,
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# beats configuration

# Output format when --format is not given: text, json or swiftbar
format: text

# Style the @NNN display when writing to a color terminal
color: false

# World clock page linked from swiftbar output
lookup_url: https://www.timeanddate.com/worldclock/fixedtime.html

swiftbar:
  # Go time layout for the human time line (BMT)
  time_layout: "15:04:05"

log:
  debug: false   # same as --debug
  level: debug   # debug, info, warn, error
  # file: /tmp/beats.log   # log here instead of stderr

# Export trace spans to stderr (same as --trace)
trace: false
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	// Create parent directory if needed
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
