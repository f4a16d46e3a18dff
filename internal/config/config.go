// Package config loads runtime settings from an optional YAML file and the
// command line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"idle-racer/internal/economy"
	"idle-racer/internal/save"
)

// DefaultSavePath is where progress is kept when nothing else is configured.
const DefaultSavePath = "idle_blackjack_save.json"

// Config holds every runtime setting.
type Config struct {
	SavePath string         `yaml:"save_path"`
	TPS      int            `yaml:"tps"`
	Seed     int64          `yaml:"seed"`
	LogLevel string         `yaml:"log_level"`
	Autosave Autosave       `yaml:"autosave"`
	Economy  economy.Params `yaml:"economy"`
}

// Autosave configures periodic saving.
type Autosave struct {
	IntervalSeconds float64 `yaml:"interval_seconds"`
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		SavePath: DefaultSavePath,
		TPS:      60,
		Seed:     42,
		LogLevel: "info",
		Autosave: Autosave{IntervalSeconds: save.DefaultAutosaveInterval},
		Economy:  economy.DefaultParams(),
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.SavePath, "save", c.SavePath, "save file path")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the track and the shoe")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
}

// Parse binds the config flags plus -config to fs, parses args, loads the
// file named by -config and applies explicitly set flags over it.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	var path string
	fs.StringVar(&path, "config", "", "YAML config file")
	flags := Default()
	flags.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "save":
			cfg.SavePath = flags.SavePath
		case "tps":
			cfg.TPS = flags.TPS
		case "seed":
			cfg.Seed = flags.Seed
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		}
	})
	cfg.normalize()
	return cfg, nil
}

// normalize replaces unusable values with their defaults.
func (c *Config) normalize() {
	def := Default()
	if c.SavePath == "" {
		c.SavePath = def.SavePath
	}
	if c.TPS <= 0 {
		c.TPS = def.TPS
	}
	if c.Autosave.IntervalSeconds <= 0 {
		c.Autosave.IntervalSeconds = def.Autosave.IntervalSeconds
	}
	if c.Economy.CostGrowth <= 1 {
		c.Economy.CostGrowth = def.Economy.CostGrowth
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		c.LogLevel = def.LogLevel
	}
}

// Level returns the configured slog level.
func (c *Config) Level() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// NewLogger builds the text logger used by the binaries.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.Level()}))
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(strings.TrimSpace(s)))
	return lvl, err
}
