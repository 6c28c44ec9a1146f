// Package config loads the optional soclicker.yaml settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"soclicker/internal/save"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = "soclicker.yaml"

// Config defines runtime parameters for the game and its terminal host.
type Config struct {
	SavePath        string `yaml:"save_path"`
	LedgerPath      string `yaml:"ledger_path"`
	LogPath         string `yaml:"log_path"`
	Theme           string `yaml:"theme"`
	TickInterval    string `yaml:"tick_interval"`
	MessageDuration string `yaml:"message_duration"`

	tickInterval    time.Duration
	messageDuration time.Duration
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	savePath := save.DefaultPath()
	return &Config{
		SavePath:        savePath,
		LedgerPath:      ledgerPathFor(savePath),
		LogPath:         "soclicker_debug.log",
		Theme:           "dolphin",
		TickInterval:    "500ms",
		MessageDuration: "2s",
		tickInterval:    500 * time.Millisecond,
		messageDuration: 2 * time.Second,
	}
}

// Load reads the YAML file at path. A missing file yields the defaults
// without error; keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	// The ledger sits next to the save unless set explicitly; "" disables it.
	if !hasKey(data, "ledger_path") {
		cfg.LedgerPath = ledgerPathFor(cfg.SavePath)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	if c.SavePath == "" {
		return errors.New("save_path must not be empty")
	}
	if c.Theme == "" {
		c.Theme = "dolphin"
	}

	durations := []struct {
		key string
		raw string
		dst *time.Duration
	}{
		{"tick_interval", c.TickInterval, &c.tickInterval},
		{"message_duration", c.MessageDuration, &c.messageDuration},
	}
	for _, d := range durations {
		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", d.key, d.raw, err)
		}
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %s", d.key, d.raw)
		}
		*d.dst = v
	}
	return nil
}

// TickIntervalDuration returns the parsed passive income interval.
func (c *Config) TickIntervalDuration() time.Duration { return c.tickInterval }

// MessageDurationValue returns how long transient messages stay visible.
func (c *Config) MessageDurationValue() time.Duration { return c.messageDuration }

// LedgerEnabled reports whether statistics should be recorded.
func (c *Config) LedgerEnabled() bool { return c.LedgerPath != "" }

func ledgerPathFor(savePath string) string {
	return savePath + ".db"
}

func hasKey(data []byte, key string) bool {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return false
	}
	_, ok := raw[key]
	return ok
}
