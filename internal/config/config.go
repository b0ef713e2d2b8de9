// Package config loads the priorities configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultHistoryLimit   = 100
	defaultNamePrompt     = "Task name: "
	defaultPriorityPrompt = "Priority (blank for last): "
)

// Prompts holds the texts shown before each question.
type Prompts struct {
	Name     string `yaml:"name"`
	Priority string `yaml:"priority"`
}

// Config models config.yaml.
type Config struct {
	// DataFile is the sqlite database holding the task list. Empty keeps the
	// list in memory only.
	DataFile string `yaml:"data_file"`
	// LogFile receives the application log. Empty disables logging.
	LogFile string `yaml:"log_file"`

	HistoryLimit int `yaml:"history_limit"`
	// Width overrides the terminal width when positive.
	Width int `yaml:"width"`

	Prompts Prompts `yaml:"prompts"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	c := Config{}
	c.applyDefaults()
	return c
}

// DefaultPath is $XDG_CONFIG_HOME/priorities/config.yaml or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: locate config dir: %w", err)
	}
	return filepath.Join(dir, "priorities", "config.yaml"), nil
}

// Load reads the file at path. A missing file yields Default. Relative
// data_file and log_file paths are resolved against the file's directory.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize(filepath.Dir(path))
	if err := parsed.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return parsed, nil
}

func (c *Config) applyDefaults() {
	if c.HistoryLimit == 0 {
		c.HistoryLimit = defaultHistoryLimit
	}
	if c.Prompts.Name == "" {
		c.Prompts.Name = defaultNamePrompt
	}
	if c.Prompts.Priority == "" {
		c.Prompts.Priority = defaultPriorityPrompt
	}
}

func (c *Config) normalize(base string) {
	c.DataFile = resolvePath(base, c.DataFile)
	c.LogFile = resolvePath(base, c.LogFile)
}

func (c Config) validate() error {
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative, got %d", c.HistoryLimit)
	}
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", c.Width)
	}
	return nil
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}
