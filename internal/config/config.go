// Package config loads the user's vuit settings.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
)

// Config holds the user settings. Missing keys take the defaults.
type Config struct {
	ColorScheme    string `json:"colorscheme" toml:"colorscheme"`
	HighlightColor string `json:"highlight_color" toml:"highlight_color"`
	Editor         string `json:"editor" toml:"editor"`
	Watch          bool   `json:"watch" toml:"watch"`
	Shell          string `json:"shell" toml:"shell"`
}

const (
	DefaultColorScheme    = "lightblue"
	DefaultHighlightColor = "blue"
	DefaultEditor         = "vim"

	envConfigPath = "VUIT_CONFIG"
	configDir     = ".vuit"
	jsonFileName  = ".vuitrc"
	tomlFileName  = "vuit.toml"
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		ColorScheme:    DefaultColorScheme,
		HighlightColor: DefaultHighlightColor,
		Editor:         DefaultEditor,
	}
}

// DefaultPath returns the config file to read: $VUIT_CONFIG when set,
// otherwise ~/.vuit/.vuitrc.
func DefaultPath() (string, error) {
	if env := strings.TrimSpace(os.Getenv(envConfigPath)); env != "" {
		return expandPath(env)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, configDir, jsonFileName), nil
}

// Load reads the config at path, or at DefaultPath when path is empty. When
// the default JSON file is absent, vuit.toml next to it is tried. A missing
// file yields the defaults; a malformed one is an error.
func Load(path string) (Config, error) {
	explicit := strings.TrimSpace(path) != "" || strings.TrimSpace(os.Getenv(envConfigPath)) != ""

	resolved := path
	var err error
	if strings.TrimSpace(resolved) == "" {
		resolved, err = DefaultPath()
	} else {
		resolved, err = expandPath(resolved)
	}
	if err != nil {
		return Config{}, err
	}

	cfg, err := loadFile(resolved)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}
	if explicit {
		return Default(), nil
	}

	cfg, err = loadFile(filepath.Join(filepath.Dir(resolved), tomlFileName))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if strings.TrimSpace(string(data)) != "" {
		if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	c.ColorScheme = strings.TrimSpace(c.ColorScheme)
	if c.ColorScheme == "" {
		c.ColorScheme = DefaultColorScheme
	}
	c.HighlightColor = strings.TrimSpace(c.HighlightColor)
	if c.HighlightColor == "" {
		c.HighlightColor = DefaultHighlightColor
	}
	c.Editor = strings.TrimSpace(c.Editor)
	if c.Editor == "" {
		c.Editor = DefaultEditor
	}
	c.Shell = strings.TrimSpace(c.Shell)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
