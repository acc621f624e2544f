// Package config loads griddle's configuration: embedded defaults,
// overridden key by key from an optional TOML file, then from
// GRIDDLE_-prefixed environment variables.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config holds the rendering defaults. Flags win over the file.
type Config struct {
	NoColor bool        `koanf:"no_color"`
	Table   TableConfig `koanf:"table"`
	Panel   PanelConfig `koanf:"panel"`
	Rule    RuleConfig  `koanf:"rule"`
}

// TableConfig defaults for the grid renderer.
type TableConfig struct {
	Box   string `koanf:"box"`
	Width int    `koanf:"width"`
}

// PanelConfig defaults for panels.
type PanelConfig struct {
	Box string `koanf:"box"`
}

// RuleConfig defaults for horizontal rules.
type RuleConfig struct {
	Characters string `koanf:"characters"`
}

// rawBytesProvider implements a koanf provider for raw bytes.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load reads the configuration. The first existing file from
// $XDG_CONFIG_HOME/griddle/griddle.toml and ./griddle.toml is used.
func Load() (*Config, error) {
	return loadFrom(configPaths())
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("loading default config: %w", err)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("loading config from %s: %w", path, err)
			}
			break
		}
	}

	if err := k.Load(env.Provider("GRIDDLE_", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading config from environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func configPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "griddle", "griddle.toml"),
		"griddle.toml",
	}
}

// envKey maps GRIDDLE_TABLE_BOX to "table.box" and GRIDDLE_NO_COLOR to
// "no_color". Only the section prefix becomes a path separator, so keys
// containing underscores survive.
func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, "GRIDDLE_"))
	for _, section := range []string{"table", "panel", "rule"} {
		if strings.HasPrefix(key, section+"_") {
			return section + "." + strings.TrimPrefix(key, section+"_")
		}
	}
	return key
}
