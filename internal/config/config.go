package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "vidcat"

const defaultPrompt = "> "

type Config struct {
	Catalog     string `koanf:"catalog"`     // catalog file; empty means XDG data dirs, then the built-in sample
	Color       *bool  `koanf:"color"`       // colored output (default: true)
	Prompt      string `koanf:"prompt"`      // interactive prompt (default: "> ")
	Interactive *bool  `koanf:"interactive"` // full-screen prompt when stdin is a terminal (default: true)
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order, later files overriding
// earlier ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.Catalog = expandPath(cfg.Catalog)
	if cfg.Prompt == "" {
		cfg.Prompt = defaultPrompt
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/vidcat/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ColorEnabled returns whether output should be colored.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// InteractiveEnabled returns whether the full-screen prompt may be used.
func (c *Config) InteractiveEnabled() bool {
	return c.Interactive == nil || *c.Interactive
}
