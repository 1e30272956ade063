package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/graeme-hill/loxfront-go/lib"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	ModeTree   = "tree"
	ModeTokens = "tokens"
)

const DefaultHistoryFile = "lox_repl.log"

type Config struct {
	Prompt string `toml:"prompt" yaml:"prompt"`
	// HistoryFile keeps REPL lines between sessions; empty disables it.
	HistoryFile string `toml:"history_file" yaml:"history_file"`
	HistorySize int    `toml:"history_size" yaml:"history_size"`
	// MaxDepth of zero falls back to lib.DefaultMaxDepth.
	MaxDepth int    `toml:"max_depth" yaml:"max_depth"`
	Mode     string `toml:"mode" yaml:"mode"`
	Color    bool   `toml:"color" yaml:"color"`
}

func DefaultConfig() Config {
	return Config{
		Prompt:      "〈 ",
		HistoryFile: DefaultHistoryFile,
		HistorySize: DefaultHistorySize,
		MaxDepth:    lib.DefaultMaxDepth,
		Mode:        ModeTree,
		Color:       true,
	}
}

// LoadConfig returns the defaults overlaid with the file at path. The format
// is picked from the extension. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config")
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "parsing TOML config %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "parsing YAML config %s", path)
		}
	default:
		return Config{}, errors.Errorf("unsupported config format %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Mode != ModeTree && c.Mode != ModeTokens {
		return errors.Errorf("invalid mode %q, want %q or %q", c.Mode, ModeTree, ModeTokens)
	}
	if c.MaxDepth < 0 {
		return errors.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.HistorySize < 0 {
		return errors.Errorf("history_size must not be negative, got %d", c.HistorySize)
	}
	return nil
}

func (c Config) ParseOptions() lib.ParseOptions {
	return lib.ParseOptions{MaxDepth: c.MaxDepth}
}
