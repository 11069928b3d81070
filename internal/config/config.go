// Package config loads prizm CLI settings from defaults, a config file and
// PRIZM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/smasonuk/prizm"
)

const EnvPrefix = "PRIZM_"

var ErrUnsupportedFormat = errors.New("unsupported config file format")

type Config struct {
	OutputDir string `koanf:"output_dir"`
	Precision int    `koanf:"precision"`
	Absolute  bool   `koanf:"absolute"`
	Strict    bool   `koanf:"strict"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"output_dir": ".",
		"precision":  prizm.RoundTripPrecision,
		"absolute":   false,
		"strict":     false,
	}
}

// DefaultPath is $XDG_CONFIG_HOME/prizm/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "prizm", "config.toml")
}

// Load merges defaults, the config file at path and the environment, in that
// order. An empty path means DefaultPath, which may be missing; an explicit
// path must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func (c *Config) Validate() error {
	if c.Precision < 0 {
		return fmt.Errorf("precision must be >= 0, got %d", c.Precision)
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	return nil
}

// NewObj returns an empty obj using the configured precision, addressing
// mode and strictness.
func (c *Config) NewObj() *prizm.Obj {
	return prizm.NewObj().
		SetPrecision(c.Precision).
		SetUseNegativeIndices(!c.Absolute).
		SetStrict(c.Strict)
}
