package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/behave/internal/core/observability/log"
)

// Config is the sandbox application configuration.
type Config struct {
	Log    log.Config   `yaml:"log"`
	World  WorldConfig  `yaml:"world"`
	Editor EditorConfig `yaml:"editor"`
	Scene  SceneConfig  `yaml:"scene"`
}

type WorldConfig struct {
	TickRate int           `yaml:"tick_rate"`
	MaxDelta time.Duration `yaml:"max_delta"`
}

type EditorConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

type SceneConfig struct {
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log:    log.Config{Level: "info", Encoding: "json"},
		World:  WorldConfig{TickRate: 60, MaxDelta: 250 * time.Millisecond},
		Editor: EditorConfig{Enabled: true, Addr: "127.0.0.1:7777"},
	}
}

// Load reads a YAML file over the defaults. An empty path yields Default().
func Load(path string) (Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs error
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = errors.Join(errs, err)
	}
	if c.World.TickRate <= 0 {
		errs = errors.Join(errs, fmt.Errorf("world.tick_rate must be positive, got %d", c.World.TickRate))
	}
	if c.World.MaxDelta < 0 {
		errs = errors.Join(errs, fmt.Errorf("world.max_delta must not be negative"))
	}
	if c.Editor.Enabled {
		if _, _, err := net.SplitHostPort(c.Editor.Addr); err != nil {
			errs = errors.Join(errs, fmt.Errorf("editor.addr: %w", err))
		}
	}
	return errs
}
