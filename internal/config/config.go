// Package config loads hanoi settings from an optional YAML file and HANOI_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"svw.info/hanoi/internal/logging"
)

const (
	envPrefix         = "HANOI_"
	maxConfigFileSize = 64 * 1024
)

// Config is the full runtime configuration.
type Config struct {
	Log  logging.Config `koanf:"log"`
	Game GameConfig     `koanf:"game"`
}

// GameConfig tunes the session. Gameplay itself stays interactive.
type GameConfig struct {
	// Difficulty preselects F, N or D and skips the menu. Empty means ask.
	Difficulty string `koanf:"difficulty"`
	// Surrender is "resume" or "legacy".
	Surrender string `koanf:"surrender"`
	// Solver is "recursive" or "iterative".
	Solver string `koanf:"solver"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Log: logging.NewDefaultConfig(),
		Game: GameConfig{
			Surrender: "resume",
			Solver:    "recursive",
		},
	}
}

// Load reads path (skipped when empty) and then overrides with environment variables.
//
// Environment variables map on the first underscore after the prefix:
//
//	HANOI_LOG_LEVEL      -> log.level
//	HANOI_GAME_SURRENDER -> game.surrender
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := readFile(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		parts := strings.SplitN(lower, "_", 2)
		if len(parts) == 1 {
			return lower
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file %s exceeds %d bytes", path, maxConfigFileSize)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}

// Normalize fills unset fields with defaults and canonicalises letter case.
// Call it again after overriding fields by hand.
func (c *Config) Normalize() {
	def := Default()
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
	if c.Game.Surrender == "" {
		c.Game.Surrender = def.Game.Surrender
	}
	if c.Game.Solver == "" {
		c.Game.Solver = def.Game.Solver
	}
	c.Game.Difficulty = strings.ToUpper(strings.TrimSpace(c.Game.Difficulty))
	c.Game.Surrender = strings.ToLower(c.Game.Surrender)
	c.Game.Solver = strings.ToLower(c.Game.Solver)
}

// Validate checks config for errors.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	switch c.Game.Difficulty {
	case "", "F", "N", "D":
	default:
		return fmt.Errorf("difficulty must be F, N or D, got %q", c.Game.Difficulty)
	}
	switch c.Game.Surrender {
	case "resume", "legacy":
	default:
		return fmt.Errorf("surrender must be 'resume' or 'legacy', got %q", c.Game.Surrender)
	}
	switch c.Game.Solver {
	case "recursive", "iterative":
	default:
		return fmt.Errorf("solver must be 'recursive' or 'iterative', got %q", c.Game.Solver)
	}
	return nil
}
