package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if HOOPBOARD_CONFIG is set
//  3. env (prefix HOOPBOARD_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("HOOPBOARD_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: HOOPBOARD_ADDR, HOOPBOARD_DATA_FILE, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("HOOPBOARD_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "hoopboard_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.DataFile == "":
		return fmt.Errorf("%w: data_file must not be empty", ErrInvalidConfig)
	case c.MinSeason <= 0:
		return fmt.Errorf("%w: min_season must be positive", ErrInvalidConfig)
	case c.RankingSize <= 0 || c.HighScoringSize <= 0 || c.TeamSeasonWindow <= 0:
		return fmt.Errorf("%w: listing sizes must be positive", ErrInvalidConfig)
	case c.ParseWorkers <= 0:
		return fmt.Errorf("%w: parse_workers must be positive", ErrInvalidConfig)
	}
	return nil
}
