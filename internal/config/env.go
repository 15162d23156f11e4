package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envOverrides lists the MOBSCALE_* variables. Unset variables leave the
// pointers nil so the file value survives.
type envOverrides struct {
	Debug             *bool    `env:"MOBSCALE_DEBUG"`
	DefaultMin        *float64 `env:"MOBSCALE_DEFAULT_MIN"`
	DefaultMax        *float64 `env:"MOBSCALE_DEFAULT_MAX"`
	Seed              *uint64  `env:"MOBSCALE_SEED"`
	ChunkLoadAffected *bool    `env:"MOBSCALE_CHUNKLOAD_AFFECTED"`
	ExcludedWorlds    []string `env:"MOBSCALE_EXCLUDED_WORLDS" envSeparator:","`
}

// ApplyEnv overlays MOBSCALE_* environment variables onto s.
func ApplyEnv(s *Snapshot) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	setIf(&s.Debug, o.Debug)
	setIf(&s.DefaultMin, o.DefaultMin)
	setIf(&s.DefaultMax, o.DefaultMax)
	setIf(&s.Seed, o.Seed)
	setIf(&s.ChunkLoadAffected, o.ChunkLoadAffected)
	if len(o.ExcludedWorlds) > 0 {
		s.ExcludedWorlds = o.ExcludedWorlds
	}
	return nil
}
