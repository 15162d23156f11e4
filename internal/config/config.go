// Package config holds the mobscale configuration snapshot.
//
// A Snapshot is built once per load (file, then environment) and then only
// read. Reloading produces a new Snapshot; nothing mutates a live one.
package config

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/bft-labs/mobscale/pkg/dist"
)

const (
	// DefaultMinSize is the defaultmin used when the file sets none.
	DefaultMinSize = 0.8

	// DefaultMaxSize is the defaultmax used when the file sets none.
	DefaultMaxSize = 1.0

	// mobBound is the min/max of a mob entry that omits it.
	mobBound = 1.0
)

// MobConfig is the scale configuration for one creature type.
type MobConfig struct {
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Distribution string  `json:"distribution"`
	Lambda       float64 `json:"lambda"`
}

// Kind resolves the configured distribution name.
func (m MobConfig) Kind() dist.Kind {
	return dist.Resolve(m.Distribution)
}

// Request builds the sampling request for this entry.
func (m MobConfig) Request() dist.Request {
	return dist.Request{
		Range:  dist.Range{Min: m.Min, Max: m.Max},
		Kind:   m.Kind(),
		Lambda: m.Lambda,
	}
}

// Snapshot is an immutable view of the configuration.
type Snapshot struct {
	Debug      bool    `json:"debug"`
	DefaultMin float64 `json:"defaultmin"`
	DefaultMax float64 `json:"defaultmax"`

	// Seed fixes the random source. Zero means seed from the clock.
	Seed uint64 `json:"seed"`

	SpawnReasonBlocklistEnabled bool          `json:"enable_spawn_reason_blocklist"`
	BlockedSpawnReasons         []SpawnReason `json:"spawn_reasons_blocklist"`
	ChunkLoadAffected           bool          `json:"enable_chunkloadeffected"`
	ExcludedWorlds              []string      `json:"excluded_worlds"`

	// Mobs is keyed by normalized creature name.
	Mobs map[string]MobConfig `json:"mobs"`
}

// Default returns the configuration used when no file exists.
func Default() Snapshot {
	return Snapshot{
		DefaultMin: DefaultMinSize,
		DefaultMax: DefaultMaxSize,
		Mobs:       map[string]MobConfig{},
	}
}

// NormalizeName converts a creature display name into its configuration key:
// spaces become underscores and letters are upper-cased.
func NormalizeName(name string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}

// Validate checks the snapshot. Errors wrap ErrInvalidConfig.
func (s Snapshot) Validate() error {
	if !finite(s.DefaultMin) || !finite(s.DefaultMax) {
		return fmt.Errorf("%w: defaultmin/defaultmax must be finite", ErrInvalidConfig)
	}
	for _, r := range s.BlockedSpawnReasons {
		parsed, err := ParseSpawnReason(string(r))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		// IsSpawnReasonBlocked compares exactly, so only canonical names match.
		if parsed != r {
			return fmt.Errorf("%w: spawn reason %q must be written %q", ErrInvalidConfig, r, parsed)
		}
	}
	for name, m := range s.Mobs {
		if !finite(m.Min) || !finite(m.Max) {
			return fmt.Errorf("%w: mobs.%s: min/max must be finite", ErrInvalidConfig, name)
		}
		if m.Lambda < 0 || !finite(m.Lambda) {
			return fmt.Errorf("%w: mobs.%s: lambda must not be negative", ErrInvalidConfig, name)
		}
	}
	return nil
}

// Lookup returns the entry for a creature, normalizing the name first.
func (s Snapshot) Lookup(creature string) (MobConfig, bool) {
	m, ok := s.Mobs[NormalizeName(creature)]
	return m, ok
}

// ResolveMob returns the creature's entry, or the global defaults with a
// uniform distribution when it has none.
func (s Snapshot) ResolveMob(creature string) MobConfig {
	if m, ok := s.Lookup(creature); ok {
		return m
	}
	return MobConfig{
		Min:          s.DefaultMin,
		Max:          s.DefaultMax,
		Distribution: dist.Uniform.String(),
		Lambda:       dist.DefaultLambda,
	}
}

// IsExcludedWorld reports whether scaling is disabled in world.
func (s Snapshot) IsExcludedWorld(world string) bool {
	for _, w := range s.ExcludedWorlds {
		if strings.EqualFold(w, world) {
			return true
		}
	}
	return false
}

// IsSpawnReasonBlocked reports whether spawns for reason must keep their size.
// Always false while the blocklist is disabled.
func (s Snapshot) IsSpawnReasonBlocked(reason SpawnReason) bool {
	if !s.SpawnReasonBlocklistEnabled {
		return false
	}
	for _, r := range s.BlockedSpawnReasons {
		if r == reason {
			return true
		}
	}
	return false
}

// MobNames returns the configured creature keys in sorted order.
func (s Snapshot) MobNames() []string {
	names := make([]string, 0, len(s.Mobs))
	for name := range s.Mobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
