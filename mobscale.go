// Package mobscale randomizes the size of spawned creatures.
//
// Example usage:
//
//	snap, err := mobscale.LoadConfig("config.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r, err := mobscale.New(snap)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r.OnCreatureSpawn(mobscale.SpawnEvent{Entity: e, Reason: mobscale.SpawnNatural})
package mobscale

import (
	"github.com/bft-labs/mobscale/internal/config"
	"github.com/bft-labs/mobscale/pkg/dist"
	"github.com/bft-labs/mobscale/pkg/mobscale"
)

// Randomizer applies configured random scales to creatures.
type Randomizer = mobscale.Randomizer

// Snapshot is an immutable view of the configuration.
type Snapshot = config.Snapshot

// Option configures a Randomizer.
type Option = mobscale.Option

type (
	Entity         = mobscale.Entity
	SpawnEvent     = mobscale.SpawnEvent
	ChunkLoadEvent = mobscale.ChunkLoadEvent
	CommandSender  = mobscale.CommandSender
	SpawnReason    = config.SpawnReason
)

// Spawn reasons most callers need.
const (
	SpawnNatural = config.SpawnNatural
	SpawnSpawner = config.SpawnSpawner
	SpawnDefault = config.SpawnDefault
)

// New creates a Randomizer. See pkg/mobscale for options.
func New(snap Snapshot, opts ...Option) (*Randomizer, error) {
	return mobscale.New(snap, opts...)
}

// LoadConfig reads, applies MOBSCALE_* overrides to, and validates a config file.
func LoadConfig(path string) (Snapshot, error) {
	return mobscale.LoadConfig(path)
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Snapshot {
	return mobscale.DefaultConfig()
}

// Sample draws one scale in [min, max] using the named distribution
// ("uniform", "normal", "leftexponential", "rightexponential"; anything else
// is uniform). It returns 1.0 when max <= min.
func Sample(min, max float64, distribution string, src dist.Source) float64 {
	req := dist.Request{Range: dist.Range{Min: min, Max: max}, Kind: dist.Resolve(distribution)}
	return mobscale.Scale(req, dist.Sampler{}, src)
}
