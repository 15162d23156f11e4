package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bft-labs/mobscale/pkg/dist"
)

// fileConfig mirrors Snapshot with pointers so absent keys keep their defaults.
type fileConfig struct {
	Debug                       *bool              `toml:"debug"`
	DefaultMin                  *float64           `toml:"defaultmin"`
	DefaultMax                  *float64           `toml:"defaultmax"`
	Seed                        *int64             `toml:"seed"`
	SpawnReasonBlocklistEnabled *bool              `toml:"enable-spawn-reason-blocklist"`
	SpawnReasonsBlocklist       []string           `toml:"spawn-reasons-blocklist"`
	ChunkLoadAffected           *bool              `toml:"enable-chunkloadeffected"`
	ExcludedWorlds              []string           `toml:"excluded-worlds"`
	Mobs                        map[string]fileMob `toml:"mobs"`
}

type fileMob struct {
	Min          *float64 `toml:"min"`
	Max          *float64 `toml:"max"`
	Distribution string   `toml:"distribution"`
	Lambda       *float64 `toml:"lambda"`
}

// DefaultFile is written by WriteDefault.
const DefaultFile = `# Print per-mob decisions to the log.
debug = false

# Range used for creatures without a [mobs.<NAME>] entry.
defaultmin = 0.8
defaultmax = 1.0

# Fixed random seed; 0 seeds from the clock.
seed = 0

# Keep the original size for these spawn reasons.
enable-spawn-reason-blocklist = false
spawn-reasons-blocklist = ["SPAWNER"]

# Rescale living entities when their chunk loads.
enable-chunkloadeffected = false

# Worlds where sizes are never changed.
excluded-worlds = []

# distribution: uniform, normal, leftexponential, rightexponential
# lambda: rate of the exponential distributions (default 1.0)
[mobs.ZOMBIE]
min = 0.8
max = 1.2
distribution = "normal"

[mobs.SPIDER]
min = 0.5
max = 1.5
distribution = "rightexponential"
lambda = 1.0
`

// Parse decodes TOML into a snapshot layered over Default().
// The result is not validated.
func Parse(data []byte) (Snapshot, error) {
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return Snapshot{}, fmt.Errorf("decode toml: %w", err)
	}
	return applyFileConfig(Default(), fc)
}

// Load reads path, applies environment overrides and validates the result.
func Load(path string) (Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, err
	}
	snap, err := Parse(b)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := ApplyEnv(&snap); err != nil {
		return Snapshot{}, err
	}
	if err := snap.Validate(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Encode renders a snapshot in the file format.
func Encode(s Snapshot) ([]byte, error) {
	seed := int64(s.Seed)
	fc := fileConfig{
		Debug:                       &s.Debug,
		DefaultMin:                  &s.DefaultMin,
		DefaultMax:                  &s.DefaultMax,
		Seed:                        &seed,
		SpawnReasonBlocklistEnabled: &s.SpawnReasonBlocklistEnabled,
		ChunkLoadAffected:           &s.ChunkLoadAffected,
		ExcludedWorlds:              s.ExcludedWorlds,
		Mobs:                        make(map[string]fileMob, len(s.Mobs)),
	}
	for _, r := range s.BlockedSpawnReasons {
		fc.SpawnReasonsBlocklist = append(fc.SpawnReasonsBlocklist, string(r))
	}
	for name, m := range s.Mobs {
		m := m
		fc.Mobs[name] = fileMob{Min: &m.Min, Max: &m.Max, Distribution: m.Distribution, Lambda: &m.Lambda}
	}
	return toml.Marshal(fc)
}

// DefaultPath returns ~/.mobscale/config.toml, or "" when there is no home directory.
func DefaultPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".mobscale", "config.toml")
	}
	return ""
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// WriteDefault writes DefaultFile to path unless a file is already there.
// It reports whether a file was written.
func WriteDefault(path string) (bool, error) {
	if FileExists(path) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, err
	}
	if _, err := f.WriteString(DefaultFile); err != nil {
		f.Close()
		return false, err
	}
	return true, f.Close()
}

func applyFileConfig(s Snapshot, fc fileConfig) (Snapshot, error) {
	setIf(&s.Debug, fc.Debug)
	setIf(&s.DefaultMin, fc.DefaultMin)
	setIf(&s.DefaultMax, fc.DefaultMax)
	setIf(&s.SpawnReasonBlocklistEnabled, fc.SpawnReasonBlocklistEnabled)
	setIf(&s.ChunkLoadAffected, fc.ChunkLoadAffected)

	if fc.Seed != nil {
		if *fc.Seed < 0 {
			return s, fmt.Errorf("%w: seed must not be negative", ErrInvalidConfig)
		}
		s.Seed = uint64(*fc.Seed)
	}

	for _, name := range fc.SpawnReasonsBlocklist {
		r, err := ParseSpawnReason(name)
		if err != nil {
			return s, fmt.Errorf("%w: spawn-reasons-blocklist: %v", ErrInvalidConfig, err)
		}
		s.BlockedSpawnReasons = append(s.BlockedSpawnReasons, r)
	}
	if fc.ExcludedWorlds != nil {
		s.ExcludedWorlds = append([]string(nil), fc.ExcludedWorlds...)
	}

	for name, fm := range fc.Mobs {
		key := NormalizeName(name)
		if _, dup := s.Mobs[key]; dup {
			return s, fmt.Errorf("%w: %q", ErrDuplicateMob, key)
		}
		m := MobConfig{
			Min:          mobBound,
			Max:          mobBound,
			Distribution: fm.Distribution,
			Lambda:       dist.DefaultLambda,
		}
		if m.Distribution == "" {
			m.Distribution = dist.Uniform.String()
		}
		setIf(&m.Min, fm.Min)
		setIf(&m.Max, fm.Max)
		setIf(&m.Lambda, fm.Lambda)
		s.Mobs[key] = m
	}
	return s, nil
}

// setIf copies *v into dst when the key was present.
func setIf[T any](dst *T, v *T) {
	if v == nil {
		return
	}
	*dst = *v
}
