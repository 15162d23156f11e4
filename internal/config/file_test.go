package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bft-labs/mobscale/pkg/dist"
)

func TestParse(t *testing.T) {
	data := []byte(`
debug = true
defaultmin = 0.7
defaultmax = 1.3
seed = 42
enable-spawn-reason-blocklist = true
spawn-reasons-blocklist = ["spawner", "BREEDING"]
enable-chunkloadeffected = true
excluded-worlds = ["world_nether"]

[mobs.zombie]
min = 0.8
max = 1.2
distribution = "Normal"

[mobs."Cave Spider"]
max = 2.0
distribution = "rightexponential"
lambda = 3.0

[mobs.CREEPER]
min = 0.9
`)

	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if !s.Debug || s.DefaultMin != 0.7 || s.DefaultMax != 1.3 || s.Seed != 42 {
		t.Errorf("globals = %+v", s)
	}
	if !s.SpawnReasonBlocklistEnabled || len(s.BlockedSpawnReasons) != 2 || s.BlockedSpawnReasons[0] != SpawnSpawner {
		t.Errorf("blocklist = %v (enabled %v)", s.BlockedSpawnReasons, s.SpawnReasonBlocklistEnabled)
	}
	if !s.ChunkLoadAffected {
		t.Error("ChunkLoadAffected = false, want true")
	}
	if !s.IsExcludedWorld("world_nether") {
		t.Error("world_nether should be excluded")
	}

	zombie, ok := s.Mobs["ZOMBIE"]
	if !ok || zombie.Min != 0.8 || zombie.Max != 1.2 || zombie.Kind() != dist.Normal || zombie.Lambda != dist.DefaultLambda {
		t.Errorf("ZOMBIE = %+v, %v", zombie, ok)
	}

	spider, ok := s.Mobs["CAVE_SPIDER"]
	if !ok || spider.Min != 1.0 || spider.Max != 2.0 || spider.Lambda != 3.0 || spider.Kind() != dist.RightExponential {
		t.Errorf("CAVE_SPIDER = %+v, %v", spider, ok)
	}

	creeper := s.Mobs["CREEPER"]
	if creeper.Min != 0.9 || creeper.Max != 1.0 || creeper.Distribution != "uniform" {
		t.Errorf("CREEPER = %+v, want max defaulted to 1.0 and uniform", creeper)
	}
}

func TestParse_EmptyKeepsDefaults(t *testing.T) {
	s, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if s.DefaultMin != DefaultMinSize || s.DefaultMax != DefaultMaxSize || len(s.Mobs) != 0 {
		t.Errorf("Parse(nil) = %+v, want defaults", s)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"unknown spawn reason", `spawn-reasons-blocklist = ["TELEPORT"]`, ErrInvalidConfig},
		{"negative seed", `seed = -1`, ErrInvalidConfig},
		{"duplicate mob", "[mobs.zombie]\nmin = 0.5\n[mobs.ZOMBIE]\nmin = 0.6\n", ErrDuplicateMob},
		{"malformed", `defaultmin = [`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("defaultmin = 0.5\n[mobs.ZOMBIE]\nlambda = -2.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
	}

	if err := os.WriteFile(path, []byte("defaultmin = 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.DefaultMin != 0.5 {
		t.Errorf("DefaultMin = %v, want 0.5", s.DefaultMin)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want not exist", err)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	wrote, err := WriteDefault(path)
	if err != nil || !wrote {
		t.Fatalf("WriteDefault() = %v, %v; want true, nil", wrote, err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("default file does not load: %v", err)
	}
	if _, ok := s.Mobs["ZOMBIE"]; !ok {
		t.Error("default file should configure ZOMBIE")
	}

	if err := os.WriteFile(path, []byte("debug = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	wrote, err = WriteDefault(path)
	if err != nil || wrote {
		t.Errorf("second WriteDefault() = %v, %v; want false, nil", wrote, err)
	}
	b, _ := os.ReadFile(path)
	if string(b) != "debug = true\n" {
		t.Error("WriteDefault overwrote an existing file")
	}
}

func TestEncode_Parses(t *testing.T) {
	s := Default()
	s.Seed = 7
	s.SpawnReasonBlocklistEnabled = true
	s.BlockedSpawnReasons = []SpawnReason{SpawnCommand}
	s.Mobs["ZOMBIE"] = MobConfig{Min: 0.8, Max: 1.2, Distribution: "normal", Lambda: 1}

	b, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := Parse(b)
	if err != nil {
		t.Fatalf("Parse(Encode()) error = %v\n%s", err, b)
	}
	if got.Seed != 7 || !got.IsSpawnReasonBlocked(SpawnCommand) || got.Mobs["ZOMBIE"] != s.Mobs["ZOMBIE"] {
		t.Errorf("Parse(Encode()) = %+v", got)
	}
}
