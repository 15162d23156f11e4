package mobscale

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bft-labs/mobscale/internal/config"
	"github.com/bft-labs/mobscale/pkg/dist"
)

type fakeEntity struct {
	name   string
	world  string
	player bool
	dead   bool

	mu     sync.Mutex
	scale  float64
	scaled int
}

func (e *fakeEntity) Name() string   { return e.name }
func (e *fakeEntity) World() string  { return e.world }
func (e *fakeEntity) IsPlayer() bool { return e.player }
func (e *fakeEntity) IsLiving() bool { return !e.dead }
func (e *fakeEntity) SetScale(s float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scale = s
	e.scaled++
}

// panicSource fails the test if the sampler touches it.
type panicSource struct{}

func (panicSource) Float64() float64     { panic("Float64 called") }
func (panicSource) NormFloat64() float64 { panic("NormFloat64 called") }

func testSnapshot() config.Snapshot {
	s := config.Default()
	s.Seed = 42
	s.Mobs["ZOMBIE"] = config.MobConfig{Min: 0.8, Max: 1.2, Distribution: "normal", Lambda: 1}
	s.Mobs["CAVE_SPIDER"] = config.MobConfig{Min: 0.5, Max: 0.6, Distribution: "rightexponential", Lambda: 1}
	s.Mobs["IRON_GOLEM"] = config.MobConfig{Min: 1.0, Max: 1.0, Distribution: "uniform", Lambda: 1}
	s.Mobs["GHAST"] = config.MobConfig{Min: 2.0, Max: 1.0, Distribution: "uniform", Lambda: 1}
	return s
}

func newTestRandomizer(t *testing.T, snap config.Snapshot, opts ...Option) *Randomizer {
	t.Helper()
	r, err := New(snap, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func TestScale_DegenerateRangeSkipsSampling(t *testing.T) {
	for _, rg := range []dist.Range{{Min: 1, Max: 1}, {Min: 1.5, Max: 1.0}} {
		req := dist.Request{Range: rg, Kind: dist.Normal}
		if got := Scale(req, dist.Sampler{}, panicSource{}); got != DefaultScale {
			t.Errorf("Scale(%+v) = %v, want %v", rg, got, DefaultScale)
		}
	}
}

func TestNew_InvalidSnapshot(t *testing.T) {
	s := config.Default()
	s.BlockedSpawnReasons = []config.SpawnReason{"TELEPORT"}
	if _, err := New(s); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("New() error = %v, want ErrInvalidConfig", err)
	}
}

func TestScaleEntity(t *testing.T) {
	r := newTestRandomizer(t, testSnapshot())

	tests := []struct {
		name     string
		entity   *fakeEntity
		wantOK   bool
		min, max float64
	}{
		{"configured normal", &fakeEntity{name: "Zombie", world: "world"}, true, 0.8, 1.2},
		{"name with space", &fakeEntity{name: "Cave Spider", world: "world"}, true, 0.5, 0.6},
		{"unconfigured uses defaults", &fakeEntity{name: "Creeper", world: "world"}, true, 0.8, 1.0},
		{"equal bounds keep default scale", &fakeEntity{name: "Iron Golem", world: "world"}, true, 1.0, 1.0},
		{"inverted bounds keep default scale", &fakeEntity{name: "Ghast", world: "world"}, true, 1.0, 1.0},
		{"player skipped", &fakeEntity{name: "Steve", world: "world", player: true}, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 500; i++ {
				got, ok := r.ScaleEntity(tt.entity)
				if ok != tt.wantOK {
					t.Fatalf("ScaleEntity() ok = %v, want %v", ok, tt.wantOK)
				}
				if !ok {
					if tt.entity.scaled != 0 {
						t.Fatal("SetScale called for skipped entity")
					}
					return
				}
				if got < tt.min || got > tt.max {
					t.Fatalf("scale = %v, want in [%v, %v]", got, tt.min, tt.max)
				}
				if tt.entity.scale != got {
					t.Fatalf("entity scale = %v, returned %v", tt.entity.scale, got)
				}
			}
		})
	}
}

func TestScaleEntity_SeedIsReproducible(t *testing.T) {
	a := newTestRandomizer(t, testSnapshot())
	b := newTestRandomizer(t, testSnapshot())

	for i := 0; i < 20; i++ {
		sa, _ := a.ScaleEntity(&fakeEntity{name: "Zombie"})
		sb, _ := b.ScaleEntity(&fakeEntity{name: "Zombie"})
		if sa != sb {
			t.Fatalf("draw %d: %v != %v with the same seed", i, sa, sb)
		}
	}
}

func TestOnCreatureSpawn(t *testing.T) {
	snap := testSnapshot()
	snap.ExcludedWorlds = []string{"lobby"}
	snap.SpawnReasonBlocklistEnabled = true
	snap.BlockedSpawnReasons = []config.SpawnReason{config.SpawnSpawner}
	r := newTestRandomizer(t, snap)

	tests := []struct {
		name   string
		ev     SpawnEvent
		wantOK bool
	}{
		{"natural spawn", SpawnEvent{Entity: &fakeEntity{name: "Zombie", world: "world"}, Reason: config.SpawnNatural}, true},
		{"excluded world ignores case", SpawnEvent{Entity: &fakeEntity{name: "Zombie", world: "LOBBY"}, Reason: config.SpawnNatural}, false},
		{"blocked reason", SpawnEvent{Entity: &fakeEntity{name: "Zombie", world: "world"}, Reason: config.SpawnSpawner}, false},
		{"nil entity", SpawnEvent{Reason: config.SpawnNatural}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.OnCreatureSpawn(tt.ev); got != tt.wantOK {
				t.Errorf("OnCreatureSpawn() = %v, want %v", got, tt.wantOK)
			}
		})
	}
}

func TestApply_RejectsNonCanonicalSpawnReason(t *testing.T) {
	r := newTestRandomizer(t, testSnapshot())

	snap := testSnapshot()
	snap.SpawnReasonBlocklistEnabled = true
	snap.BlockedSpawnReasons = []config.SpawnReason{"spawner"}
	if err := r.Apply(snap); !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("Apply() = %v, want ErrInvalidConfig", err)
	}
	if r.Snapshot().SpawnReasonBlocklistEnabled {
		t.Error("rejected snapshot was applied")
	}
}

func TestOnChunkLoad(t *testing.T) {
	entities := func() []Entity {
		return []Entity{
			&fakeEntity{name: "Zombie"},
			&fakeEntity{name: "Steve", player: true},
			&fakeEntity{name: "Armor Stand", dead: true},
			&fakeEntity{name: "Cow"},
		}
	}

	snap := testSnapshot()
	r := newTestRandomizer(t, snap)
	if n := r.OnChunkLoad(ChunkLoadEvent{World: "world", Entities: entities()}); n != 0 {
		t.Errorf("disabled chunk load scaled %d entities, want 0", n)
	}

	snap.ChunkLoadAffected = true
	snap.ExcludedWorlds = []string{"lobby"}
	if err := r.Apply(snap); err != nil {
		t.Fatal(err)
	}
	if n := r.OnChunkLoad(ChunkLoadEvent{World: "world", Entities: entities()}); n != 2 {
		t.Errorf("OnChunkLoad() = %d, want 2 living non-players", n)
	}
	if n := r.OnChunkLoad(ChunkLoadEvent{World: "lobby", Entities: entities()}); n != 0 {
		t.Errorf("OnChunkLoad(excluded) = %d, want 0", n)
	}
}

func TestReload(t *testing.T) {
	r := newTestRandomizer(t, testSnapshot())
	if err := r.Reload(); !errors.Is(err, ErrNoConfigPath) {
		t.Errorf("Reload() without path = %v, want ErrNoConfigPath", err)
	}

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("defaultmin = 0.5\n[mobs.SLIME]\nmin = 0.5\nmax = 3.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r = newTestRandomizer(t, testSnapshot(), WithConfigPath(path))

	if err := r.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if _, ok := r.Snapshot().Mobs["SLIME"]; !ok {
		t.Error("reloaded snapshot should contain SLIME")
	}
	if _, ok := r.Snapshot().Mobs["ZOMBIE"]; ok {
		t.Error("reloaded snapshot should replace, not merge")
	}

	if err := os.WriteFile(path, []byte("spawn-reasons-blocklist = [\"NOPE\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := r.Reload(); err == nil {
		t.Fatal("Reload() with invalid file should fail")
	}
	if _, ok := r.Snapshot().Mobs["SLIME"]; !ok {
		t.Error("failed reload must keep the previous snapshot")
	}
}

func TestConcurrentSpawns(t *testing.T) {
	r := newTestRandomizer(t, testSnapshot())

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				e := &fakeEntity{name: "Zombie", world: "world"}
				r.OnCreatureSpawn(SpawnEvent{Entity: e, Reason: config.SpawnNatural})
				if e.scale < 0.8 || e.scale > 1.2 {
					t.Errorf("scale %v out of range", e.scale)
					return
				}
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = r.Apply(testSnapshot())
		}
	}()
	wg.Wait()
}

type fakePlugin struct {
	name    string
	initErr error
	events  *[]string
	cfg     PluginConfig
}

func (p *fakePlugin) Name() string { return p.name }

func (p *fakePlugin) Initialize(ctx context.Context, cfg PluginConfig) error {
	p.cfg = cfg
	*p.events = append(*p.events, "init:"+p.name)
	return p.initErr
}

func (p *fakePlugin) Shutdown(ctx context.Context) error {
	*p.events = append(*p.events, "shutdown:"+p.name)
	return nil
}

func TestStartStop_PluginOrder(t *testing.T) {
	var events []string
	a := &fakePlugin{name: "a", events: &events}
	b := &fakePlugin{name: "b", events: &events}
	r := newTestRandomizer(t, testSnapshot(), WithPlugin(a), WithPlugin(b), WithConfigPath("/tmp/x.toml"))

	if err := r.Stop(); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Stop() before Start = %v, want ErrNotRunning", err)
	}
	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if r.Status() != StateRunning {
		t.Errorf("Status() = %v, want Running", r.Status())
	}
	if err := r.Start(context.Background()); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Start() = %v, want ErrAlreadyRunning", err)
	}
	if a.cfg.ConfigPath != "/tmp/x.toml" || a.cfg.Reload == nil || a.cfg.Logger == nil {
		t.Errorf("plugin config = %+v", a.cfg)
	}
	if err := r.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	want := []string{"init:a", "init:b", "shutdown:b", "shutdown:a"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}
	if r.Status() != StateStopped {
		t.Errorf("Status() = %v, want Stopped", r.Status())
	}
}

func TestStart_PluginFailureUnwinds(t *testing.T) {
	var events []string
	a := &fakePlugin{name: "a", events: &events}
	b := &fakePlugin{name: "b", events: &events, initErr: errors.New("boom")}
	r := newTestRandomizer(t, testSnapshot(), WithPlugin(a), WithPlugin(b))

	if err := r.Start(context.Background()); err == nil {
		t.Fatal("Start() should fail")
	}
	want := []string{"init:a", "init:b", "shutdown:a"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	if r.Status() != StateCrashed {
		t.Errorf("Status() = %v, want Crashed", r.Status())
	}
}
