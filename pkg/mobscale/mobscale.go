package mobscale

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bft-labs/mobscale/internal/config"
	"github.com/bft-labs/mobscale/pkg/dist"
	"github.com/bft-labs/mobscale/pkg/log"
)

// DefaultScale is applied when a creature's range is empty or inverted.
const DefaultScale = 1.0

// Re-exported configuration types.
type (
	Snapshot    = config.Snapshot
	MobConfig   = config.MobConfig
	SpawnReason = config.SpawnReason
)

// LoadConfig reads a configuration file, applies MOBSCALE_* overrides and
// validates the result.
func LoadConfig(path string) (Snapshot, error) {
	return config.Load(path)
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Snapshot {
	return config.Default()
}

// Scale draws a scale for req, or returns DefaultScale without touching src
// when the range cannot be sampled (max <= min).
func Scale(req dist.Request, s dist.Sampler, src dist.Source) float64 {
	if !req.Range.Valid() {
		return DefaultScale
	}
	return s.Sample(req, src)
}

// Randomizer applies configured random scales to creatures.
type Randomizer struct {
	snap atomic.Pointer[config.Snapshot]

	sampler    dist.Sampler
	src        dist.Source
	logger     log.Logger
	configPath string

	plugins   []Plugin
	lifecycle *lifecycle

	reloadMu sync.Mutex
}

// New creates a Randomizer for snap. Returns an error if snap is invalid.
func New(snap Snapshot, opts ...Option) (*Randomizer, error) {
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	src := o.source
	if src == nil {
		if snap.Seed != 0 {
			src = dist.NewSource(snap.Seed)
		} else {
			src = dist.NewTimeSeededSource()
		}
	}

	r := &Randomizer{
		sampler:    o.sampler,
		src:        src,
		configPath: o.configPath,
		plugins:    o.plugins,
	}
	r.snap.Store(&snap)
	r.logger = log.NewDebugGate(o.logger, func() bool { return r.Snapshot().Debug })
	r.lifecycle = newLifecycle(r.logger)
	return r, nil
}

// Snapshot returns the configuration currently in effect.
func (r *Randomizer) Snapshot() Snapshot {
	return *r.snap.Load()
}

// Apply replaces the configuration after validating it.
func (r *Randomizer) Apply(snap Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}
	r.snap.Store(&snap)
	return nil
}

// Reload re-reads the configuration file. On failure the previous
// configuration stays in effect.
func (r *Randomizer) Reload() error {
	if r.configPath == "" {
		return ErrNoConfigPath
	}

	r.reloadMu.Lock()
	defer r.reloadMu.Unlock()

	snap, err := config.Load(r.configPath)
	if err != nil {
		r.logger.Error("configuration reload failed, keeping previous configuration",
			log.String("path", r.configPath), log.Err(err))
		return fmt.Errorf("reload %s: %w", r.configPath, err)
	}
	r.snap.Store(&snap)
	r.logger.Info("configuration reloaded",
		log.String("path", r.configPath),
		log.Int("mobs", len(snap.Mobs)),
		log.Bool("debug", snap.Debug))
	return nil
}

// ScaleEntity draws and applies a scale for e. Players are never scaled;
// the second return value is false for them.
func (r *Randomizer) ScaleEntity(e Entity) (float64, bool) {
	if e == nil || e.IsPlayer() {
		return 0, false
	}

	snap := r.Snapshot()
	name := config.NormalizeName(e.Name())

	m, found := snap.Lookup(name)
	if found {
		r.logger.Debug("mob found", log.Creature(name))
	} else {
		m = snap.ResolveMob(name)
		r.logger.Debug("no mob config, using defaults", log.Creature(name))
	}
	r.logger.Debug("mob range",
		log.Creature(name),
		log.Float64("min", m.Min),
		log.Float64("max", m.Max),
		log.String("distribution", m.Kind().String()))

	scale := Scale(m.Request(), r.sampler, r.src)
	e.SetScale(scale)

	r.logger.Debug("scale set",
		log.Creature(name),
		log.World(e.World()),
		log.Scale(scale))
	return scale, true
}

// OnCreatureSpawn scales a newly spawned creature unless its world is
// excluded or its spawn reason is blocked. Reports whether it was scaled.
func (r *Randomizer) OnCreatureSpawn(ev SpawnEvent) bool {
	if ev.Entity == nil {
		return false
	}
	snap := r.Snapshot()
	if snap.IsExcludedWorld(ev.Entity.World()) {
		return false
	}
	if snap.IsSpawnReasonBlocked(ev.Reason) {
		r.logger.Debug("spawn reason blocked",
			log.Creature(config.NormalizeName(ev.Entity.Name())),
			log.String("reason", string(ev.Reason)))
		return false
	}
	_, ok := r.ScaleEntity(ev.Entity)
	return ok
}

// OnChunkLoad rescales every living, non-player entity in a loaded chunk when
// enable-chunkloadeffected is set. Returns the number of entities scaled.
func (r *Randomizer) OnChunkLoad(ev ChunkLoadEvent) int {
	snap := r.Snapshot()
	if !snap.ChunkLoadAffected {
		r.logger.Debug("chunk load event ignored")
		return 0
	}
	if snap.IsExcludedWorld(ev.World) {
		return 0
	}

	n := 0
	for _, e := range ev.Entities {
		if e == nil || !e.IsLiving() {
			continue
		}
		if _, ok := r.ScaleEntity(e); ok {
			n++
		}
	}
	return n
}

// Start initializes plugins in registration order.
func (r *Randomizer) Start(ctx context.Context) error {
	if !r.lifecycle.canStart() {
		return ErrAlreadyRunning
	}
	if err := r.lifecycle.transitionTo(StateStarting, "Start() called"); err != nil {
		return err
	}

	cfg := PluginConfig{
		ConfigPath: r.configPath,
		Logger:     r.logger,
		Reload:     r.Reload,
	}
	for i, p := range r.plugins {
		if err := p.Initialize(ctx, cfg); err != nil {
			r.logger.Error("plugin initialization failed",
				log.String("plugin", p.Name()), log.Err(err))
			r.shutdownPlugins(r.plugins[:i])
			_ = r.lifecycle.transitionTo(StateCrashed, "plugin init failed: "+p.Name())
			return fmt.Errorf("initialize %s: %w", p.Name(), err)
		}
		r.logger.Info("plugin initialized", log.String("plugin", p.Name()))
	}

	return r.lifecycle.transitionTo(StateRunning, "plugins initialized")
}

// Stop shuts plugins down in reverse registration order.
func (r *Randomizer) Stop() error {
	if !r.lifecycle.canStop() {
		return ErrNotRunning
	}
	if err := r.lifecycle.transitionTo(StateStopping, "Stop() called"); err != nil {
		return err
	}
	err := r.shutdownPlugins(r.plugins)
	if err != nil {
		_ = r.lifecycle.transitionTo(StateCrashed, "plugin shutdown failed")
		return err
	}
	return r.lifecycle.transitionTo(StateStopped, "graceful shutdown")
}

// Status returns the current lifecycle state.
func (r *Randomizer) Status() State {
	return r.lifecycle.State()
}

func (r *Randomizer) shutdownPlugins(plugins []Plugin) error {
	var errs []error
	ctx := context.Background()
	for i := len(plugins) - 1; i >= 0; i-- {
		p := plugins[i]
		if err := p.Shutdown(ctx); err != nil {
			r.logger.Error("plugin shutdown failed",
				log.String("plugin", p.Name()), log.Err(err))
			errs = append(errs, err)
			continue
		}
		r.logger.Info("plugin shutdown complete", log.String("plugin", p.Name()))
	}
	return errors.Join(errs...)
}
