// Package configwatcher reloads the mobscale configuration when its file changes.
// It watches the file's directory so editors that replace the file on save
// are still seen.
package configwatcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/mobscale/pkg/log"
	"github.com/bft-labs/mobscale/pkg/mobscale"
)

// Plugin implements config watching functionality.
type Plugin struct {
	mu sync.Mutex

	debounceDelay time.Duration

	// Runtime state
	path     string
	reload   func() error
	logger   log.Logger
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	debounce *time.Timer
}

// Config holds configuration options for the config watcher plugin.
type Config struct {
	// DebounceDelay is the delay to wait after a file change before reloading.
	// Default: 250 milliseconds
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DebounceDelay: 250 * time.Millisecond,
	}
}

// New creates a new config watcher plugin with the given configuration.
func New(cfg Config) *Plugin {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = DefaultConfig().DebounceDelay
	}
	return &Plugin{debounceDelay: cfg.DebounceDelay}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "configwatcher"
}

// Initialize starts watching cfg.ConfigPath. Without a path or reload hook
// the plugin stays idle.
func (p *Plugin) Initialize(ctx context.Context, cfg mobscale.PluginConfig) error {
	p.mu.Lock()
	p.path = cfg.ConfigPath
	p.reload = cfg.Reload
	p.logger = cfg.Logger
	p.mu.Unlock()

	if p.logger == nil {
		p.logger = log.NewNoopLogger()
	}
	if p.path == "" || p.reload == nil {
		p.logger.Warn("config watcher disabled: no configuration path")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(p.path)); err != nil {
		watcher.Close()
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.wg.Add(1)
	go p.watchLoop(watchCtx, watcher)

	p.logger.Info("config watcher started", log.String("path", p.path))
	return nil
}

// Shutdown stops the watcher, drops a pending reload and waits for one
// already in progress.
func (p *Plugin) Shutdown(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}

	p.mu.Lock()
	if p.debounce != nil && p.debounce.Stop() {
		p.wg.Done()
	}
	p.debounce = nil
	p.mu.Unlock()

	p.wg.Wait()
	return nil
}

func (p *Plugin) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer p.wg.Done()
	defer watcher.Close()

	name := filepath.Clean(p.path)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			p.debounceReload(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			p.logger.Error("config watcher error", log.Err(err))
		}
	}
}

// debounceReload collapses bursts of write events into one reload.
func (p *Plugin) debounceReload(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if ctx.Err() != nil {
		return
	}
	// Each scheduled callback holds one wg slot until it runs or is stopped.
	if p.debounce != nil && p.debounce.Stop() {
		p.wg.Done()
	}
	p.wg.Add(1)
	p.debounce = time.AfterFunc(p.debounceDelay, func() {
		defer p.wg.Done()
		if ctx.Err() != nil {
			return
		}
		if err := p.reload(); err != nil {
			p.logger.Warn("config watcher: reload failed", log.Err(err))
			return
		}
		p.logger.Debug("config watcher: reloaded", log.String("path", p.path))
	})
}

var _ mobscale.Plugin = (*Plugin)(nil)
