package mobscale

import (
	"context"

	"github.com/bft-labs/mobscale/pkg/log"
)

// Plugin is an optional component started and stopped with the Randomizer.
type Plugin interface {
	// Name returns the plugin identifier.
	Name() string

	// Initialize is called by Start in registration order.
	Initialize(ctx context.Context, cfg PluginConfig) error

	// Shutdown is called by Stop in reverse registration order.
	Shutdown(ctx context.Context) error
}

// PluginConfig is what a plugin gets from the Randomizer.
type PluginConfig struct {
	// ConfigPath is the configuration file, empty when none was set.
	ConfigPath string

	Logger log.Logger

	// Reload re-reads ConfigPath into the Randomizer.
	Reload func() error
}
