package configwatcher

import "github.com/bft-labs/mobscale/pkg/mobscale"

// WithConfigWatcher returns a mobscale Option that reloads the configuration
// whenever the file set with mobscale.WithConfigPath changes.
//
// Usage:
//
//	r, err := mobscale.New(snap,
//	    mobscale.WithConfigPath(path),
//	    configwatcher.WithConfigWatcher(configwatcher.DefaultConfig()),
//	)
func WithConfigWatcher(cfg Config) mobscale.Option {
	return mobscale.WithPlugin(New(cfg))
}

// WithDefaultConfigWatcher enables config watching with default settings.
func WithDefaultConfigWatcher() mobscale.Option {
	return WithConfigWatcher(DefaultConfig())
}
