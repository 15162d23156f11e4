package mobscale

import "errors"

var (
	// ErrAlreadyRunning is returned when Start() is called on a running instance.
	ErrAlreadyRunning = errors.New("mobscale: already running")

	// ErrNotRunning is returned when Stop() is called on a stopped instance.
	ErrNotRunning = errors.New("mobscale: not running")

	// ErrNoConfigPath is returned by Reload when no configuration file was set.
	ErrNoConfigPath = errors.New("mobscale: no configuration path")
)
