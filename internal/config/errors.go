package config

import "errors"

var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("mobscale: invalid configuration")

	// ErrDuplicateMob is returned when two mob entries normalize to the same name.
	ErrDuplicateMob = errors.New("mobscale: duplicate mob entry")
)
