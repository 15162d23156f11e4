package mobscale

import "github.com/bft-labs/mobscale/internal/config"

// Entity is the host's view of a creature.
type Entity interface {
	// Name is the display name, e.g. "Cave Spider".
	Name() string

	// World is the name of the world the entity is in.
	World() string

	IsPlayer() bool
	IsLiving() bool

	// SetScale sets the entity's base scale attribute.
	SetScale(scale float64)
}

// SpawnEvent is delivered when a creature spawns.
type SpawnEvent struct {
	Entity Entity
	Reason config.SpawnReason
}

// ChunkLoadEvent is delivered when a chunk loads with entities already in it.
type ChunkLoadEvent struct {
	World    string
	Entities []Entity
}

// CommandSender is whoever issued a command.
type CommandSender interface {
	HasPermission(permission string) bool
	SendMessage(msg string)
}
