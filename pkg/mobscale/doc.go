// Package mobscale randomizes the size of spawned creatures.
//
// A [Randomizer] sits between a game server and the sampling engine in
// package dist. The server forwards spawn and chunk-load notifications;
// the randomizer decides whether each creature qualifies, draws a scale from
// the creature's configured range and distribution, and applies it through
// the [Entity] port.
//
// # Basic Usage
//
//	snap, err := mobscale.LoadConfig(path)
//	if err != nil {
//	    return err
//	}
//	r, err := mobscale.New(snap,
//	    mobscale.WithConfigPath(path),
//	    mobscale.WithLogger(log.NewZerologAdapter()),
//	)
//	if err != nil {
//	    return err
//	}
//	server.OnSpawn(func(e mobscale.Entity, reason mobscale.SpawnReason) {
//	    r.OnCreatureSpawn(mobscale.SpawnEvent{Entity: e, Reason: reason})
//	})
//
// # Reloading
//
// [Randomizer.Reload] re-reads the configuration file and swaps the snapshot
// atomically; a failed reload keeps the previous one. The "reload" command
// and the configwatcher plugin both go through it.
//
// # Concurrency
//
// Event handlers may be called from several goroutines. The snapshot is
// swapped atomically and the default random source is internally locked.
// A source passed with [WithSource] must be safe for the caller's threading.
package mobscale
