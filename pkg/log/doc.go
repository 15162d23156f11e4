// Package log provides the logging abstraction used across mobscale.
//
// Components log through the [Logger] interface. A zerolog adapter and a
// no-op logger are provided, plus [DebugGate], which drops debug output
// unless the live configuration has debug enabled.
//
// # Usage
//
//	logger := log.NewZerologAdapter()
//	gated := log.NewDebugGate(logger, func() bool { return snap.Debug })
//	gated.Debug("mob found", log.Creature("ZOMBIE"))
//
// # Version
//
// See [Version].
package log
