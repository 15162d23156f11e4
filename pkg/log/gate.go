package log

// DebugGate forwards to an underlying Logger but drops Debug calls while
// enabled reports false. enabled is consulted on every call so a reloaded
// configuration takes effect immediately.
type DebugGate struct {
	next    Logger
	enabled func() bool
}

// NewDebugGate wraps next. A nil enabled func never lets debug through.
func NewDebugGate(next Logger, enabled func() bool) *DebugGate {
	if next == nil {
		next = NoopLogger{}
	}
	return &DebugGate{next: next, enabled: enabled}
}

// Debug logs only when the gate is open.
func (g *DebugGate) Debug(msg string, fields ...Field) {
	if g.enabled == nil || !g.enabled() {
		return
	}
	g.next.Debug(msg, fields...)
}

func (g *DebugGate) Info(msg string, fields ...Field)  { g.next.Info(msg, fields...) }
func (g *DebugGate) Warn(msg string, fields ...Field)  { g.next.Warn(msg, fields...) }
func (g *DebugGate) Error(msg string, fields ...Field) { g.next.Error(msg, fields...) }
