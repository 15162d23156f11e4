package mobscale

import (
	"sync"

	"github.com/bft-labs/mobscale/pkg/log"
)

// State represents the lifecycle state of a Randomizer's plugins.
type State int

const (
	StateStopped State = iota
	StateStarting
	StateRunning
	StateStopping
	StateCrashed
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateStarting:
		return "Starting"
	case StateRunning:
		return "Running"
	case StateStopping:
		return "Stopping"
	case StateCrashed:
		return "Crashed"
	default:
		return "Unknown"
	}
}

// lifecycle guards Start/Stop transitions.
type lifecycle struct {
	mu     sync.RWMutex
	state  State
	logger log.Logger
}

func newLifecycle(logger log.Logger) *lifecycle {
	return &lifecycle{state: StateStopped, logger: logger}
}

func (l *lifecycle) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// transitionTo moves to next, rejecting transitions the state machine does not allow.
func (l *lifecycle) transitionTo(next State, reason string) error {
	l.mu.Lock()
	prev := l.state

	switch prev {
	case StateStopped, StateCrashed:
		if next != StateStarting {
			l.mu.Unlock()
			return ErrNotRunning
		}
	case StateStarting:
		if next != StateRunning && next != StateCrashed {
			l.mu.Unlock()
			return ErrAlreadyRunning
		}
	case StateRunning:
		if next != StateStopping && next != StateCrashed {
			l.mu.Unlock()
			return ErrAlreadyRunning
		}
	case StateStopping:
		if next != StateStopped && next != StateCrashed {
			l.mu.Unlock()
			return ErrAlreadyRunning
		}
	}

	l.state = next
	l.mu.Unlock()

	l.logger.Debug("state transition",
		log.String("from", prev.String()),
		log.String("to", next.String()),
		log.String("reason", reason),
	)
	return nil
}

func (l *lifecycle) canStart() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state == StateStopped || l.state == StateCrashed
}

func (l *lifecycle) canStop() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state == StateRunning
}
