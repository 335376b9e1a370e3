package render

import "sync/atomic"

// State is the orchestrator's render lifecycle token.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type stateToken struct {
	v atomic.Int32
}

func (t *stateToken) load() State {
	return State(t.v.Load())
}

func (t *stateToken) store(s State) {
	t.v.Store(int32(s))
}

// tryStart moves any non-running state to Running and returns the state it
// replaced. It reports false when a render is already in flight.
func (t *stateToken) tryStart() (State, bool) {
	for {
		cur := t.v.Load()
		if State(cur) == StateRunning {
			return StateRunning, false
		}
		if t.v.CompareAndSwap(cur, int32(StateRunning)) {
			return State(cur), true
		}
	}
}
