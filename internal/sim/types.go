// Package sim orchestrates the simulation tick: integration of every
// body, pairwise collision detection and response, probabilistic
// reproduction, and the commit that the renderer-facing snapshot is
// published from.
package sim

import (
	"errors"
	"fmt"

	"github.com/san-kum/crittersim/internal/world"
)

var (
	// ErrNotRunning indicates a tick was requested before the session
	// left its idle phase.
	ErrNotRunning = errors.New("sim: session not running")

	// ErrInvalidParams indicates engine parameters that would poison
	// the tick loop (non-finite or out-of-range values).
	ErrInvalidParams = errors.New("sim: invalid parameters")
)

// State is the explicit simulation state passed into and returned from
// each tick. There is no ambient mutable state; cloning a State yields
// an independent copy because Body is a plain value type.
type State struct {
	Tick   int
	Bodies []world.Body
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	bodies := make([]world.Body, len(s.Bodies))
	copy(bodies, s.Bodies)
	return State{Tick: s.Tick, Bodies: bodies}
}

// Valid reports whether every body has finite position and velocity
// and positive mass.
func (s State) Valid() bool {
	for i := range s.Bodies {
		b := &s.Bodies[i]
		if !b.Pos.IsFinite() || !b.Vel.IsFinite() || b.Mass <= 0 {
			return false
		}
	}
	return true
}

// Metric observes states across a run and reduces them to one value.
type Metric interface {
	Name() string
	Observe(s State)
	Value() float64
	Reset()
}

// Observer is notified after every committed tick.
type Observer interface {
	OnTick(s State)
}

// TickError wraps an anomaly with the tick it occurred on.
type TickError struct {
	Tick    int
	Message string
}

func (e TickError) Error() string {
	return fmt.Sprintf("tick %d: %s", e.Tick, e.Message)
}
