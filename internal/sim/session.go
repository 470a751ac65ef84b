package sim

import "github.com/san-kum/crittersim/internal/world"

// Phase is the session lifecycle state.
type Phase int

const (
	// Idle is the phase before the initial bodies exist; sprite
	// resolution happens while a session is idle.
	Idle Phase = iota
	// Running is the recurring tick phase. There is no terminal phase:
	// a session stops when its driver stops stepping it.
	Running
)

// Session is the frame-driven tick scheduler. An external clock calls
// Step once per frame; each step runs one full tick and publishes a
// fresh renderer-visible snapshot. Sessions are single-threaded by
// contract: one goroutine drives Step and reads Snapshot.
type Session struct {
	engine   *Engine
	phase    Phase
	state    State
	snapshot []world.Body
}

// NewSession creates an idle session around an engine.
func NewSession(engine *Engine) *Session {
	return &Session{engine: engine, phase: Idle}
}

// Begin installs the initial body set and moves the session to
// Running. Call it after sprite resolution has completed (or degraded
// to placeholders); the first snapshot is published immediately.
func (s *Session) Begin(bodies []world.Body) {
	s.state = State{Bodies: bodies}.Clone()
	s.phase = Running
	s.publish()
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Params returns the engine parameters driving this session.
func (s *Session) Params() Params { return s.engine.params }

// State returns a copy of the current simulation state.
func (s *Session) State() State { return s.state.Clone() }

// Step runs one tick and publishes the committed state. Stepping an
// idle session is an error, not a crash.
func (s *Session) Step() error {
	if s.phase != Running {
		return ErrNotRunning
	}
	s.state = s.engine.Tick(s.state)
	s.publish()
	for _, o := range s.engine.observers {
		o.OnTick(s.state)
	}
	return nil
}

// Snapshot returns the bodies published by the latest step. The slice
// is a copy made at publish time and is never mutated by later ticks;
// consumers must treat it as read-only.
func (s *Session) Snapshot() []world.Body {
	return s.snapshot
}

// Tick returns the number of completed ticks.
func (s *Session) Tick() int { return s.state.Tick }

func (s *Session) publish() {
	snap := make([]world.Body, len(s.state.Bodies))
	copy(snap, s.state.Bodies)
	s.snapshot = snap
}
