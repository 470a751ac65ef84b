package sim

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/san-kum/crittersim/internal/physics"
	"github.com/san-kum/crittersim/internal/world"
)

// Params configure an engine. Friction is part of the configuration
// surface for compatibility but does not participate in the tick;
// Drag is the damping actually applied.
type Params struct {
	Gravity               float64
	Drag                  float64
	BounceFriction        float64
	AngularVelocityFactor float64
	MaxObjects            int
	ViewW                 float64
	ViewH                 float64
}

// Validate rejects parameter values that would poison the tick loop.
func (p Params) Validate() error {
	for name, v := range map[string]float64{
		"gravity":               p.Gravity,
		"drag":                  p.Drag,
		"bounceFriction":        p.BounceFriction,
		"angularVelocityFactor": p.AngularVelocityFactor,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParams, name)
		}
	}
	if p.AngularVelocityFactor < 0 {
		return fmt.Errorf("%w: angularVelocityFactor must be non-negative", ErrInvalidParams)
	}
	if p.MaxObjects < 0 {
		return fmt.Errorf("%w: maxObjects must be non-negative", ErrInvalidParams)
	}
	if p.ViewW <= 0 || p.ViewH <= 0 || math.IsNaN(p.ViewW) || math.IsNaN(p.ViewH) ||
		math.IsInf(p.ViewW, 0) || math.IsInf(p.ViewH, 0) {
		return fmt.Errorf("%w: viewport must be positive and finite", ErrInvalidParams)
	}
	return nil
}

// Engine advances simulation states tick by tick. It holds only
// parameters, the seeded random source, and registered hooks; the
// state itself travels through Tick.
type Engine struct {
	params    Params
	phys      physics.Params
	rng       *rand.Rand
	metrics   []Metric
	observers []Observer
}

// New creates an engine with validated parameters and a deterministic
// random source for the given seed.
func New(params Params, seed int64) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		params: params,
		phys: physics.Params{
			Gravity:        params.Gravity,
			Drag:           params.Drag,
			BounceFriction: params.BounceFriction,
			ViewW:          params.ViewW,
			ViewH:          params.ViewH,
		},
		rng:       rand.New(rand.NewSource(seed)),
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}, nil
}

func (e *Engine) AddMetric(m Metric)     { e.metrics = append(e.metrics, m) }
func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

// Params returns the engine parameters.
func (e *Engine) Params() Params { return e.params }

// Rand exposes the engine's seeded source for population creation, so
// one seed determines the whole run.
func (e *Engine) Rand() *rand.Rand { return e.rng }

// Tick advances the state by one step and returns the successor state.
// The input state is not modified.
//
// Within the tick, pairs are walked in index order i<j over the
// integrated set, and resolution mutates bodies in place: a body
// already resolved in one pair can be resolved again with its updated
// velocity by a later pair in the same tick. That ordering is part of
// the model, not an accident.
func (e *Engine) Tick(s State) State {
	next := s.Clone()
	bodies := next.Bodies

	for i := range bodies {
		physics.Step(&bodies[i], e.phys)
	}

	var spawned []world.Body
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if !physics.Collides(&bodies[i], &bodies[j]) {
				continue
			}
			physics.Resolve(&bodies[i], &bodies[j])
			if child, ok := e.tryReproduce(&bodies[i], &bodies[j], len(bodies)+len(spawned)); ok {
				spawned = append(spawned, child)
			}
		}
	}

	// Commit through the store so the cap guards the merge even if a
	// reproduction slipped one past the population check.
	store := world.NewStore(bodies, e.params.MaxObjects)
	for _, c := range spawned {
		store.Append(c)
	}

	next.Bodies = store.Bodies()
	next.Tick = s.Tick + 1
	return next
}

// Result summarizes a headless run.
type Result struct {
	TicksRun   int
	Final      State
	Population []float64
	Energy     []float64
	Metrics    map[string]float64
	Errors     []error
}

// Run drives ticks sequentially from initial, notifying metrics and
// observers after each commit. The context is only checked between
// ticks; a tick in progress always completes. Per-tick anomalies are
// recorded and absorbed, never fatal.
func (e *Engine) Run(ctx context.Context, initial State, ticks int) (*Result, error) {
	if ticks < 0 {
		return nil, fmt.Errorf("%w: ticks must be non-negative", ErrInvalidParams)
	}

	for _, m := range e.metrics {
		m.Reset()
	}

	result := &Result{
		Population: make([]float64, 0, ticks),
		Energy:     make([]float64, 0, ticks),
		Metrics:    make(map[string]float64),
	}

	s := initial.Clone()
	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			result.Final = s
			return result, ctx.Err()
		default:
		}

		s = e.Tick(s)
		result.TicksRun++
		result.Population = append(result.Population, float64(len(s.Bodies)))
		result.Energy = append(result.Energy, s.KineticEnergy())

		if !s.Valid() {
			result.Errors = append(result.Errors, TickError{Tick: s.Tick, Message: "invalid body state (NaN/Inf or non-positive mass)"})
		}

		for _, m := range e.metrics {
			m.Observe(s)
		}
		for _, o := range e.observers {
			o.OnTick(s)
		}
	}

	for _, m := range e.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	result.Final = s
	return result, nil
}

// KineticEnergy sums ½mv² over all bodies.
func (s State) KineticEnergy() float64 {
	total := 0.0
	for i := range s.Bodies {
		b := &s.Bodies[i]
		total += 0.5 * b.Mass * b.Vel.LengthSquared()
	}
	return total
}
