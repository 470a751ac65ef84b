// Package world owns the simulated body set: the Body value type, the
// creation distributions, and the population store that enforces the
// growth cap.
package world

import (
	"math/rand"

	"github.com/san-kum/crittersim/internal/sprite"
	"github.com/san-kum/crittersim/internal/vmath"
)

const (
	// Placement keeps initial bodies away from the walls.
	placementMargin = 50.0

	minExtent = 30.0
	maxExtent = 50.0
	maxSpeed  = 5.0

	// DefaultReproductionChance is the per-encounter spawn probability
	// assigned at initialization and inherited by children.
	DefaultReproductionChance = 0.01

	// Scale oscillates as a sawtooth in [ScaleMin, ScaleMax).
	ScaleMin  = 1.0
	ScaleMax  = 1.5
	ScaleStep = 0.01
)

// Body is one simulated point-mass. Position and velocity are world
// coordinates; angle and scale are cosmetic and never feed back into
// the dynamics. Bodies are plain values so a copied slice is a deep
// snapshot.
type Body struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Width  float64
	Height float64
	Mass   float64

	// Angle accumulates Spin every tick, in degrees, unwrapped.
	Angle float64
	Spin  float64
	Scale float64

	Sprite             sprite.Handle
	ReproductionChance float64
}

// NewBody creates a body with random placement, extent, velocity, and
// spin following the creation distributions. spinFactor bounds the
// angular velocity draw.
func NewBody(rng *rand.Rand, handle sprite.Handle, viewW, viewH, spinFactor float64) Body {
	return Body{
		Pos: vmath.Vec2{
			X: uniform(rng, placementMargin, viewW-placementMargin),
			Y: uniform(rng, placementMargin, viewH-placementMargin),
		},
		Vel:    randVelocity(rng),
		Width:  uniform(rng, minExtent, maxExtent),
		Height: uniform(rng, minExtent, maxExtent),
		Mass:   1,
		Angle:  uniform(rng, 0, 360),
		Spin:   uniform(rng, -spinFactor, spinFactor),
		Scale:  ScaleMin,

		Sprite:             handle,
		ReproductionChance: DefaultReproductionChance,
	}
}

// Child creates the offspring of a colliding pair: midpoint position,
// averaged extents, the first parent's sprite and reproduction chance,
// and fresh random kinematics from the creation distributions.
func Child(rng *rand.Rand, a, b Body, spinFactor float64) Body {
	return Body{
		Pos:    a.Pos.Add(b.Pos).Scale(0.5),
		Vel:    randVelocity(rng),
		Width:  (a.Width + b.Width) / 2,
		Height: (a.Height + b.Height) / 2,
		Mass:   1,
		Angle:  uniform(rng, 0, 360),
		Spin:   uniform(rng, -spinFactor, spinFactor),
		Scale:  ScaleMin,

		Sprite:             a.Sprite,
		ReproductionChance: a.ReproductionChance,
	}
}

// NewPopulation creates count bodies, assigning sprite handles
// round-robin so handles are reused when there are fewer handles than
// bodies. The population cap does not apply here: it governs growth,
// not the initial set.
func NewPopulation(rng *rand.Rand, count int, handles []sprite.Handle, viewW, viewH, spinFactor float64) []Body {
	bodies := make([]Body, 0, count)
	for i := 0; i < count; i++ {
		var h sprite.Handle
		if len(handles) > 0 {
			h = handles[i%len(handles)]
		}
		bodies = append(bodies, NewBody(rng, h, viewW, viewH, spinFactor))
	}
	return bodies
}

func randVelocity(rng *rand.Rand) vmath.Vec2 {
	return vmath.Vec2{
		X: uniform(rng, -maxSpeed, maxSpeed),
		Y: uniform(rng, -maxSpeed, maxSpeed),
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
