// Package physics advances individual bodies and resolves pairwise
// collisions. All functions mutate bodies in place; the tick scheduler
// decides what is published.
package physics

import "github.com/san-kum/crittersim/internal/world"

// Params are the per-tick force and boundary parameters. Drag is the
// only damping applied here; the legacy friction setting never reaches
// this package.
type Params struct {
	Gravity        float64
	Drag           float64
	BounceFriction float64
	ViewW          float64
	ViewH          float64
}

// Step advances one body by a unit timestep. Sub-step order matters:
// gravity must be damped by drag before the position update, the wall
// bounce only reflects velocity, and the final clamp is what keeps the
// body inside the viewport whether or not a bounce fired this tick.
func Step(b *world.Body, p Params) {
	b.Vel.Y += p.Gravity
	b.Vel.X *= p.Drag
	b.Vel.Y *= p.Drag

	b.Pos = b.Pos.Add(b.Vel)

	halfW := b.Width / 2
	halfH := b.Height / 2

	if b.Pos.X+halfW > p.ViewW || b.Pos.X-halfW < 0 {
		b.Vel.X = -b.Vel.X * p.BounceFriction
	}
	if b.Pos.Y+halfH > p.ViewH || b.Pos.Y-halfH < 0 {
		b.Vel.Y = -b.Vel.Y * p.BounceFriction
	}

	b.Pos.X = clamp(b.Pos.X, halfW, p.ViewW-halfW)
	b.Pos.Y = clamp(b.Pos.Y, halfH, p.ViewH-halfH)

	// Cosmetic rotation and pulse. Angle accumulates unwrapped; scale
	// is a sawtooth, snapping back to the minimum.
	b.Angle += b.Spin
	b.Scale += world.ScaleStep
	if b.Scale >= world.ScaleMax {
		b.Scale = world.ScaleMin
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
