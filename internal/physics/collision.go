package physics

import "github.com/san-kum/crittersim/internal/world"

// Collides reports whether two bodies overlap. The collider is a
// circle whose radius is half the body width; height is ignored, so
// the test is deliberately coarse for non-square bodies.
func Collides(a, b *world.Body) bool {
	return a.Pos.Distance(b.Pos) < (a.Width+b.Width)/2
}

// Resolve applies a perfectly elastic impulse exchange along the
// center normal of a colliding pair. Pairs with coincident centers
// (undefined normal) and pairs already separating along the normal are
// left untouched. Wall bounce friction does not apply here; body-body
// restitution is 1.
func Resolve(a, b *world.Body) {
	delta := b.Pos.Sub(a.Pos)
	if delta.LengthSquared() == 0 {
		return
	}
	normal := delta.Normalize()

	closing := a.Vel.Sub(b.Vel).Dot(normal)
	if closing <= 0 {
		return
	}

	impulse := 2 * closing / (a.Mass + b.Mass)
	a.Vel = a.Vel.Sub(normal.Scale(impulse * b.Mass))
	b.Vel = b.Vel.Add(normal.Scale(impulse * a.Mass))
}
