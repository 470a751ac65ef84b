package sim

import "github.com/san-kum/crittersim/internal/world"

// tryReproduce draws once per colliding encounter and spawns a child
// iff the draw lands under the first parent's reproduction chance and
// the population has room. population must already count spawns
// pending from earlier pairs in the same tick, so the cap holds
// strictly across a tick's additions. The draw is taken before the
// checks so the random sequence is independent of the cap state.
func (e *Engine) tryReproduce(a, b *world.Body, population int) (world.Body, bool) {
	draw := e.rng.Float64()
	if draw >= a.ReproductionChance || population >= e.params.MaxObjects {
		return world.Body{}, false
	}
	return world.Child(e.rng, *a, *b, e.params.AngularVelocityFactor), true
}
