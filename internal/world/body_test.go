package world

import (
	"math/rand"
	"testing"

	"github.com/san-kum/crittersim/internal/sprite"
)

func TestNewPopulation_Distributions(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	handles := []sprite.Handle{{Name: "a"}, {Name: "b"}}

	const viewW, viewH, spinFactor = 800.0, 600.0, 0.05
	bodies := NewPopulation(rng, 50, handles, viewW, viewH, spinFactor)

	if len(bodies) != 50 {
		t.Fatalf("expected 50 bodies, got %d", len(bodies))
	}

	for i, b := range bodies {
		if b.Pos.X < 50 || b.Pos.X > viewW-50 || b.Pos.Y < 50 || b.Pos.Y > viewH-50 {
			t.Errorf("body %d placed outside margin: %v", i, b.Pos)
		}
		if b.Width < 30 || b.Width > 50 || b.Height < 30 || b.Height > 50 {
			t.Errorf("body %d extent out of range: %f x %f", i, b.Width, b.Height)
		}
		if b.Vel.X < -5 || b.Vel.X > 5 || b.Vel.Y < -5 || b.Vel.Y > 5 {
			t.Errorf("body %d velocity out of range: %v", i, b.Vel)
		}
		if b.Angle < 0 || b.Angle >= 360 {
			t.Errorf("body %d angle out of range: %f", i, b.Angle)
		}
		if b.Spin < -spinFactor || b.Spin > spinFactor {
			t.Errorf("body %d spin out of range: %f", i, b.Spin)
		}
		if b.Mass != 1 {
			t.Errorf("body %d mass = %f, want 1", i, b.Mass)
		}
		if b.Scale != ScaleMin {
			t.Errorf("body %d scale = %f, want %f", i, b.Scale, ScaleMin)
		}
		if b.ReproductionChance != DefaultReproductionChance {
			t.Errorf("body %d reproduction chance = %f", i, b.ReproductionChance)
		}
	}
}

func TestNewPopulation_SpriteRoundRobin(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	handles := []sprite.Handle{{Name: "a"}, {Name: "b"}}

	bodies := NewPopulation(rng, 5, handles, 800, 600, 0.05)

	want := []string{"a", "b", "a", "b", "a"}
	for i, b := range bodies {
		if b.Sprite.Name != want[i] {
			t.Errorf("body %d sprite = %s, want %s", i, b.Sprite.Name, want[i])
		}
	}
}

func TestNewPopulation_Empty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bodies := NewPopulation(rng, 0, nil, 800, 600, 0.05)
	if len(bodies) != 0 {
		t.Errorf("expected empty population, got %d", len(bodies))
	}
}

func TestChild(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	a := NewBody(rng, sprite.Handle{Name: "parent"}, 800, 600, 0.05)
	b := NewBody(rng, sprite.Handle{Name: "other"}, 800, 600, 0.05)
	a.ReproductionChance = 0.25

	c := Child(rng, a, b, 0.05)

	if c.Pos.X != (a.Pos.X+b.Pos.X)/2 || c.Pos.Y != (a.Pos.Y+b.Pos.Y)/2 {
		t.Errorf("child not at midpoint: %v", c.Pos)
	}
	if c.Width != (a.Width+b.Width)/2 || c.Height != (a.Height+b.Height)/2 {
		t.Errorf("child extent not averaged: %f x %f", c.Width, c.Height)
	}
	if c.Sprite.Name != "parent" {
		t.Errorf("child sprite = %s, want first parent's", c.Sprite.Name)
	}
	if c.ReproductionChance != 0.25 {
		t.Errorf("child reproduction chance = %f, want inherited 0.25", c.ReproductionChance)
	}
	if c.Mass != 1 || c.Scale != ScaleMin {
		t.Errorf("child mass/scale = %f/%f", c.Mass, c.Scale)
	}
}

func TestStore_CapIsGrowthOnly(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	// Two initial bodies with a cap of one: initialization is exempt.
	initial := NewPopulation(rng, 2, nil, 800, 600, 0.05)
	st := NewStore(initial, 1)

	if st.Len() != 2 {
		t.Fatalf("initial set truncated: len = %d", st.Len())
	}

	if st.Append(NewBody(rng, sprite.Handle{}, 800, 600, 0.05)) {
		t.Error("append above cap should be rejected")
	}
	if st.Len() != 2 {
		t.Errorf("population changed after rejected append: %d", st.Len())
	}
}

func TestStore_AppendBelowCap(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	st := NewStore(nil, 2)

	if !st.Append(NewBody(rng, sprite.Handle{}, 800, 600, 0.05)) {
		t.Error("first append should succeed")
	}
	if !st.Append(NewBody(rng, sprite.Handle{}, 800, 600, 0.05)) {
		t.Error("second append should succeed")
	}
	if st.Append(NewBody(rng, sprite.Handle{}, 800, 600, 0.05)) {
		t.Error("third append should be rejected at cap")
	}
	if st.Len() != 2 {
		t.Errorf("expected 2 bodies, got %d", st.Len())
	}
}
