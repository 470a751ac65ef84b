package sim_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/crittersim/internal/sim"
	"github.com/san-kum/crittersim/internal/sprite"
	"github.com/san-kum/crittersim/internal/vmath"
	"github.com/san-kum/crittersim/internal/world"
)

func newEngine(p sim.Params, seed int64) *sim.Engine {
	e, err := sim.New(p, seed)
	Expect(err).NotTo(HaveOccurred())
	return e
}

var _ = Describe("Engine invariants", func() {
	var params sim.Params

	BeforeEach(func() {
		params = sim.Params{
			Gravity:               0.2,
			Drag:                  0.99,
			BounceFriction:        0.7,
			AngularVelocityFactor: 0.05,
			MaxObjects:            20,
			ViewW:                 800,
			ViewH:                 600,
		}
	})

	It("keeps the population at or below the cap on every tick", func() {
		params.MaxObjects = 10
		e := newEngine(params, 11)
		bodies := world.NewPopulation(e.Rand(), 5, []sprite.Handle{{Name: "s"}}, 300, 300, 0.05)
		for i := range bodies {
			bodies[i].ReproductionChance = 0.8
		}

		s := sim.State{Bodies: bodies}
		for i := 0; i < 1000; i++ {
			s = e.Tick(s)
			Expect(len(s.Bodies)).To(BeNumerically("<=", params.MaxObjects))
		}
	})

	It("keeps every body inside the viewport after every tick", func() {
		e := newEngine(params, 12)
		bodies := world.NewPopulation(e.Rand(), 8, nil, params.ViewW, params.ViewH, 0.05)

		s := sim.State{Bodies: bodies}
		for i := 0; i < 1000; i++ {
			s = e.Tick(s)
			for _, b := range s.Bodies {
				Expect(b.Pos.X).To(BeNumerically(">=", b.Width/2))
				Expect(b.Pos.X).To(BeNumerically("<=", params.ViewW-b.Width/2))
				Expect(b.Pos.Y).To(BeNumerically(">=", b.Height/2))
				Expect(b.Pos.Y).To(BeNumerically("<=", params.ViewH-b.Height/2))
			}
		}
	})

	It("keeps mass positive and state finite under adversarial velocities", func() {
		e := newEngine(params, 13)
		rng := rand.New(rand.NewSource(13))
		bodies := world.NewPopulation(rng, 6, nil, params.ViewW, params.ViewH, 0.05)
		bodies[0].Vel = vmath.Vec2{X: 1e9, Y: -1e9}
		bodies[1].Vel = vmath.Vec2{X: 1e-300, Y: 1e-300}

		s := sim.State{Bodies: bodies}
		for i := 0; i < 10000; i++ {
			s = e.Tick(s)
		}

		Expect(s.Valid()).To(BeTrue())
		for _, b := range s.Bodies {
			Expect(b.Mass).To(BeNumerically(">", 0.0))
		}
	})
})

var _ = Describe("Session", func() {
	var (
		engine  *sim.Engine
		session *sim.Session
	)

	BeforeEach(func() {
		engine = newEngine(sim.Params{
			Gravity:               0.2,
			Drag:                  0.99,
			BounceFriction:        0.7,
			AngularVelocityFactor: 0.05,
			MaxObjects:            20,
			ViewW:                 800,
			ViewH:                 600,
		}, 21)
		session = sim.NewSession(engine)
	})

	It("starts idle and refuses to step", func() {
		Expect(session.Phase()).To(Equal(sim.Idle))
		Expect(session.Step()).To(MatchError(sim.ErrNotRunning))
	})

	It("runs after Begin and publishes a snapshot per step", func() {
		bodies := world.NewPopulation(engine.Rand(), 4, nil, 800, 600, 0.05)
		session.Begin(bodies)

		Expect(session.Phase()).To(Equal(sim.Running))
		Expect(session.Snapshot()).To(HaveLen(4))

		Expect(session.Step()).To(Succeed())
		Expect(session.Tick()).To(Equal(1))
		Expect(session.Snapshot()).To(HaveLen(4))
	})

	It("publishes snapshots that later ticks never mutate", func() {
		bodies := world.NewPopulation(engine.Rand(), 4, nil, 800, 600, 0.05)
		session.Begin(bodies)
		Expect(session.Step()).To(Succeed())

		snap := session.Snapshot()
		frozen := make([]world.Body, len(snap))
		copy(frozen, snap)

		for i := 0; i < 25; i++ {
			Expect(session.Step()).To(Succeed())
		}

		Expect(snap).To(Equal(frozen))
	})

	It("accepts an empty initial population", func() {
		session.Begin(nil)
		Expect(session.Step()).To(Succeed())
		Expect(session.Snapshot()).To(BeEmpty())
	})
})
