package world

// Store holds the working body set for one tick and is the sole
// enforcement point of the population cap. Growth beyond max is
// silently dropped; the initial set is accepted as-is even when it
// already exceeds the cap.
type Store struct {
	bodies []Body
	max    int
}

// NewStore wraps an initial body set with a growth cap. The initial
// slice is adopted, not copied.
func NewStore(initial []Body, max int) *Store {
	return &Store{bodies: initial, max: max}
}

// Append adds b iff the population is below the cap and reports
// whether it was added.
func (s *Store) Append(b Body) bool {
	if len(s.bodies) >= s.max {
		return false
	}
	s.bodies = append(s.bodies, b)
	return true
}

// Len returns the current population size.
func (s *Store) Len() int { return len(s.bodies) }

// Bodies returns the working set. Callers that publish it outside the
// tick must copy it first.
func (s *Store) Bodies() []Body { return s.bodies }
