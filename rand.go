package sway

import "math"

// DefaultSeed is the seed used when none is configured.
const DefaultSeed = 937162211

const (
	lcgMultiplier = 16807
	lcgModulus    = 2147483647
)

// Rand is a Park-Miller linear congruential generator. It is owned by the
// caller and threaded through every randomized operation; two Rands seeded
// alike yield identical sequences. A Rand is not safe for concurrent use.
type Rand struct {
	seed float64
}

// NewRand returns a generator seeded with seed.
func NewRand(seed int64) *Rand {
	r := &Rand{}
	r.Reseed(seed)
	return r
}

// Seed returns the current state so it can be restored with Reseed.
func (r *Rand) Seed() int64 { return int64(r.seed) }

// Reseed resets the generator state. Seeds are reduced modulo 2^31-1;
// a zero state would be absorbing, so it is replaced by DefaultSeed.
func (r *Rand) Reseed(seed int64) {
	s := seed % lcgModulus
	if s < 0 {
		s += lcgModulus
	}
	if s == 0 {
		s = DefaultSeed
	}
	r.seed = float64(s)
}

// Float returns a value in [lo, hi).
func (r *Rand) Float(lo, hi float64) float64 {
	r.seed = math.Mod(lcgMultiplier*r.seed, lcgModulus)
	return lo + (hi-lo)*r.seed/lcgModulus
}

// Int returns Float(lo, hi) rounded half up.
func (r *Rand) Int(lo, hi int) int {
	return int(math.Floor(0.5 + r.Float(float64(lo), float64(hi))))
}

// Any returns a uniformly chosen element of rows. rows must be non-empty.
func (r *Rand) Any(rows []*Row) *Row {
	return rows[r.Int(0, len(rows)-1)]
}

// Many draws n elements of rows with replacement.
func (r *Rand) Many(rows []*Row, n int) []*Row {
	out := make([]*Row, n)
	for i := range out {
		out[i] = r.Any(rows)
	}
	return out
}
