package initializers

import "math/rand"

// RNG needs no explanation
type RNG interface {
	Gen() float64
}

type uniform struct {
	lower, upper float64
	src          *rand.Rand
}

// default bounds of Uniform
const (
	DefaultLower float64 = -0.1
	DefaultUpper float64 = 0.1
)

// Uniform returns an RNG that gives values uniformly spread on [lower, upper), which can be set
// by Bounds. The bounds start at [DefaultLower, DefaultUpper).
//
// Uniform is the RNG used by a Network if none other is provided.
func Uniform() *uniform {
	return &uniform{lower: DefaultLower, upper: DefaultUpper}
}

// Bounds sets the range of a Uniform RNG, returning it.
func (u *uniform) Bounds(lower, upper float64) *uniform {
	if lower > upper {
		lower, upper = upper, lower
	}

	u.lower = lower
	u.upper = upper
	return u
}

// Seed makes the RNG draw from its own source, seeded with the given value, instead of the
// package-level source from math/rand. Two RNGs with the same seed and bounds give the same
// sequence.
func (u *uniform) Seed(seed int64) *uniform {
	u.src = rand.New(rand.NewSource(seed))
	return u
}

// Gen is the implementation of RNG for Uniform. It returns a random number.
func (u *uniform) Gen() float64 {
	var f float64
	if u.src != nil {
		f = u.src.Float64()
	} else {
		f = rand.Float64()
	}

	return f*(u.upper-u.lower) + u.lower
}

type constant float64

// Constant returns an RNG that always gives the same value. It is mostly useful for tests.
func Constant(value float64) constant {
	return constant(value)
}

// Gen is the implementation of RNG for Constant.
func (c constant) Gen() float64 {
	return float64(c)
}
