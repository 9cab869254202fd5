package utils

import (
	"math/rand"
	"time"
)

// Roller is the single source of randomness for game rules. *rand.Rand satisfies it,
// so a seeded generator reproduces a whole session.
type Roller interface {
	Float64() float64
	Intn(n int) int
}

// NewRoller returns a seeded generator. A zero seed draws one from the clock.
func NewRoller(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) //nolint:gosec // Game logic randomness, not security critical
}

// Chance reports whether a roll lands under probability p.
func Chance(r Roller, p float64) bool {
	return r.Float64() < p
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(r Roller, min, max int) int {
	if min >= max {
		return min
	}
	return r.Intn(max-min+1) + min
}

// Pick returns a uniformly chosen index in [0, n). n must be positive.
func Pick(r Roller, n int) int {
	if n <= 1 {
		return 0
	}
	return r.Intn(n)
}
