package util

import (
	"math/rand"
	"time"
)

// ResolveSeed turns the "0 means unseeded" convention into a concrete seed so
// that a run can always be reported and replayed.
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	s := time.Now().UnixNano()
	if s == 0 {
		s = 1
	}
	return s
}

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}
