package montyhall

import (
	"math/rand"

	"github.com/pingcap/errors"
)

type Trial struct {
	Arrangement Arrangement
	Choice      int
	Reveal      int
	Final       int
	Win         bool
}

// PlayTrial resolves one game from a fixed arrangement, choice and reveal.
// It uses no randomness.
func PlayTrial(a Arrangement, choice, reveal int, s Strategy) (Trial, error) {
	if err := a.Validate(); err != nil {
		return Trial{}, errors.Trace(err)
	}
	if !validPosition(choice) {
		return Trial{}, errors.Errorf("choice out of range: %d", choice)
	}
	if !validPosition(reveal) || reveal == choice || a[reveal] == Car {
		return Trial{}, errors.Errorf("host cannot reveal door %d (choice %d, arrangement %s)", reveal, choice, a)
	}
	if !s.Valid() {
		return Trial{}, errors.Errorf("unknown strategy: %d", s)
	}

	final := s.Resolve(a, choice, reveal)
	return Trial{
		Arrangement: a,
		Choice:      choice,
		Reveal:      reveal,
		Final:       final,
		Win:         a[final] == Car,
	}, nil
}

// RandomTrial sets up the doors, lets the participant pick and the host open
// a goat, then applies s.
func RandomTrial(rng *rand.Rand, s Strategy) (Trial, error) {
	a := NewArrangement(rng)
	choice := Choose(rng)
	reveal, err := HostReveal(rng, a, choice)
	if err != nil {
		return Trial{}, errors.Trace(err)
	}
	return PlayTrial(a, choice, reveal, s)
}
