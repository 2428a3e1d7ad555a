package montyhall

import (
	"math/rand"

	"github.com/pingcap/errors"
)

// Doors is the number of positions in every arrangement.
const Doors = 3

// positionSum is 0+1+2; the one door that is neither a nor b is positionSum-a-b.
const positionSum = Doors * (Doors - 1) / 2

type Content uint8

const (
	Goat Content = iota
	Car
)

func (c Content) String() string {
	switch c {
	case Goat:
		return "goat"
	case Car:
		return "car"
	default:
		return "unknown"
	}
}

// Arrangement is what stands behind each door for a single trial.
type Arrangement [Doors]Content

// NewArrangement shuffles {goat, goat, car}, so every car position is equally
// likely.
func NewArrangement(rng *rand.Rand) Arrangement {
	a := Arrangement{Goat, Goat, Car}
	rng.Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })
	return a
}

// CarAt builds the arrangement with the car behind door pos.
func CarAt(pos int) Arrangement {
	var a Arrangement
	if validPosition(pos) {
		a[pos] = Car
	}
	return a
}

// CarPosition returns the door hiding the car, or -1 if there is none.
func (a Arrangement) CarPosition() int {
	for i, c := range a {
		if c == Car {
			return i
		}
	}
	return -1
}

func (a Arrangement) Validate() error {
	cars := 0
	for _, c := range a {
		switch c {
		case Car:
			cars++
		case Goat:
		default:
			return errors.Errorf("unknown door content: %d", c)
		}
	}
	if cars != 1 {
		return errors.Errorf("arrangement must hold exactly one car, got %d", cars)
	}
	return nil
}

func (a Arrangement) String() string {
	return "[" + a[0].String() + " " + a[1].String() + " " + a[2].String() + "]"
}

// Choose draws the participant's initial door.
func Choose(rng *rand.Rand) int {
	return rng.Intn(Doors)
}

// HostReveal picks the door the host opens: never the participant's choice
// and never the car. With two goats left it picks one uniformly.
func HostReveal(rng *rand.Rand, a Arrangement, choice int) (int, error) {
	if rng == nil {
		return -1, errors.New("host reveal requires a random source")
	}
	if err := a.Validate(); err != nil {
		return -1, errors.Trace(err)
	}
	if !validPosition(choice) {
		return -1, errors.Errorf("choice out of range: %d", choice)
	}

	var candidates [Doors - 1]int
	n := 0
	for i, c := range a {
		if i == choice || c == Car {
			continue
		}
		candidates[n] = i
		n++
	}
	switch n {
	case 0:
		return -1, errors.New("no door left for the host to reveal")
	case 1:
		return candidates[0], nil
	default:
		return candidates[rng.Intn(n)], nil
	}
}

func validPosition(pos int) bool {
	return pos >= 0 && pos < Doors
}
