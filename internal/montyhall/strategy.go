package montyhall

import (
	"strings"

	"github.com/pingcap/errors"
)

// Strategy decides the final door once the host has revealed a goat.
type Strategy uint8

const (
	Switch Strategy = iota + 1
	Stay
)

// Strategies lists every strategy in reporting order.
func Strategies() []Strategy {
	return []Strategy{Switch, Stay}
}

func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "switch":
		return Switch, nil
	case "stay":
		return Stay, nil
	default:
		return 0, errors.Errorf("unknown strategy: %q", name)
	}
}

func (s Strategy) String() string {
	switch s {
	case Switch:
		return "switch"
	case Stay:
		return "stay"
	default:
		return "unknown"
	}
}

// Describe is the phrase used in report headings.
func (s Strategy) Describe() string {
	switch s {
	case Switch:
		return "always switching"
	case Stay:
		return "always staying"
	default:
		return "unknown strategy"
	}
}

func (s Strategy) Valid() bool {
	return s == Switch || s == Stay
}

// Resolve returns the final door. It returns -1 for an unknown strategy.
func (s Strategy) Resolve(_ Arrangement, choice, reveal int) int {
	switch s {
	case Switch:
		return positionSum - choice - reveal
	case Stay:
		return choice
	default:
		return -1
	}
}
