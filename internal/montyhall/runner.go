package montyhall

import (
	"math/rand"

	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

const DefaultIterations = 100000

var ErrInvalidIterations = errors.New("invalid iteration count")

// Point is one sample of the running win ratio.
type Point struct {
	Trials int     `json:"trials"`
	Ratio  float64 `json:"ratio"`
}

type Result struct {
	Strategy Strategy
	Total    int
	Wins     int
	Trace    []Point
}

// Ratio is Wins/Total, defined as 0 when no trial ran.
func (r Result) Ratio() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Total)
}

func (r Result) Percent() float64 {
	return r.Ratio() * 100
}

// Runner plays a fixed number of trials of one strategy.
type Runner struct {
	Iterations int
	// Checkpoint, when positive, samples the running ratio every Checkpoint
	// trials and after the last one.
	Checkpoint int
	// Observer, when set, sees every trial in order.
	Observer func(Trial)
}

func NewRunner(iterations int) *Runner {
	return &Runner{Iterations: iterations}
}

func (r *Runner) Run(rng *rand.Rand, s Strategy) (Result, error) {
	if r.Iterations <= 0 {
		return Result{}, errors.Annotatef(ErrInvalidIterations, "iterations=%d", r.Iterations)
	}
	if !s.Valid() {
		return Result{}, errors.Errorf("unknown strategy: %d", s)
	}
	if rng == nil {
		return Result{}, errors.New("runner requires a random source")
	}

	res := Result{Strategy: s}
	for i := 0; i < r.Iterations; i++ {
		t, err := RandomTrial(rng, s)
		if err != nil {
			return Result{}, errors.Annotatef(err, "trial %d", i)
		}
		res.Total++
		if t.Win {
			res.Wins++
		}
		if r.Observer != nil {
			r.Observer(t)
		}
		if r.Checkpoint > 0 && (res.Total%r.Checkpoint == 0 || res.Total == r.Iterations) {
			res.Trace = append(res.Trace, Point{Trials: res.Total, Ratio: res.Ratio()})
		}
	}

	zap.L().Debug("simulation finished",
		zap.Stringer("strategy", s),
		zap.Int("total", res.Total),
		zap.Int("wins", res.Wins),
		zap.Float64("ratio", res.Ratio()))
	return res, nil
}
