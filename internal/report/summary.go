package report

import (
	"encoding/json"
	"os"

	"github.com/pingcap/errors"

	"montyhall/internal/montyhall"
)

type Summary struct {
	Seed       int64             `json:"seed"`
	Iterations int               `json:"iterations"`
	Results    []StrategySummary `json:"results"`
}

type StrategySummary struct {
	Strategy string            `json:"strategy"`
	Total    int               `json:"total"`
	Wins     int               `json:"wins"`
	Ratio    float64           `json:"ratio"`
	Percent  float64           `json:"percent"`
	Trace    []montyhall.Point `json:"trace,omitempty"`
}

func NewSummary(seed int64, iterations int, results []montyhall.Result) Summary {
	s := Summary{Seed: seed, Iterations: iterations, Results: make([]StrategySummary, 0, len(results))}
	for _, r := range results {
		s.Results = append(s.Results, StrategySummary{
			Strategy: r.Strategy.String(),
			Total:    r.Total,
			Wins:     r.Wins,
			Ratio:    r.Ratio(),
			Percent:  r.Percent(),
			Trace:    r.Trace,
		})
	}
	return s
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}

func WriteJSON(path string, v any) error {
	if err := os.WriteFile(path, MarshalPretty(v), 0644); err != nil {
		return errors.Annotatef(err, "write summary %s failed", path)
	}
	return nil
}
