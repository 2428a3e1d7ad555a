package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pingcap/errors"

	"montyhall/internal/montyhall"
)

// WriteText prints the four-line block for one strategy. The percentage is
// always in plain decimal notation.
func WriteText(w io.Writer, r montyhall.Result) error {
	_, err := fmt.Fprintf(w, "Simulation when %s:\nTotal Simulations: %d\nTimes Won: %d\nWin Ratio: %s%%\n",
		r.Strategy.Describe(), r.Total, r.Wins, strconv.FormatFloat(r.Percent(), 'f', -1, 64))
	return errors.Trace(err)
}
