package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pingcap/errors"
	"go.uber.org/zap"

	"montyhall/internal/config"
	"montyhall/internal/montyhall"
	"montyhall/internal/report"
	"montyhall/internal/util"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

type options struct {
	cfgPath    string
	out        string
	chart      string
	logLevel   string
	seed       int64
	n          int
	checkpoint int
	// names of the flags given on the command line
	set map[string]bool
}

// run reports its own failures: through the flag package for bad arguments,
// on stderr directly until the logger exists, and through zap afterwards.
func run(args []string, stdout, stderr io.Writer) error {
	opt := options{set: map[string]bool{}}
	fs := flag.NewFlagSet("montyhall", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opt.cfgPath, "config", "", "YAML sim config (optional)")
	fs.IntVar(&opt.n, "n", montyhall.DefaultIterations, "number of simulations per strategy")
	fs.Int64Var(&opt.seed, "seed", 0, "random seed (0 = now)")
	fs.IntVar(&opt.checkpoint, "checkpoint", 0, "record the running win ratio every k trials (0 = off)")
	fs.StringVar(&opt.out, "out", "", "write JSON summary to file")
	fs.StringVar(&opt.chart, "chart", "", "write HTML charts to file")
	fs.StringVar(&opt.logLevel, "log-level", "warn", "log level")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	fs.Visit(func(f *flag.Flag) { opt.set[f.Name] = true })

	if _, err := util.InitLogger(opt.logLevel); err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	if err := simulate(opt, stdout); err != nil {
		zap.L().Error("simulation failed", zap.Error(err))
		return err
	}
	return nil
}

func simulate(opt options, stdout io.Writer) error {
	cfg, err := config.LoadSim(opt.cfgPath)
	if err != nil {
		return err
	}
	// explicit flags win over the file; validate only the merged result
	if opt.set["n"] {
		cfg.Iterations = opt.n
	}
	if opt.set["seed"] {
		cfg.Seed = opt.seed
	}
	if opt.set["checkpoint"] {
		cfg.Checkpoint = opt.checkpoint
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	strategies, err := cfg.StrategyList()
	if err != nil {
		return err
	}

	resolved := util.ResolveSeed(cfg.Seed)
	zap.L().Info("start simulation",
		zap.Int64("seed", resolved),
		zap.Int("iterations", cfg.Iterations),
		zap.Strings("strategies", cfg.Strategies))

	rng := util.New(resolved)
	runner := &montyhall.Runner{Iterations: cfg.Iterations, Checkpoint: cfg.Checkpoint}
	results := make([]montyhall.Result, 0, len(strategies))
	for _, s := range strategies {
		res, err := runner.Run(rng, s)
		if err != nil {
			return errors.Annotatef(err, "run %s", s)
		}
		if err := report.WriteText(stdout, res); err != nil {
			return err
		}
		results = append(results, res)
	}

	if out := opt.out; out != "" {
		if err := report.WriteJSON(out, report.NewSummary(resolved, cfg.Iterations, results)); err != nil {
			return err
		}
		zap.L().Info("summary written", zap.String("path", out))
	}
	if chart := opt.chart; chart != "" {
		if err := report.WriteChart(chart, results); err != nil {
			return err
		}
		zap.L().Info("chart written", zap.String("path", chart))
	}
	return nil
}
