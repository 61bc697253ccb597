package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/transport/allocate"
	"github.com/katalvlaran/transport/compare"
	"github.com/katalvlaran/transport/problem"
	"github.com/katalvlaran/transport/report"
)

// Separators of the inline --costs/--supply/--demand syntax.
const (
	rowSep  = ";"
	cellSep = ","
)

var (
	errNoInput        = errors.New("either --file or all of --costs, --supply and --demand are required")
	errMixedInput     = errors.New("--file cannot be combined with --costs, --supply or --demand")
	errAllFailed      = errors.New("every method failed")
	errUnknownDetail  = errors.New("--detail names a method that was not run")
	errInvalidWorkers = errors.New("--workers must be >= 0")
)

var solveCmd = &cli.Command{
	Name:    "solve",
	Usage:   "Compare every allocation method on one problem",
	Aliases: []string{"s"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "read the problem from a JSON file",
			EnvVars: []string{"TRANSPORT_FILE"},
		},
		&cli.StringFlag{
			Name:    "costs",
			Usage:   "cost grid, rows separated by ';' and cells by ','",
			EnvVars: []string{"TRANSPORT_COSTS"},
		},
		&cli.StringFlag{
			Name:    "supply",
			Usage:   "comma-separated supply per supplier",
			EnvVars: []string{"TRANSPORT_SUPPLY"},
		},
		&cli.StringFlag{
			Name:    "demand",
			Usage:   "comma-separated demand per consumer",
			EnvVars: []string{"TRANSPORT_DEMAND"},
		},
		&cli.StringSliceFlag{
			Name:    "method",
			Usage:   "method id to run, repeatable (default: all)",
			EnvVars: []string{"TRANSPORT_METHODS"},
		},
		&cli.StringFlag{
			Name:    "detail",
			Value:   allocate.NorthwestCornerID,
			Usage:   "method id to print in detail, empty for none",
			EnvVars: []string{"TRANSPORT_DETAIL"},
		},
		&cli.Float64Flag{
			Name:    "epsilon",
			Value:   allocate.DefaultEpsilon,
			Usage:   "remaining amounts at or below this count as exhausted",
			EnvVars: []string{"TRANSPORT_EPSILON"},
		},
		&cli.Float64Flag{
			Name:    "tolerance",
			Value:   problem.DefaultTolerance,
			Usage:   "allowed difference between total supply and demand",
			EnvVars: []string{"TRANSPORT_TOLERANCE"},
		},
		&cli.BoolFlag{
			Name:    "parallel",
			Usage:   "run the methods concurrently",
			EnvVars: []string{"TRANSPORT_PARALLEL"},
		},
		&cli.IntFlag{
			Name:    "workers",
			Usage:   "cap on concurrent methods with --parallel, 0 for one per method",
			EnvVars: []string{"TRANSPORT_WORKERS"},
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log debug records to stderr",
			EnvVars: []string{"TRANSPORT_VERBOSE"},
		},
	},
	Action: func(ctx *cli.Context) error {
		var (
			logger  = newLogger(ctx.App.ErrWriter, ctx.Bool("verbose"))
			popts   = problem.Options{Tolerance: ctx.Float64("tolerance")}
			workers = ctx.Int("workers")
		)
		if workers < 0 {
			return fmt.Errorf("%w: %d", errInvalidWorkers, workers)
		}

		p, err := readProblem(ctx, popts)
		if err != nil {
			return err
		}

		opts := compare.DefaultOptions()
		opts.Methods = ctx.StringSlice("method")
		opts.Parallel = ctx.Bool("parallel")
		opts.Workers = workers
		opts.Allocate = allocate.Options{Epsilon: ctx.Float64("epsilon")}
		opts.Problem = popts
		opts.Logger = logger

		return doSolve(ctx, p, opts, logger)
	},
}

// readProblem takes the problem from --file or from the inline flags.
func readProblem(ctx *cli.Context, opts problem.Options) (*problem.Problem, error) {
	var (
		file   = ctx.String("file")
		costs  = ctx.String("costs")
		supply = ctx.String("supply")
		demand = ctx.String("demand")
		inline = costs != "" || supply != "" || demand != ""
	)
	switch {
	case file != "" && inline:
		return nil, errMixedInput
	case file != "":
		return problem.LoadFile(file, opts)
	case costs == "" || supply == "" || demand == "":
		return nil, errNoInput
	}

	return problem.ParseWithOptions(
		problem.SplitGrid(costs, rowSep, cellSep),
		problem.SplitList(supply, cellSep),
		problem.SplitList(demand, cellSep),
		opts,
	)
}

// doSolve runs the comparison and prints the problem, the summary and the
// detail of one method. When --detail keeps its default and that method was
// not selected, the first selected method is detailed instead.
func doSolve(ctx *cli.Context, p *problem.Problem, opts compare.Options, logger *slog.Logger) error {
	cmp, err := compare.Compare(ctx.Context, p, opts)
	if err != nil {
		return err
	}
	best, ok := cmp.Best()
	if !ok {
		return errAllFailed
	}
	logger.Info("best method", "method", best.Method.ID, "cost", best.Cost)

	w := ctx.App.Writer
	if err = report.WriteProblem(w, p); err != nil {
		return err
	}
	if err = section(w); err != nil {
		return err
	}
	if err = report.WriteSummary(w, cmp); err != nil {
		return err
	}

	detail := ctx.String("detail")
	if detail == "" {
		return nil
	}
	r, ok := cmp.ByID(detail)
	switch {
	case !ok && ctx.IsSet("detail"):
		return fmt.Errorf("%w: %q", errUnknownDetail, detail)
	case !ok:
		r = cmp.Results[0]
	}
	if err = section(w); err != nil {
		return err
	}
	if err = report.WriteDetail(w, p, r); err != nil {
		return err
	}
	if err = section(w); err != nil {
		return err
	}

	return report.WriteContribution(w, p, r)
}

func section(w io.Writer) error {
	_, err := fmt.Fprintln(w)
	return err
}
