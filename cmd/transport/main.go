// Command transport computes initial feasible solutions of a transportation
// problem with every available heuristic and prints them side by side.
//
// Usage:
//
//	transport solve --costs "4,6,8;5,3,9" --supply "20,30" --demand "10,25,15"
//	transport solve --file problem.json --method vogel --method mincost --detail vogel
//	transport methods
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"
)

var version = "--- set from makefile ---"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newApp(os.Stdout, os.Stderr).RunContext(ctx, os.Args); err != nil {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
		logger.Error("application error", "error", err)
		os.Exit(1)
	}
}

// newApp wires the command tree to the given output streams.
func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "transport",
		Usage:     "Initial feasible solutions for the transportation problem",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			solveCmd,
			methodsCmd,
		},
	}
}

// newLogger builds the command logger; verbose lowers the level to Debug.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
