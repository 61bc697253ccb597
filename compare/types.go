package compare

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/transport/allocate"
	"github.com/katalvlaran/transport/problem"
)

// Options configures Compare.
//   - Methods:  method ids to run, in order; empty means all of allocate.Methods.
//   - Parallel: run methods concurrently.
//   - Workers:  concurrency cap when Parallel is set; <=0 means one per method.
//   - Allocate: options passed to every allocator.
//   - Problem:  options for the up-front validation.
//   - Logger:   receives debug and warn records; nil discards them.
type Options struct {
	Methods  []string
	Parallel bool
	Workers  int
	Allocate allocate.Options
	Problem  problem.Options
	Logger   *slog.Logger
}

// DefaultOptions runs every method sequentially with default settings.
func DefaultOptions() Options {
	return Options{
		Allocate: allocate.DefaultOptions(),
		Problem:  problem.DefaultOptions(),
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Result is the outcome of one method. Err is non-nil when the method failed,
// in which case Plan is nil and Cost is 0.
type Result struct {
	Method allocate.Method
	Plan   allocate.Plan
	Cost   float64
	Err    error
}

// Routes is the number of cells the plan uses.
func (r Result) Routes() int { return len(r.Plan) }

// OK reports whether the method produced a plan.
func (r Result) OK() bool { return r.Err == nil }

// Comparison holds one Result per selected method, in selection order.
type Comparison struct {
	Results []Result
}

// ByID returns the result of the method with the given id.
func (c *Comparison) ByID(id string) (Result, bool) {
	for _, r := range c.Results {
		if r.Method.ID == id {
			return r, true
		}
	}

	return Result{}, false
}

// Best returns the successful result with the lowest cost; the earliest one
// wins ties. ok is false when every method failed.
func (c *Comparison) Best() (best Result, ok bool) {
	for _, r := range c.Results {
		if !r.OK() {
			continue
		}
		if !ok || r.Cost < best.Cost {
			best, ok = r, true
		}
	}

	return best, ok
}
