// Package compare runs several allocators on one problem and collects their
// plans and total costs side by side.
//
// Compare validates the problem once, then gives every selected method its
// own copies of supply and demand. A failing method records its error in its
// Result and never stops the others; only validation failures and context
// cancellation abort the whole comparison.
//
// Methods run sequentially by default. With Options.Parallel they run on an
// errgroup, optionally capped by Options.Workers. Results are always returned
// in the order the methods were selected.
package compare
