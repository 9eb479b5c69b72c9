package glm

import (
	"log/slog"
	"runtime"
)

// Option configures a Solver.
type Option func(*solverOptions)

type solverOptions struct {
	strict            bool
	parallelThreshold int
	workerCap         int
	logger            *slog.Logger
}

func defaultOptions() solverOptions {
	return solverOptions{
		parallelThreshold: defaultParallelThreshold,
		workerCap:         runtime.NumCPU(),
	}
}

// defaultParallelThreshold is the batch width above which Solve fans out
// across workers. Below it the fan-out overhead outweighs the work.
const defaultParallelThreshold = 4096

// WithStrictDegeneracyCheck makes NewSolver fail with a
// DegenerateDesignError when the design determinant is zero, instead of the
// default policy of letting the division propagate non-finite values.
func WithStrictDegeneracyCheck(strict bool) Option {
	return func(o *solverOptions) {
		o.strict = strict
	}
}

// WithParallelThreshold sets the series count above which a solve is spread
// across workers. Zero or negative disables the fan-out entirely. Results
// are identical either way; only wall time changes.
func WithParallelThreshold(n int) Option {
	return func(o *solverOptions) {
		o.parallelThreshold = n
	}
}

// WithWorkerCap bounds the number of goroutines a parallel solve may use.
// Zero or negative means one per CPU core.
func WithWorkerCap(n int) Option {
	return func(o *solverOptions) {
		o.workerCap = n
	}
}

// WithLogger attaches a structured logger; each batch solve emits one debug
// record with its shape, duration and degeneracy flag. Nil (the default)
// disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(o *solverOptions) {
		o.logger = logger
	}
}
