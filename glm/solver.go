package glm

import (
	"time"

	"github.com/prfkit/prfkit/core/parallel"
	"github.com/prfkit/prfkit/pkg/errors"
	"github.com/prfkit/prfkit/pkg/log"
)

// Solver fits series batches against one fixed design matrix. The design
// statistics are computed once at construction and shared by every solve, so
// a solver should be reused across all batches carved from the same voxel
// set. Solve holds no per-call state and is safe for concurrent use.
type Solver struct {
	design *DesignMatrix
	stats  DesignStats
	det    float32
	opts   solverOptions
}

// NewSolver precomputes the design statistics for the given design matrix.
// In strict mode a degenerate design (zero determinant) is rejected here,
// before any series work; in the default mode it is allowed through with a
// DegenerateDesignWarning, and every fitted series will carry non-finite
// values.
func NewSolver(design *DesignMatrix, opts ...Option) (*Solver, error) {
	if design == nil {
		return nil, errors.NewValueError("NewSolver", "design matrix must not be nil")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	stats := ComputeDesignStats(design)
	s := &Solver{
		design: design,
		stats:  stats,
		det:    stats.Det(),
		opts:   o,
	}

	if stats.Degenerate() {
		if o.strict {
			return nil, errors.NewDegenerateDesignError("NewSolver", stats.VarX1, stats.VarX2, stats.CovX1X2)
		}
		errors.Warn(errors.NewDegenerateDesignWarning(stats.VarX1, stats.VarX2, stats.CovX1X2))
	}

	return s, nil
}

// Stats returns the precomputed design statistics.
func (s *Solver) Stats() DesignStats { return s.stats }

// Solve fits every series of the batch against the solver's design and
// returns freshly allocated coefficients and residuals aligned with the
// batch's column order. The batch must share the design's time dimension;
// a mismatch is rejected before any computation.
func (s *Solver) Solve(batch *SeriesBatch) (*FitResult, error) {
	if batch == nil {
		return nil, errors.NewValueError("Solver.Solve", "series batch must not be nil")
	}
	if batch.rows != s.design.rows {
		return nil, errors.NewDimensionError("Solver.Solve", s.design.rows, batch.rows, 0)
	}

	start := time.Now()

	result := &FitResult{
		Coeffs:    make([]float32, 2*batch.cols),
		Residuals: make([]float32, batch.cols),
	}

	solveRange := func(from, to int) {
		for v := from; v < to; v++ {
			s.solveSeries(batch, v, result)
		}
	}

	threshold := s.opts.parallelThreshold
	if threshold <= 0 {
		solveRange(0, batch.cols)
	} else {
		parallel.ParallelizeWithThreshold(batch.cols, threshold, s.opts.workerCap, solveRange)
	}

	if s.opts.logger != nil {
		s.opts.logger.Debug("batch solved",
			log.ComponentKey, "glm",
			log.OperationKey, log.OperationFit,
			log.TimepointsKey, batch.rows,
			log.VoxelsKey, batch.cols,
			log.PredictorsKey, 2,
			log.DeterminantKey, s.det,
			log.DegenerateKey, s.stats.Degenerate(),
			log.DurationMsKey, time.Since(start).Milliseconds(),
		)
	}

	return result, nil
}

// solveSeries fits a single series. Two explicit passes over the time axis:
// the covariance pass and the residual pass. They must stay separate so the
// float32 accumulation order, and therefore every bit of the output, is
// fixed.
func (s *Solver) solveSeries(batch *SeriesBatch, v int, out *FitResult) {
	design := s.design.data
	data := batch.data
	cols := batch.cols

	var covX1y, covX2y float32
	for t := 0; t < batch.rows; t++ {
		y := data[t*cols+v]
		covX1y += y * design[2*t]
		covX2y += y * design[2*t+1]
	}

	// Cramer's rule on the 2x2 normal equations. A zero determinant divides
	// through to Inf/NaN, which is the documented passthrough policy.
	slope1 := (s.stats.VarX2*covX1y - s.stats.CovX1X2*covX2y) / s.det
	slope2 := (s.stats.VarX1*covX2y - s.stats.CovX1X2*covX1y) / s.det

	var res float32
	for t := 0; t < batch.rows; t++ {
		predicted := design[2*t]*slope1 + design[2*t+1]*slope2
		diff := data[t*cols+v] - predicted
		res += diff * diff
	}

	out.Coeffs[2*v] = slope1
	out.Coeffs[2*v+1] = slope2
	out.Residuals[v] = res
}

// FitTwoPredictor fits every series of the batch against the design in one
// call: design statistics are computed once, then each series is solved in
// closed form. It is shorthand for NewSolver followed by Solve; callers
// fitting several batches against one design should keep the Solver instead.
func FitTwoPredictor(design *DesignMatrix, batch *SeriesBatch, opts ...Option) (*FitResult, error) {
	solver, err := NewSolver(design, opts...)
	if err != nil {
		return nil, err
	}
	return solver.Solve(batch)
}
