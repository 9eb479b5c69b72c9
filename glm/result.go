package glm

import (
	"github.com/prfkit/prfkit/pkg/errors"
)

// FitResult holds the batch-level outputs of a solve: one coefficient pair
// and one residual sum of squares per series, aligned with the column order
// of the batch that produced them. Both slices are freshly allocated per
// call and owned by the caller.
type FitResult struct {
	// Coeffs is the V x 2 coefficient matrix in row-major order:
	// [slope1(0), slope2(0), slope1(1), slope2(1), ...].
	Coeffs []float32

	// Residuals holds the residual sum of squares per series.
	Residuals []float32
}

// NumSeries returns the number of series the result covers.
func (r *FitResult) NumSeries() int { return len(r.Residuals) }

// Slopes returns the fitted coefficients (slope1, slope2) for series v.
func (r *FitResult) Slopes(v int) (float32, float32) {
	return r.Coeffs[2*v], r.Coeffs[2*v+1]
}

// Residual returns the residual sum of squares for series v.
func (r *FitResult) Residual(v int) float32 { return r.Residuals[v] }

// PredictedSeries reconstructs the fitted time course of series v,
// x1(t)*slope1 + x2(t)*slope2 for every time point of the design. This is
// the quantity the pipeline persists for visual inspection of a fit.
func (r *FitResult) PredictedSeries(d *DesignMatrix, v int) []float32 {
	slope1, slope2 := r.Slopes(v)
	pred := make([]float32, d.rows)
	for t := 0; t < d.rows; t++ {
		pred[t] = d.data[2*t]*slope1 + d.data[2*t+1]*slope2
	}
	return pred
}

// RSquared returns the coefficient of determination for series v, computed
// from the stored residual and the total sum of squares of the observed
// series about its mean. batch must be the batch the result was fitted on.
// A constant series has zero total variance and yields a ValueError.
func (r *FitResult) RSquared(batch *SeriesBatch, v int) (float32, error) {
	if batch == nil {
		return 0, errors.NewValueError("FitResult.RSquared", "batch must not be nil")
	}
	if batch.Cols() != r.NumSeries() {
		return 0, errors.NewDimensionError("FitResult.RSquared", r.NumSeries(), batch.Cols(), 1)
	}
	if v < 0 || v >= r.NumSeries() {
		return 0, errors.NewValueError("FitResult.RSquared", "series index out of range")
	}

	var mean float32
	for t := 0; t < batch.rows; t++ {
		mean += batch.data[t*batch.cols+v]
	}
	mean /= float32(batch.rows)

	var tss float32
	for t := 0; t < batch.rows; t++ {
		diff := batch.data[t*batch.cols+v] - mean
		tss += diff * diff
	}
	if tss == 0 {
		return 0, errors.NewValueError("FitResult.RSquared", "total sum of squares is zero")
	}

	return 1 - r.Residuals[v]/tss, nil
}
