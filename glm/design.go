package glm

import (
	"github.com/prfkit/prfkit/pkg/errors"
)

// DesignMatrix is an immutable T x 2 matrix of predictor time courses in
// float32. Storage is row-major: x1(t) and x2(t) are adjacent for each time
// point. Constructors copy their input, so callers may reuse their buffers.
type DesignMatrix struct {
	rows int
	data []float32
}

// NewDesignMatrix creates a design matrix from row-major data
// [x1(0), x2(0), x1(1), x2(1), ...]. rows must be at least 1 and data must
// hold exactly 2*rows values.
func NewDesignMatrix(rows int, data []float32) (*DesignMatrix, error) {
	if rows < 1 {
		return nil, errors.NewValueError("NewDesignMatrix", "time dimension must be at least 1")
	}
	if len(data) != rows*2 {
		return nil, errors.NewDimensionError("NewDesignMatrix", rows*2, len(data), 0)
	}

	d := &DesignMatrix{
		rows: rows,
		data: make([]float32, len(data)),
	}
	copy(d.data, data)
	return d, nil
}

// NewDesignMatrixFromColumns creates a design matrix from the two predictor
// columns. Both columns must be non-empty and of equal length.
func NewDesignMatrixFromColumns(x1, x2 []float32) (*DesignMatrix, error) {
	if len(x1) == 0 {
		return nil, errors.NewValueError("NewDesignMatrixFromColumns", "predictor columns must not be empty")
	}
	if len(x1) != len(x2) {
		return nil, errors.NewDimensionError("NewDesignMatrixFromColumns", len(x1), len(x2), 0)
	}

	d := &DesignMatrix{
		rows: len(x1),
		data: make([]float32, 2*len(x1)),
	}
	for t := range x1 {
		d.data[2*t] = x1[t]
		d.data[2*t+1] = x2[t]
	}
	return d, nil
}

// Rows returns the time dimension T.
func (d *DesignMatrix) Rows() int { return d.rows }

// X1 returns the first predictor's value at time point t.
func (d *DesignMatrix) X1(t int) float32 { return d.data[2*t] }

// X2 returns the second predictor's value at time point t.
func (d *DesignMatrix) X2(t int) float32 { return d.data[2*t+1] }

// DesignStats holds the three design sums shared by every series of a batch:
// the sum of squares of each predictor and their cross-product sum. They are
// the entries of the 2x2 normal-equations matrix.
type DesignStats struct {
	VarX1   float32
	VarX2   float32
	CovX1X2 float32
}

// ComputeDesignStats accumulates the design sums in a single forward pass
// over the time axis, in float32, matching the precision and order of the
// per-series solve.
func ComputeDesignStats(d *DesignMatrix) DesignStats {
	var s DesignStats
	for t := 0; t < d.rows; t++ {
		x1 := d.data[2*t]
		x2 := d.data[2*t+1]
		s.VarX1 += x1 * x1
		s.VarX2 += x2 * x2
		s.CovX1X2 += x1 * x2
	}
	return s
}

// Det returns the determinant of the normal-equations matrix,
// varX1*varX2 - covX1X2^2.
func (s DesignStats) Det() float32 {
	return s.VarX1*s.VarX2 - s.CovX1X2*s.CovX1X2
}

// Degenerate reports whether the two predictors are linearly dependent, in
// which case the closed-form solve divides by zero.
func (s DesignStats) Degenerate() bool {
	return s.Det() == 0
}
