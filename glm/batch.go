package glm

import (
	"github.com/prfkit/prfkit/pkg/errors"
)

// SeriesBatch is an immutable T x V matrix of observed voxel time series in
// float32, row-major (a row holds one time point across all series). The
// constructor copies its input.
type SeriesBatch struct {
	rows int
	cols int
	data []float32
}

// NewSeriesBatch creates a series batch from row-major data. rows and cols
// must be at least 1 and data must hold exactly rows*cols values.
func NewSeriesBatch(rows, cols int, data []float32) (*SeriesBatch, error) {
	if rows < 1 {
		return nil, errors.NewValueError("NewSeriesBatch", "time dimension must be at least 1")
	}
	if cols < 1 {
		return nil, errors.NewValueError("NewSeriesBatch", "series count must be at least 1")
	}
	if len(data) != rows*cols {
		return nil, errors.NewDimensionError("NewSeriesBatch", rows*cols, len(data), 0)
	}

	b := &SeriesBatch{
		rows: rows,
		cols: cols,
		data: make([]float32, len(data)),
	}
	copy(b.data, data)
	return b, nil
}

// Rows returns the time dimension T.
func (b *SeriesBatch) Rows() int { return b.rows }

// Cols returns the number of series V.
func (b *SeriesBatch) Cols() int { return b.cols }

// At returns the value of series v at time point t.
func (b *SeriesBatch) At(t, v int) float32 { return b.data[t*b.cols+v] }

// Column returns a copy of series v over all time points.
func (b *SeriesBatch) Column(v int) []float32 {
	col := make([]float32, b.rows)
	for t := 0; t < b.rows; t++ {
		col[t] = b.data[t*b.cols+v]
	}
	return col
}

// Slice returns a new batch holding series [from, to). Callers chunking a
// large voxel set across workers use it to carve sub-batches; fitting the
// slices and concatenating the results equals fitting the whole batch.
func (b *SeriesBatch) Slice(from, to int) (*SeriesBatch, error) {
	if from < 0 || to > b.cols || from >= to {
		return nil, errors.NewValueError("SeriesBatch.Slice", "series range out of bounds")
	}

	cols := to - from
	data := make([]float32, b.rows*cols)
	for t := 0; t < b.rows; t++ {
		copy(data[t*cols:(t+1)*cols], b.data[t*b.cols+from:t*b.cols+to])
	}
	return &SeriesBatch{rows: b.rows, cols: cols, data: data}, nil
}
