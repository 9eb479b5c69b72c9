// Package metrics provides residual diagnostics for fitted voxel time
// series. All functions accumulate in float32 with forward iteration,
// matching the fitting kernel, so a metric recomputed here agrees bit for
// bit with the solver's own residual bookkeeping.
package metrics

import (
	"github.com/prfkit/prfkit/pkg/errors"
)

// RSS computes the residual sum of squares between an observed and a fitted
// time course.
func RSS(yTrue, yPred []float32) (float32, error) {
	if err := checkPair("RSS", yTrue, yPred); err != nil {
		return 0, err
	}

	var sum float32
	for i := range yTrue {
		diff := yTrue[i] - yPred[i]
		sum += diff * diff
	}
	return sum, nil
}

// MSE computes the mean squared error between an observed and a fitted time
// course.
func MSE(yTrue, yPred []float32) (float32, error) {
	rss, err := RSS(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return rss / float32(len(yTrue)), nil
}

// R2Score computes the coefficient of determination, 1 - RSS/TSS, with the
// total sum of squares taken about the sample mean of yTrue. A constant
// observed series has zero total variance and yields an error.
func R2Score(yTrue, yPred []float32) (float32, error) {
	rss, err := RSS(yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var mean float32
	for _, y := range yTrue {
		mean += y
	}
	mean /= float32(len(yTrue))

	var tss float32
	for _, y := range yTrue {
		diff := y - mean
		tss += diff * diff
	}
	if tss == 0 {
		return 0, errors.NewValueError("R2Score", "total sum of squares is zero")
	}

	return 1 - rss/tss, nil
}

func checkPair(op string, yTrue, yPred []float32) error {
	if len(yTrue) == 0 {
		return errors.NewValueError(op, "empty series")
	}
	if len(yPred) != len(yTrue) {
		return errors.NewDimensionError(op, len(yTrue), len(yPred), 0)
	}
	return nil
}
