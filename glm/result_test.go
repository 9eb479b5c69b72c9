package glm

import (
	"math"
	"testing"
)

func exactFit(t *testing.T) (*DesignMatrix, *SeriesBatch, *FitResult) {
	t.Helper()

	design, err := NewDesignMatrix(3, []float32{
		1, 0,
		0, 1,
		1, 1,
	})
	if err != nil {
		t.Fatalf("failed to build design: %v", err)
	}
	batch, err := NewSeriesBatch(3, 1, []float32{1, 1, 2})
	if err != nil {
		t.Fatalf("failed to build batch: %v", err)
	}
	fit, err := FitTwoPredictor(design, batch)
	if err != nil {
		t.Fatalf("FitTwoPredictor failed: %v", err)
	}
	return design, batch, fit
}

func TestFitResult_PredictedSeries(t *testing.T) {
	design, batch, fit := exactFit(t)

	pred := fit.PredictedSeries(design, 0)
	if len(pred) != 3 {
		t.Fatalf("predicted series length = %d, want 3", len(pred))
	}
	for tp := 0; tp < 3; tp++ {
		if pred[tp] != batch.At(tp, 0) {
			t.Errorf("time point %d: predicted %v, observed %v (exact fit)", tp, pred[tp], batch.At(tp, 0))
		}
	}
}

func TestFitResult_RSquared(t *testing.T) {
	_, batch, fit := exactFit(t)

	r2, err := fit.RSquared(batch, 0)
	if err != nil {
		t.Fatalf("RSquared failed: %v", err)
	}
	if math.Abs(float64(r2)-1) > 1e-6 {
		t.Errorf("RSquared = %v, want 1 for an exact fit", r2)
	}
}

func TestFitResult_RSquared_ConstantSeries(t *testing.T) {
	design, err := NewDesignMatrixFromColumns(
		[]float32{1, -1, 0},
		[]float32{0, 1, -1},
	)
	if err != nil {
		t.Fatalf("failed to build design: %v", err)
	}
	batch, err := NewSeriesBatch(3, 1, []float32{2, 2, 2})
	if err != nil {
		t.Fatalf("failed to build batch: %v", err)
	}
	fit, err := FitTwoPredictor(design, batch)
	if err != nil {
		t.Fatalf("FitTwoPredictor failed: %v", err)
	}

	if _, err := fit.RSquared(batch, 0); err == nil {
		t.Error("RSquared should fail for a zero-variance series")
	}
}

func TestFitResult_RSquared_BadArgs(t *testing.T) {
	_, batch, fit := exactFit(t)

	if _, err := fit.RSquared(nil, 0); err == nil {
		t.Error("nil batch should be rejected")
	}
	if _, err := fit.RSquared(batch, 5); err == nil {
		t.Error("out-of-range series index should be rejected")
	}

	other, err := NewSeriesBatch(3, 2, make([]float32, 6))
	if err != nil {
		t.Fatalf("failed to build batch: %v", err)
	}
	if _, err := fit.RSquared(other, 0); err == nil {
		t.Error("batch with a different series count should be rejected")
	}
}

func TestFitResult_Accessors(t *testing.T) {
	_, _, fit := exactFit(t)

	if fit.NumSeries() != 1 {
		t.Errorf("NumSeries = %d, want 1", fit.NumSeries())
	}
	s1, s2 := fit.Slopes(0)
	if s1 != fit.Coeffs[0] || s2 != fit.Coeffs[1] {
		t.Error("Slopes must read from the coefficient matrix")
	}
	if fit.Residual(0) != fit.Residuals[0] {
		t.Error("Residual must read from the residual vector")
	}
}
