// Package prfkit provides the batch least-squares scoring kernel used in
// population receptive field (pRF) model fitting.
//
// Given a fixed pair of candidate predictor time courses (the design matrix)
// and a large batch of observed voxel time series, prfkit computes the
// closed-form ordinary-least-squares fit of every series against the two
// predictors and returns the fitted coefficients together with the residual
// sum of squares per series. The surrounding pipeline, which generates
// candidate models and screens voxels, uses these residuals to rank designs.
//
// # Features
//
// - Closed-form 2x2 normal-equations solve, no iterative optimization
// - Design statistics computed once and shared across the whole batch
// - float32 arithmetic end to end, matching scanner data precision
// - Optional in-batch parallel fan-out with bit-identical results
// - Structured errors and logging for pipeline integration
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/prfkit/prfkit/glm"
//	)
//
//	func main() {
//	    design, err := glm.NewDesignMatrixFromColumns(
//	        []float32{1, 0, 1},
//	        []float32{0, 1, 1},
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    batch, err := glm.NewSeriesBatch(3, 1, []float32{1, 1, 2})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fit, err := glm.FitTwoPredictor(design, batch)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    s1, s2 := fit.Slopes(0)
//	    fmt.Println(s1, s2, fit.Residual(0))
//	}
//
// # Packages
//
// - glm: the fitting kernel (design statistics, per-series solver)
// - metrics: residual diagnostics over fitted batches
// - pkg/errors: structured error and warning types
// - pkg/log: structured logging with stack trace extraction
// - core/parallel: chunked fan-out used for large batches
package prfkit
