// Package glm implements the closed-form two-predictor least-squares fit at
// the heart of pRF model scoring.
//
// A fixed design matrix holds two candidate predictor time courses sampled
// at T time points; a series batch holds V observed voxel time courses over
// the same T points. Fitting proceeds in two dependency-ordered stages:
//
//  1. Design statistics: one pass over the design computes the three sums
//     shared by every series (sum of squares of each predictor and their
//     cross product).
//  2. Series solve: for each series, its covariance with each predictor is
//     accumulated, the 2x2 normal-equations system is solved by Cramer's
//     rule, and a second pass computes the residual sum of squares against
//     the fitted combination.
//
// Both predictors and series are assumed mean-centered by the caller; no
// intercept is estimated. All arithmetic is float32 in natural forward order
// over the time axis, so results are reproducible bit for bit. The solve is
// a pure function of its inputs: no state survives a call, and series are
// independent of one another, which is what allows the optional in-batch
// fan-out to produce identical results to the sequential path.
//
// Degenerate designs (linearly dependent predictors) are not guarded by
// default: the determinant is zero and the division yields non-finite
// coefficients and residuals for every series, which propagate as data for
// the caller to inspect. WithStrictDegeneracyCheck turns this into an error
// at solver construction instead.
package glm
