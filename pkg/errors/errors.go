// Package errors provides structured error handling for the prfkit fitting
// kernel. Error types carry the operation and shape context a pipeline needs
// to diagnose contract violations, and every constructor attaches a stack
// trace via cockroachdb/errors.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("prfkit-Warning: %v\n", w)
	}
	// zerolog sink, set lazily to avoid an import cycle with pkg/log.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the warning handler for the whole library.
// Use it to silence or redirect warnings such as DegenerateDesignWarning.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc routes warnings to a zerolog logger.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning. A configured zerolog sink takes precedence over the
// plain handler.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// DegenerateDesignWarning is emitted when the two predictor columns of a
// design matrix are linearly dependent and the solver is running in its
// default passthrough mode. Every series fitted against such a design
// produces non-finite coefficients and residuals.
type DegenerateDesignWarning struct {
	VarX1   float32
	VarX2   float32
	CovX1X2 float32
}

func (w *DegenerateDesignWarning) Error() string {
	return fmt.Sprintf("design matrix is degenerate (varX1=%g, varX2=%g, covX1X2=%g): fitted values will be non-finite", w.VarX1, w.VarX2, w.CovX1X2)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *DegenerateDesignWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Float32("var_x1", w.VarX1).
		Float32("var_x2", w.VarX2).
		Float32("cov_x1x2", w.CovX1X2).
		Str("type", "DegenerateDesignWarning")
}

// NewDegenerateDesignWarning creates a new DegenerateDesignWarning.
func NewDegenerateDesignWarning(varX1, varX2, covX1X2 float32) *DegenerateDesignWarning {
	return &DegenerateDesignWarning{VarX1: varX1, VarX2: varX2, CovX1X2: covX1X2}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// DimensionError reports a shape mismatch between inputs, such as a series
// batch whose time dimension differs from the design matrix.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows (time points), 1 for columns (series)
}

func (e *DimensionError) Error() string {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("prfkit: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValueError reports an argument whose value violates the contract of an
// operation, such as a zero time dimension.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("prfkit: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ValidationError reports a configuration parameter that failed validation.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("prfkit: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a ValidationError with a stack trace.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// DegenerateDesignError reports a design matrix whose normal-equations
// determinant is exactly zero. It is returned only in strict mode; the
// default policy lets the division propagate non-finite values instead.
type DegenerateDesignError struct {
	Op      string
	VarX1   float32
	VarX2   float32
	CovX1X2 float32
}

func (e *DegenerateDesignError) Error() string {
	return fmt.Sprintf("prfkit: %s: degenerate design matrix, predictors are linearly dependent (varX1=%g, varX2=%g, covX1X2=%g)", e.Op, e.VarX1, e.VarX2, e.CovX1X2)
}

func (e *DegenerateDesignError) Unwrap() error {
	return ErrDegenerateDesign
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DegenerateDesignError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Float32("var_x1", e.VarX1).
		Float32("var_x2", e.VarX2).
		Float32("cov_x1x2", e.CovX1X2).
		Str("type", "DegenerateDesignError")
}

// NewDegenerateDesignError creates a DegenerateDesignError with a stack trace.
func NewDegenerateDesignError(op string, varX1, varX2, covX1X2 float32) error {
	err := &DegenerateDesignError{Op: op, VarX1: varX1, VarX2: varX2, CovX1X2: covX1X2}
	return errors.WithStack(err)
}

// NumericalInstabilityError reports NaN or Inf values detected in a slice,
// typically the output of a fit against an ill-conditioned design.
type NumericalInstabilityError struct {
	Operation string
	Values    []float32 // offending values, truncated for display
	Index     int       // index of the first non-finite value
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("prfkit: non-finite values detected in %s starting at index %d. Values: [%s]",
		e.Operation, e.Index, valStr)
}

// NewNumericalInstabilityError creates a NumericalInstabilityError with a
// stack trace.
func NewNumericalInstabilityError(operation string, values []float32, index int) error {
	err := &NumericalInstabilityError{
		Operation: operation,
		Values:    values,
		Index:     index,
	}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to an error.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Sentinel errors
//
// ===========================================================================

var (
	// ErrEmptyData is returned when an input matrix or vector has no elements.
	ErrEmptyData = New("empty data")

	// ErrDegenerateDesign is matched by DegenerateDesignError via errors.Is.
	ErrDegenerateDesign = New("degenerate design matrix")
)
