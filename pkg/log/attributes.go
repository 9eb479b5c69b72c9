// Standard attribute keys for fit logging. Using the same keys everywhere
// keeps batch-level log lines filterable once many chunks of a voxel set are
// being scored by separate workers.

package log

// Operation context.
const (
	// ComponentKey identifies the package performing the operation.
	// Examples: "glm", "metrics"
	ComponentKey = "prf.component"

	// OperationKey names the operation being performed.
	// Standard values: "fit", "stats", "score"
	OperationKey = "prf.operation"
)

// Data shape.
const (
	// TimepointsKey is the shared time dimension T of design and batch.
	TimepointsKey = "data.timepoints"

	// VoxelsKey is the number of series (voxels) in the batch.
	VoxelsKey = "data.voxels"

	// PredictorsKey is the number of design columns. Always 2 for this
	// kernel, logged so mixed pipelines can tell solvers apart.
	PredictorsKey = "data.predictors"
)

// Fit outcome.
const (
	// DegenerateKey flags a zero normal-equations determinant.
	DegenerateKey = "fit.degenerate"

	// DeterminantKey records the normal-equations determinant.
	DeterminantKey = "fit.determinant"

	// NonFiniteKey counts voxels whose outputs came back NaN or Inf.
	NonFiniteKey = "fit.nonfinite_voxels"

	// DurationMsKey records how long a batch solve took in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// WorkersKey records the fan-out width used for the batch.
	WorkersKey = "perf.workers"
)

// Standard attribute values.
const (
	OperationFit   = "fit"
	OperationStats = "stats"
	OperationScore = "score"
)
