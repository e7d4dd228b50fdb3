// Package log defines standard attribute keys for discriminant analysis logging.
//
// Keys follow a hierarchical naming convention (e.g. "model.name",
// "data.samples") so records can be filtered consistently.

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of model.
	// Examples: "MultipleDiscriminantAnalysis", "StandardScaler"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "transform", "fit_transform"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of model lifecycle.
	PhaseKey = "ml.phase"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	FeaturesKey = "data.features"

	// ClassesKey indicates the number of distinct class labels.
	ClassesKey = "data.classes"
)

// Discriminant analysis
const (
	// ComponentsKey records the number of retained discriminant directions.
	ComponentsKey = "mda.components"

	// SolverKey records how within⁻¹·between was obtained: "lu" or "lstsq".
	SolverKey = "mda.solver"

	// LeadingEigenvalueKey records the largest retained eigenvalue.
	LeadingEigenvalueKey = "mda.leading_eigenvalue"

	// RankKey records the numerical rank used by the least-squares fallback.
	RankKey = "mda.rank"
)

// Performance Metrics
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error and Warning Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// SuggestionKey provides helpful suggestions for resolving issues.
	SuggestionKey = "error.suggestion"
)

// Standard attribute values.
const (
	OperationFit = "fit"

	PhaseTraining = "training"

	ErrorSingularMatrix = "SINGULAR_MATRIX"
)
