// Package log defines standard attribute keys for model-selection operations.
//
// Using these keys consistently enables filtering and analysis of search
// logs. Keys follow a hierarchical naming convention (e.g. "search.folds",
// "data.samples").
package log

// Search and operation context.
const (
	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "split", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "model_selection", "metrics", "timing"
	ComponentKey = "ml.component"

	// CandidatesKey indicates the number of parameter candidates in a grid.
	CandidatesKey = "search.candidates"

	// FoldsKey indicates the cross-validation fold count.
	FoldsKey = "search.folds"

	// WorkersKey indicates the resolved degree of parallelism.
	WorkersKey = "search.workers"

	// BestScoreKey records the winning candidate's mean score.
	BestScoreKey = "search.best_score"

	// BestParamsKey records the winning candidate's parameters.
	BestParamsKey = "search.best_params"

	// SeedKey records the random state used for fold shuffling.
	SeedKey = "search.seed"
)

// Data shape and characteristics.
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	FeaturesKey = "data.features"

	// ClassesKey indicates the number of distinct class labels.
	ClassesKey = "data.classes"
)

// Performance metrics.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// DurationSecondsKey records the execution time in seconds for longer
	// operations such as a full grid search.
	DurationSecondsKey = "perf.duration_seconds"
)
