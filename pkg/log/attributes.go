// Package log defines standard attribute keys for experiment-run logging.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in ModelGrid. Using these standard keys enables better
// log analysis, monitoring, and debugging of experiment grids.
//
// The keys follow a hierarchical naming convention (e.g., "experiment.name",
// "data.samples") to enable structured log analysis and filtering.

package log

// Experiment and Operation Context
// These attributes identify the grid, experiment, and operation being performed.
const (
	// ExperimentKey identifies the named experiment within a grid.
	// Examples: "glm_base", "glm_pca", "rf_corr90"
	ExperimentKey = "experiment.name"

	// RunIDKey carries the unique identifier of a single Train invocation.
	// Every experiment trained during the same run shares this ID.
	RunIDKey = "run.id"

	// GridSizeKey indicates the number of experiments registered in the grid.
	GridSizeKey = "grid.size"

	// OperationKey specifies the grid operation being performed.
	// Standard values: "add", "remove", "train", "preprocess", "fit"
	OperationKey = "ml.operation"

	// MethodKey records the training method identifier from the effective
	// configuration, when present. Examples: "glm", "rf", "xgbTree"
	MethodKey = "ml.method"

	// StageKey indicates the stage of an experiment's execution.
	// Examples: "preprocess", "train"
	StageKey = "ml.stage"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	FeaturesKey = "data.features"

	// RecipeStepsKey indicates the number of declarative preprocessing steps
	// attached to an experiment, 0 when it trains on raw data.
	RecipeStepsKey = "recipe.steps"
)

// Performance Metrics
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// MetricKey names the scalar performance metric an experiment reports.
	// Examples: "AUC", "Accuracy", "RMSE"
	MetricKey = "metric.name"

	// MetricMeanKey records the mean of the resampled metric distribution.
	MetricMeanKey = "metric.mean"
)

// Outcome Context
const (
	// StatusKey records the outcome of an experiment: "ok" or "failed".
	StatusKey = "outcome.status"

	// FailedCountKey records how many experiments failed during a run.
	FailedCountKey = "outcome.failed"
)
