// Package model provides the core contracts between an experiment grid and
// its externally supplied collaborators: the Preprocessor that estimates and
// applies declarative recipes, and the Trainer that fits models and reports
// resampled performance.
package model

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/modelgrid/recipe"
)

// Preprocessor turns a declarative recipe plus data into transformed data.
//
// Implementations may be stateful: a transform estimated once on reference
// (training) data, such as fitted PCA loadings or the set of dropped
// zero-variance columns, can be cached keyed by the *recipe.Recipe identity
// and reapplied identically on later calls. The grid guarantees experiments run in
// registration order, so a cached transform estimated for an earlier
// experiment is available to later ones sharing the same recipe.
type Preprocessor interface {
	// Apply transforms data according to rec. effective is the experiment's
	// merged configuration; implementations are free to ignore it. A failure
	// to estimate the transform (e.g. a matrix that cannot be inverted) is
	// returned as a descriptive error.
	Apply(ctx context.Context, rec *recipe.Recipe, data Dataset, effective map[string]any) (Dataset, error)
}

// Trainer fits a model on (possibly preprocessed) data.
//
// The effective configuration carries keys the grid never interprets:
// resampling scheme, fold count, target metric, chosen algorithm and its
// hyperparameters. Use DecodeOptions to map them onto a typed option struct.
type Trainer interface {
	// Fit returns the fitted model and the resampled performance profile for
	// one experiment.
	Fit(ctx context.Context, data Dataset, effective map[string]any) (Fitted, ResampleProfile, error)
}

// Fitted is the opaque handle to a trained model stored inside an Artifact.
type Fitted interface {
	// Predict returns predictions for the given feature matrix.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Well-known option keys. The grid passes them through uninterpreted; they
// exist so trainers, preprocessors and the config loader share a vocabulary.
const (
	// KeyMethod names the training algorithm, e.g. "glm" or "rf".
	KeyMethod = "method"
	// KeyResampling names the resampling scheme, e.g. "cv-5" or "boot-25".
	KeyResampling = "resampling"
	// KeyMetric names the performance metric, e.g. "AUC" or "Accuracy".
	KeyMetric = "metric"
	// KeyFolds is the fold count for cross-validation schemes.
	KeyFolds = "folds"
	// KeySeed seeds the trainer's random source for reproducible resampling.
	KeySeed = "seed"
)
