// Package model defines the estimator capability contract that moe's
// model-selection helpers operate against. Any value with Fit and Predict
// can be cross-validated and grid-searched; implementations live outside
// this module (or in the classifier package for the bundled reference).
package model

import "gonum.org/v1/gonum/mat"

// Fitter is the interface for trainable models.
type Fitter interface {
	// Fit trains the model on X and the label column vector y.
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for models that can predict.
type Predictor interface {
	// Predict returns predictions for X as an n x 1 matrix.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Estimator is the minimal contract required by cross-validation and grid
// search: a model that can be fitted and then queried for predictions.
type Estimator interface {
	Fitter
	Predictor
}

// ParallelFitter is implemented by estimators whose training can use worker
// parallelism. Cross-validation checks for this capability once, up front,
// and passes the parallelism hint on every fold fit; estimators without it
// are fitted through plain Fit.
type ParallelFitter interface {
	// FitParallel trains the model using up to nJobs workers.
	// nJobs <= 0 means use all available cores.
	FitParallel(X, y mat.Matrix, nJobs int) error
}

// Scorer is implemented by estimators that can score themselves against
// labeled data, e.g. mean accuracy for classifiers.
type Scorer interface {
	Score(X, y mat.Matrix) (float64, error)
}
