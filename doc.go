// Package moe provides model-selection and evaluation helpers for binary
// classification experiments in Go.
//
// moe covers the repetitive part of an ML experiment: stratified
// cross-validation, exhaustive hyperparameter search with thread-level
// parallelism, and the evaluation artifacts usually inspected afterwards
// (confusion crosstabs, Matthews correlation, validation curves, JSON
// reports).
//
// # Installation
//
//	go get github.com/Vacek-Ace/moe
//
// # Quick Start
//
// Grid-search a classifier over a small parameter grid:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "gonum.org/v1/gonum/mat"
//
//	    "github.com/Vacek-Ace/moe/classifier"
//	    "github.com/Vacek-Ace/moe/core/model"
//	    "github.com/Vacek-Ace/moe/model_selection"
//	)
//
//	func main() {
//	    X := mat.NewDense(8, 1, []float64{0, 0, 1, 1, 0, 0, 1, 1})
//	    y := mat.NewDense(8, 1, []float64{0, 0, 1, 1, 0, 0, 1, 1})
//
//	    factory := func(params model_selection.Params) (model.Estimator, error) {
//	        return classifier.NewNearestCentroid(
//	            classifier.WithShrinkThreshold(params["shrink"].(float64)),
//	        ), nil
//	    }
//	    grid := model_selection.ParamGrid{"shrink": {0.0, 0.5}}
//
//	    search := model_selection.NewGridSearchCV(factory, grid,
//	        model_selection.WithCV(2),
//	    )
//	    if err := search.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    best, _ := search.BestParams()
//	    fmt.Println("best:", best)
//	}
//
// # Packages
//
//   - model_selection: stratified k-fold splitting, out-of-fold prediction,
//     grid search with progress callbacks
//   - metrics: Matthews correlation (raw and scaled) and margin-annotated
//     confusion crosstabs
//   - classifier: a reference nearest-centroid estimator for exercising the
//     selection machinery
//   - preprocessing: standard and min-max feature scaling
//   - report: JSON encoding of search results and validation-curve plots
//   - core/model: estimator interfaces and fit-state management
//   - core/parallel: worker allocation and chunked parallel loops
//   - pkg/timing: scoped wall-clock timers
//
// Search evaluation runs candidates concurrently, bounded by the
// configured worker count, and results are deterministic for a fixed
// random state.
package moe
