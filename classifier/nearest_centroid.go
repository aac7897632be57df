// Package classifier bundles a small reference classifier implementing the
// core/model estimator contract. It exists so the model-selection helpers
// can be exercised end to end without an external learning library; real
// workloads plug in their own estimators.
package classifier

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/Vacek-Ace/moe/core/model"
	"github.com/Vacek-Ace/moe/core/parallel"
	"github.com/Vacek-Ace/moe/pkg/errors"
)

// predictParallelThreshold is the row count below which prediction stays
// sequential.
const predictParallelThreshold = 256

// NearestCentroid is a binary nearest-centroid classifier for labels 0/1.
// Fit stores the per-class feature centroids; Predict assigns each sample
// the label of the closer centroid. An optional shrink threshold
// soft-thresholds each centroid's deviation from the overall data centroid,
// which removes noisy features from the distance computation.
type NearestCentroid struct {
	state *model.StateManager

	shrinkThreshold float64
	nJobs           int

	centroids [2][]float64
	hasClass  [2]bool
}

// NearestCentroidOption is a functional option for NearestCentroid.
type NearestCentroidOption func(*NearestCentroid)

// WithShrinkThreshold sets the centroid shrinkage threshold. Zero disables
// shrinking.
func WithShrinkThreshold(threshold float64) NearestCentroidOption {
	return func(nc *NearestCentroid) {
		nc.shrinkThreshold = threshold
	}
}

// WithNJobs sets the parallelism used by Fit and Predict.
// nJobs <= 0 means use all available cores.
func WithNJobs(nJobs int) NearestCentroidOption {
	return func(nc *NearestCentroid) {
		nc.nJobs = nJobs
	}
}

// NewNearestCentroid creates a NearestCentroid classifier.
func NewNearestCentroid(opts ...NearestCentroidOption) *NearestCentroid {
	nc := &NearestCentroid{
		state: model.NewStateManager(),
		nJobs: 1,
	}
	for _, opt := range opts {
		opt(nc)
	}
	return nc
}

// Fit computes the per-class centroids of X.
func (nc *NearestCentroid) Fit(X, y mat.Matrix) error {
	nSamples, nFeatures := X.Dims()
	yRows, yCols := y.Dims()

	if nSamples == 0 {
		return errors.WithStack(errors.ErrEmptyData)
	}
	if yCols != 1 {
		return errors.NewValueError("NearestCentroid.Fit", "y must be a column vector (n×1 matrix)")
	}
	if yRows != nSamples {
		return errors.NewDimensionError("NearestCentroid.Fit", nSamples, yRows, 0)
	}

	sums := [2][]float64{make([]float64, nFeatures), make([]float64, nFeatures)}
	counts := [2]int{}
	overall := make([]float64, nFeatures)

	for i := 0; i < nSamples; i++ {
		label := y.At(i, 0)
		if label != 0 && label != 1 {
			return errors.NewValueError("NearestCentroid.Fit", "labels must be binary (0/1)")
		}
		c := int(label)
		counts[c]++
		for j := 0; j < nFeatures; j++ {
			v := X.At(i, j)
			sums[c][j] += v
			overall[j] += v
		}
	}

	for j := 0; j < nFeatures; j++ {
		overall[j] /= float64(nSamples)
	}

	for c := 0; c < 2; c++ {
		nc.hasClass[c] = counts[c] > 0
		if counts[c] == 0 {
			nc.centroids[c] = nil
			continue
		}
		centroid := make([]float64, nFeatures)
		for j := 0; j < nFeatures; j++ {
			centroid[j] = sums[c][j] / float64(counts[c])
		}
		if nc.shrinkThreshold > 0 {
			shrinkToward(centroid, overall, nc.shrinkThreshold)
		}
		nc.centroids[c] = centroid
	}

	nc.state.SetDimensions(nFeatures, nSamples)
	nc.state.SetFitted()
	return nil
}

// FitParallel implements model.ParallelFitter. Centroid accumulation is a
// single pass over the data; the hint is retained for Predict, where the
// distance loop parallelizes over rows.
func (nc *NearestCentroid) FitParallel(X, y mat.Matrix, nJobs int) error {
	nc.nJobs = nJobs
	return nc.Fit(X, y)
}

// Predict assigns each row of X the label of its nearest centroid.
func (nc *NearestCentroid) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !nc.state.IsFitted() {
		return nil, errors.NewNotFittedError("NearestCentroid", "Predict")
	}

	nSamples, nFeatures := X.Dims()
	wantFeatures, _ := nc.state.GetDimensions()
	if nFeatures != wantFeatures {
		return nil, errors.NewDimensionError("NearestCentroid.Predict", wantFeatures, nFeatures, 1)
	}

	preds := mat.NewDense(nSamples, 1, nil)
	parallel.ParallelizeWithThreshold(nSamples, nc.nJobs, predictParallelThreshold, func(start, end int) {
		row := make([]float64, nFeatures)
		for i := start; i < end; i++ {
			mat.Row(row, i, X)
			preds.Set(i, 0, float64(nc.nearest(row)))
		}
	})

	return preds, nil
}

// Score implements model.Scorer as mean accuracy.
func (nc *NearestCentroid) Score(X, y mat.Matrix) (float64, error) {
	preds, err := nc.Predict(X)
	if err != nil {
		return 0, err
	}

	nSamples, _ := X.Dims()
	correct := 0
	for i := 0; i < nSamples; i++ {
		if preds.At(i, 0) == y.At(i, 0) {
			correct++
		}
	}
	return float64(correct) / float64(nSamples), nil
}

// IsFitted reports whether the classifier has been fitted.
func (nc *NearestCentroid) IsFitted() bool {
	return nc.state.IsFitted()
}

// nearest returns the label of the centroid closest to row. When one class
// was absent from training, the present class always wins. Distance ties
// resolve to label 0.
func (nc *NearestCentroid) nearest(row []float64) int {
	switch {
	case !nc.hasClass[1]:
		return 0
	case !nc.hasClass[0]:
		return 1
	}

	if squaredDistance(row, nc.centroids[1]) < squaredDistance(row, nc.centroids[0]) {
		return 1
	}
	return 0
}

// shrinkToward soft-thresholds the centroid's deviation from the overall
// centroid: components whose deviation is below the threshold collapse onto
// the overall centroid.
func shrinkToward(centroid, overall []float64, threshold float64) {
	for j := range centroid {
		d := centroid[j] - overall[j]
		shrunk := math.Abs(d) - threshold
		if shrunk < 0 {
			shrunk = 0
		}
		if d < 0 {
			shrunk = -shrunk
		}
		centroid[j] = overall[j] + shrunk
	}
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
