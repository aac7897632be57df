// Package model_selection provides cross-validation splitting, out-of-fold
// prediction and exhaustive grid search over caller-supplied estimators.
//
// The package mirrors the corresponding scikit-learn surface: a stratified
// k-fold splitter, a ParameterGrid analog, cross_val_predict and a
// GridSearchCV orchestrator. Data is exchanged as gonum matrices and
// estimators are anything satisfying the core/model capability contract.
package model_selection

import (
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/Vacek-Ace/moe/pkg/errors"
)

// CVFold is a single train/test partition of sample indices.
type CVFold struct {
	TrainIndices []int
	TestIndices  []int
}

// Splitter generates cross-validation folds.
type Splitter interface {
	Split(X, y mat.Matrix) ([]CVFold, error)
	NSplits() int
}

// StratifiedKFold partitions data into k folds preserving the overall class
// proportions in every fold. With shuffle enabled, indices are shuffled
// within each class using a PCG generator seeded from the random state, so a
// fixed seed always yields the identical partition.
type StratifiedKFold struct {
	nSplits int
	shuffle bool
	seed    int64
}

// NewStratifiedKFold creates a stratified k-fold splitter.
func NewStratifiedKFold(nSplits int, shuffle bool, seed int64) *StratifiedKFold {
	return &StratifiedKFold{
		nSplits: nSplits,
		shuffle: shuffle,
		seed:    seed,
	}
}

// NSplits returns the number of folds.
func (skf *StratifiedKFold) NSplits() int {
	return skf.nSplits
}

// Split generates stratified train/test indices for each fold. It fails when
// the fold count is below 2, when y is not an X-aligned column vector, or
// when the fold count exceeds the smallest class size.
func (skf *StratifiedKFold) Split(X, y mat.Matrix) ([]CVFold, error) {
	if skf.nSplits < 2 {
		return nil, errors.NewValidationError("n_splits", "must be at least 2", skf.nSplits)
	}

	nSamples, _ := X.Dims()
	if nSamples == 0 {
		return nil, errors.WithStack(errors.ErrEmptyData)
	}
	yRows, yCols := y.Dims()
	if yCols != 1 {
		return nil, errors.NewValueError("StratifiedKFold.Split", "y must be a column vector (n×1 matrix)")
	}
	if yRows != nSamples {
		return nil, errors.NewDimensionError("StratifiedKFold.Split", nSamples, yRows, 0)
	}

	// Group sample indices by class label. Labels are visited in sorted
	// order so the seeded shuffle below is reproducible.
	classIndices := make(map[float64][]int)
	for i := 0; i < nSamples; i++ {
		label := y.At(i, 0)
		classIndices[label] = append(classIndices[label], i)
	}

	labels := make([]float64, 0, len(classIndices))
	minClass := nSamples
	for label, indices := range classIndices {
		labels = append(labels, label)
		if len(indices) < minClass {
			minClass = len(indices)
		}
	}
	sort.Float64s(labels)

	if skf.nSplits > minClass {
		return nil, errors.NewValidationError("n_splits",
			"cannot be greater than the number of members in the smallest class", skf.nSplits)
	}

	if skf.shuffle {
		r := rand.New(rand.NewPCG(uint64(skf.seed), uint64(skf.seed)))
		for _, label := range labels {
			indices := classIndices[label]
			r.Shuffle(len(indices), func(i, j int) {
				indices[i], indices[j] = indices[j], indices[i]
			})
		}
	}

	folds := make([]CVFold, skf.nSplits)

	// Deal each class across the folds; earlier folds absorb remainders.
	for _, label := range labels {
		indices := classIndices[label]
		nClass := len(indices)
		foldSize := nClass / skf.nSplits
		remainder := nClass % skf.nSplits

		currentIdx := 0
		for i := 0; i < skf.nSplits; i++ {
			testSize := foldSize
			if i < remainder {
				testSize++
			}
			for j := 0; j < testSize && currentIdx < nClass; j++ {
				folds[i].TestIndices = append(folds[i].TestIndices, indices[currentIdx])
				currentIdx++
			}
		}
	}

	// Train sets are the complement of each test set.
	for i := 0; i < skf.nSplits; i++ {
		testSet := make(map[int]bool, len(folds[i].TestIndices))
		for _, idx := range folds[i].TestIndices {
			testSet[idx] = true
		}
		folds[i].TrainIndices = make([]int, 0, nSamples-len(folds[i].TestIndices))
		for j := 0; j < nSamples; j++ {
			if !testSet[j] {
				folds[i].TrainIndices = append(folds[i].TrainIndices, j)
			}
		}
	}

	return folds, nil
}
