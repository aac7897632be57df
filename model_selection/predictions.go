package model_selection

import (
	"gonum.org/v1/gonum/mat"

	"github.com/Vacek-Ace/moe/core/model"
	"github.com/Vacek-Ace/moe/pkg/errors"
)

// CrossValPredict returns out-of-fold predictions aligned with y: the data
// is split into k stratified folds and each sample's prediction comes from
// the model fitted on the folds that exclude it.
//
// The parallelism hint is applied through an explicit capability check,
// decided once: if the estimator implements model.ParallelFitter every fold
// fit receives nJobs, otherwise plain Fit is used. Panics raised by the
// caller-supplied estimator are converted into errors.
func CrossValPredict(X, y mat.Matrix, est model.Estimator, k, nJobs int) (*mat.VecDense, error) {
	if est == nil {
		return nil, errors.NewValueError("CrossValPredict", "estimator must not be nil")
	}

	splitter := NewStratifiedKFold(k, false, 0)
	folds, err := splitter.Split(X, y)
	if err != nil {
		return nil, err
	}

	nSamples, _ := X.Dims()
	preds := mat.NewVecDense(nSamples, nil)

	pf, hasParallelFit := est.(model.ParallelFitter)

	for _, fold := range folds {
		trainX, trainY := takeRows(X, y, fold.TrainIndices)
		testX, _ := takeRows(X, y, fold.TestIndices)

		err := errors.SafeExecute("estimator fit", func() error {
			if hasParallelFit {
				return pf.FitParallel(trainX, trainY, nJobs)
			}
			return est.Fit(trainX, trainY)
		})
		if err != nil {
			return nil, err
		}

		var foldPreds mat.Matrix
		err = errors.SafeExecute("estimator predict", func() error {
			var predErr error
			foldPreds, predErr = est.Predict(testX)
			return predErr
		})
		if err != nil {
			return nil, err
		}

		rows, cols := foldPreds.Dims()
		if rows != len(fold.TestIndices) || cols != 1 {
			return nil, errors.NewDimensionError("CrossValPredict", len(fold.TestIndices), rows, 0)
		}
		for i, idx := range fold.TestIndices {
			preds.SetVec(idx, foldPreds.At(i, 0))
		}
	}

	return preds, nil
}

// takeRows extracts the rows of X and y addressed by indices, in index order.
func takeRows(X, y mat.Matrix, indices []int) (*mat.Dense, *mat.Dense) {
	rows := len(indices)
	_, xCols := X.Dims()

	xSubset := mat.NewDense(rows, xCols, nil)
	ySubset := mat.NewDense(rows, 1, nil)

	for i, idx := range indices {
		for j := 0; j < xCols; j++ {
			xSubset.Set(i, j, X.At(idx, j))
		}
		ySubset.Set(i, 0, y.At(idx, 0))
	}

	return xSubset, ySubset
}

// colToVec copies an n x 1 matrix into a VecDense.
func colToVec(m mat.Matrix) *mat.VecDense {
	rows, _ := m.Dims()
	v := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		v.SetVec(i, m.At(i, 0))
	}
	return v
}
