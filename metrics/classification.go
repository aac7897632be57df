// Package metrics provides the classification metrics used by moe's
// model-selection helpers: Matthews correlation (raw and rescaled to [0, 1])
// and a crosstab-style confusion matrix for binary labels.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/Vacek-Ace/moe/pkg/errors"
)

// MatthewsCorrCoef computes the Matthews correlation coefficient for binary
// labels. The result lies in [-1, 1]: +1 is a perfect prediction, 0 no
// better than random, -1 total disagreement. MCC is robust to class
// imbalance, which is why the search helpers score with it by default.
//
// When any marginal of the confusion matrix is empty the coefficient is
// undefined; an UndefinedMetricWarning is emitted and 0 is returned.
func MatthewsCorrCoef(yTrue, yPred *mat.VecDense) (float64, error) {
	tp, tn, fp, fn, err := binaryCounts("MatthewsCorrCoef", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	denom := math.Sqrt((tp + fp) * (tp + fn) * (tn + fp) * (tn + fn))
	if denom == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning(
			"matthews_corrcoef", "a zero denominator (empty confusion-matrix marginal)", 0.0))
		return 0, nil
	}

	return (tp*tn - fp*fn) / denom, nil
}

// MatthewsCorrCoefMatrix computes MCC for column-vector matrix inputs.
func MatthewsCorrCoefMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	yTrueVec, err := toColumnVec("MatthewsCorrCoefMatrix", yTrue)
	if err != nil {
		return 0, err
	}
	yPredVec, err := toColumnVec("MatthewsCorrCoefMatrix", yPred)
	if err != nil {
		return 0, err
	}
	return MatthewsCorrCoef(yTrueVec, yPredVec)
}

// ScaledMatthewsCorrCoef rescales MCC from [-1, 1] into [0, 1] via
// (mcc+1)/2. A perfect predictor scores 1.0, total disagreement 0.0. This is
// the default scoring function of GridSearchCV, where a maximization target
// in [0, 1] is more convenient than a signed coefficient.
func ScaledMatthewsCorrCoef(yTrue, yPred *mat.VecDense) (float64, error) {
	mcc, err := MatthewsCorrCoef(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return (mcc + 1) / 2, nil
}

// binaryCounts cross-tabulates two binary label vectors into confusion
// counts. Labels must be exactly 0 or 1.
func binaryCounts(op string, yTrue, yPred *mat.VecDense) (tp, tn, fp, fn float64, err error) {
	if yTrue == nil || yTrue.Len() == 0 {
		return 0, 0, 0, 0, errors.NewValueError(op, "empty vector")
	}
	n := yTrue.Len()
	if yPred == nil || yPred.Len() != n {
		got := 0
		if yPred != nil {
			got = yPred.Len()
		}
		return 0, 0, 0, 0, errors.NewDimensionError(op, n, got, 0)
	}

	for i := 0; i < n; i++ {
		truth := yTrue.AtVec(i)
		pred := yPred.AtVec(i)
		if (truth != 0 && truth != 1) || (pred != 0 && pred != 1) {
			return 0, 0, 0, 0, errors.NewValueError(op, "labels must be binary (0/1)")
		}

		switch {
		case truth == 1 && pred == 1:
			tp++
		case truth == 0 && pred == 0:
			tn++
		case truth == 0 && pred == 1:
			fp++
		default:
			fn++
		}
	}
	return tp, tn, fp, fn, nil
}

// toColumnVec converts an n x 1 matrix into a VecDense.
func toColumnVec(op string, m mat.Matrix) (*mat.VecDense, error) {
	rows, cols := m.Dims()
	if rows == 0 {
		return nil, errors.NewValueError(op, "empty matrix")
	}
	if cols != 1 {
		return nil, errors.NewValueError(op, "must be a column vector (n×1 matrix)")
	}

	v := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		v.SetVec(i, m.At(i, 0))
	}
	return v, nil
}
