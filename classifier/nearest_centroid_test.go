package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	moerrors "github.com/Vacek-Ace/moe/pkg/errors"
)

// twoBlobs builds a linearly separable dataset: class 0 around the origin,
// class 1 around (10, 10).
func twoBlobs() (X *mat.Dense, y *mat.Dense) {
	data := []float64{
		0.1, -0.2,
		-0.3, 0.4,
		0.2, 0.1,
		9.8, 10.1,
		10.2, 9.7,
		9.9, 10.3,
	}
	labels := []float64{0, 0, 0, 1, 1, 1}
	return mat.NewDense(6, 2, data), mat.NewDense(6, 1, labels)
}

func TestNearestCentroidFitPredict(t *testing.T) {
	X, y := twoBlobs()

	nc := NewNearestCentroid()
	require.NoError(t, nc.Fit(X, y))
	require.True(t, nc.IsFitted())

	preds, err := nc.Predict(X)
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		assert.Equal(t, y.At(i, 0), preds.At(i, 0), "sample %d", i)
	}

	score, err := nc.Score(X, y)
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)
}

func TestNearestCentroidPredictBeforeFit(t *testing.T) {
	nc := NewNearestCentroid()
	_, err := nc.Predict(mat.NewDense(1, 2, nil))
	require.Error(t, err)

	var nfe *moerrors.NotFittedError
	assert.True(t, moerrors.As(err, &nfe))
}

func TestNearestCentroidValidation(t *testing.T) {
	X, _ := twoBlobs()

	nc := NewNearestCentroid()
	err := nc.Fit(X, mat.NewDense(6, 1, []float64{0, 0, 0, 1, 1, 2}))
	assert.Error(t, err, "non-binary labels must be rejected")

	err = nc.Fit(X, mat.NewDense(3, 1, []float64{0, 1, 0}))
	assert.Error(t, err, "row mismatch must be rejected")

	require.NoError(t, nc.Fit(X, mat.NewDense(6, 1, []float64{0, 0, 0, 1, 1, 1})))
	_, err = nc.Predict(mat.NewDense(2, 5, nil))
	assert.Error(t, err, "feature mismatch must be rejected")
}

func TestNearestCentroidSingleClass(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{0, 0, 1, 1, 2, 2})
	y := mat.NewDense(3, 1, []float64{1, 1, 1})

	nc := NewNearestCentroid()
	require.NoError(t, nc.Fit(X, y))

	preds, err := nc.Predict(X)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.0, preds.At(i, 0))
	}
}

func TestNearestCentroidFitParallel(t *testing.T) {
	X, y := twoBlobs()

	nc := NewNearestCentroid()
	require.NoError(t, nc.FitParallel(X, y, -1))

	score, err := nc.Score(X, y)
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)
}

func TestNearestCentroidShrinkage(t *testing.T) {
	// Feature 0 separates the classes; feature 1 is identical noise. A large
	// enough threshold collapses the noisy component onto the overall mean
	// without disturbing the informative one.
	X := mat.NewDense(4, 2, []float64{
		0, 5.0,
		0, 5.2,
		10, 4.9,
		10, 5.1,
	})
	y := mat.NewDense(4, 1, []float64{0, 0, 1, 1})

	plain := NewNearestCentroid()
	require.NoError(t, plain.Fit(X, y))

	shrunk := NewNearestCentroid(WithShrinkThreshold(0.5))
	require.NoError(t, shrunk.Fit(X, y))

	for _, nc := range []*NearestCentroid{plain, shrunk} {
		score, err := nc.Score(X, y)
		require.NoError(t, err)
		assert.Equal(t, 1.0, score)
	}

	// Shrunk centroids agree on the noise feature.
	assert.InDelta(t, shrunk.centroids[0][1], shrunk.centroids[1][1], 1e-12)
}
