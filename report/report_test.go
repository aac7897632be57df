package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/Vacek-Ace/moe/classifier"
	"github.com/Vacek-Ace/moe/core/model"
	ms "github.com/Vacek-Ace/moe/model_selection"
	moerrors "github.com/Vacek-Ace/moe/pkg/errors"
)

func TestMarshalPlainValues(t *testing.T) {
	vec := mat.NewVecDense(3, []float64{1, 2, 3})
	matrix := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	data, err := Marshal(map[string]interface{}{
		"vector": vec,
		"matrix": matrix,
		"count":  int64(7),
		"ratio":  float32(0.5),
		"nested": []interface{}{int32(1), vec},
	})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, []interface{}{1.0, 2.0, 3.0}, decoded["vector"])
	assert.Equal(t, []interface{}{
		[]interface{}{1.0, 2.0},
		[]interface{}{3.0, 4.0},
	}, decoded["matrix"])
	assert.Equal(t, 7.0, decoded["count"])
	assert.Equal(t, 0.5, decoded["ratio"])
}

func TestMarshalParams(t *testing.T) {
	params := ms.Params{"C": 0.1, "folds": int64(5)}
	data, err := Marshal(params)
	require.NoError(t, err)
	assert.JSONEq(t, `{"C": 0.1, "folds": 5}`, string(data))
}

func TestEncodeResults(t *testing.T) {
	results := []ms.CandidateResult{
		{Params: ms.Params{"C": 0.1, "depth": int64(3)}, Scores: []float64{0.8, 0.9}, MeanScore: 0.85},
	}

	data, err := EncodeResults(results)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"params": {"C": 0.1, "depth": 3}, "scores": [0.8, 0.9], "mean_score": 0.85}]`,
		string(data))
}

func fittedSearch(t *testing.T) *ms.GridSearchCV {
	t.Helper()

	n := 40
	X := mat.NewDense(n, 2, nil)
	y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		label := float64(i % 2)
		y.Set(i, 0, label)
		X.Set(i, 0, label*10)
		X.Set(i, 1, float64(i)/float64(n))
	}

	factory := func(params ms.Params) (model.Estimator, error) {
		return classifier.NewNearestCentroid(
			classifier.WithShrinkThreshold(params["C"].(float64)),
		), nil
	}

	search := ms.NewGridSearchCV(factory, ms.ParamGrid{"C": {0.0, 0.5, 1.0}},
		ms.WithCV(5), ms.WithNJobs(1))
	require.NoError(t, search.Fit(X, y))
	return search
}

func TestSummarize(t *testing.T) {
	search := fittedSearch(t)

	summary, err := Summarize(search)
	require.NoError(t, err)
	require.Len(t, summary.Results, 3)

	assert.GreaterOrEqual(t, summary.BestScore, summary.Results[0].MeanScore)
	assert.GreaterOrEqual(t, summary.BestScore, 0.0)
	assert.LessOrEqual(t, summary.BestScore, 1.0)

	data, err := MarshalIndent(summary, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"best_params"`)
	assert.Contains(t, string(data), `"mean_score"`)
}

func TestSummarizeUnfitted(t *testing.T) {
	search := ms.NewGridSearchCV(nil, nil)

	_, err := Summarize(search)
	require.Error(t, err)

	var nfe *moerrors.NotFittedError
	assert.True(t, moerrors.As(err, &nfe))
}

func TestValidationCurve(t *testing.T) {
	results := []ms.CandidateResult{
		{Params: ms.Params{"C": 10.0}, MeanScore: 0.7},
		{Params: ms.Params{"C": 0.1}, MeanScore: 0.9},
		{Params: ms.Params{"C": 1.0}, MeanScore: 0.8},
	}

	p, err := ValidationCurve(results, "C")
	require.NoError(t, err)
	assert.Equal(t, "C", p.X.Label.Text)
}

func TestValidationCurveErrors(t *testing.T) {
	_, err := ValidationCurve(nil, "C")
	assert.Error(t, err, "empty results")

	results := []ms.CandidateResult{{Params: ms.Params{"mode": "fast"}, MeanScore: 0.5}}
	_, err = ValidationCurve(results, "C")
	assert.Error(t, err, "missing parameter")

	_, err = ValidationCurve(results, "mode")
	assert.Error(t, err, "non-numeric parameter")
}

func TestSaveValidationCurve(t *testing.T) {
	results := []ms.CandidateResult{
		{Params: ms.Params{"C": 0.1}, MeanScore: 0.9},
		{Params: ms.Params{"C": 1.0}, MeanScore: 0.8},
	}

	path := filepath.Join(t.TempDir(), "curve.png")
	require.NoError(t, SaveValidationCurve(results, "C", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
