// Package report turns search outcomes into artifacts: JSON documents with
// gonum-native values reduced to plain numbers, and validation-curve plots.
package report

import (
	"encoding/json"

	"gonum.org/v1/gonum/mat"

	"github.com/Vacek-Ace/moe/model_selection"
	"github.com/Vacek-Ace/moe/pkg/errors"
)

// Marshal encodes v as JSON after reducing library-native numeric values to
// plain ones: integer-like values become JSON integers, floating-like values
// JSON floats, and gonum vectors/matrices nested JSON arrays. Maps and
// slices are converted recursively.
func Marshal(v interface{}) ([]byte, error) {
	data, err := json.Marshal(plain(v))
	if err != nil {
		return nil, errors.Wrap(err, "report: encode failed")
	}
	return data, nil
}

// MarshalIndent is Marshal with indented output.
func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	data, err := json.MarshalIndent(plain(v), prefix, indent)
	if err != nil {
		return nil, errors.Wrap(err, "report: encode failed")
	}
	return data, nil
}

// EncodeResults encodes candidate results as a JSON array of
// {params, scores, mean_score} records with plain numeric values.
func EncodeResults(results []model_selection.CandidateResult) ([]byte, error) {
	records := make([]candidateRecord, len(results))
	for i, res := range results {
		records[i] = candidateRecord{
			Params:    plain(res.Params),
			Scores:    res.Scores,
			MeanScore: res.MeanScore,
		}
	}
	return Marshal(records)
}

// plain recursively converts v into JSON-friendly values.
func plain(v interface{}) interface{} {
	switch t := v.(type) {
	case nil:
		return nil
	case *mat.VecDense:
		return vecToSlice(t)
	case mat.Vector:
		return vecToSlice(t)
	case mat.Matrix:
		return matrixToSlices(t)
	case float32:
		return float64(t)
	case int8:
		return int(t)
	case int16:
		return int(t)
	case int32:
		return int(t)
	case int64:
		return int(t)
	case uint:
		return int(t)
	case uint8:
		return int(t)
	case uint16:
		return int(t)
	case uint32:
		return int(t)
	case uint64:
		return int(t)
	case model_selection.Params:
		return plainMap(t)
	case map[string]interface{}:
		return plainMap(t)
	case []interface{}:
		converted := make([]interface{}, len(t))
		for i, item := range t {
			converted[i] = plain(item)
		}
		return converted
	default:
		return v
	}
}

func plainMap(m map[string]interface{}) map[string]interface{} {
	converted := make(map[string]interface{}, len(m))
	for k, v := range m {
		converted[k] = plain(v)
	}
	return converted
}

func vecToSlice(v mat.Vector) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}

func matrixToSlices(m mat.Matrix) [][]float64 {
	rows, cols := m.Dims()
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}

// candidateRecord is the JSON shape of one evaluated candidate.
type candidateRecord struct {
	Params    interface{} `json:"params"`
	Scores    []float64   `json:"scores"`
	MeanScore float64     `json:"mean_score"`
}

// SearchSummary is the JSON-ready digest of a completed grid search.
type SearchSummary struct {
	BestParams   interface{}       `json:"best_params"`
	BestScore    float64           `json:"best_score"`
	BestScoreStd float64           `json:"best_score_std"`
	Results      []candidateRecord `json:"results"`
}

// Summarize digests a fitted GridSearchCV into a SearchSummary. It fails
// with NotFittedError when the search has not completed.
func Summarize(search *model_selection.GridSearchCV) (*SearchSummary, error) {
	best, err := search.BestParams()
	if err != nil {
		return nil, err
	}
	mean, std, err := search.BestScore()
	if err != nil {
		return nil, err
	}
	results, err := search.Results()
	if err != nil {
		return nil, err
	}

	summary := &SearchSummary{
		BestParams:   plain(best),
		BestScore:    mean,
		BestScoreStd: std,
		Results:      make([]candidateRecord, len(results)),
	}
	for i, res := range results {
		summary.Results[i] = candidateRecord{
			Params:    plain(res.Params),
			Scores:    res.Scores,
			MeanScore: res.MeanScore,
		}
	}
	return summary, nil
}
