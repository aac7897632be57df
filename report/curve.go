package report

import (
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/Vacek-Ace/moe/model_selection"
	"github.com/Vacek-Ace/moe/pkg/errors"
)

// ValidationCurve plots the mean cross-validated score of every candidate
// against the numeric values of one grid parameter. Candidates missing the
// parameter, or holding a non-numeric value for it, are rejected.
func ValidationCurve(results []model_selection.CandidateResult, param string) (*plot.Plot, error) {
	if len(results) == 0 {
		return nil, errors.NewValueError("ValidationCurve", "no results to plot")
	}

	points := make(plotter.XYs, 0, len(results))
	for _, res := range results {
		raw, ok := res.Params[param]
		if !ok {
			return nil, errors.NewValueError("ValidationCurve", "parameter '"+param+"' missing from a candidate")
		}
		x, ok := toFloat(raw)
		if !ok {
			return nil, errors.NewValueError("ValidationCurve", "parameter '"+param+"' is not numeric")
		}
		points = append(points, plotter.XY{X: x, Y: res.MeanScore})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].X < points[j].X })

	p := plot.New()
	p.Title.Text = "Validation curve"
	p.X.Label.Text = param
	p.Y.Label.Text = "mean CV score"

	if err := plotutil.AddLinePoints(p, "mean score", points); err != nil {
		return nil, errors.Wrap(err, "report: building validation curve failed")
	}
	return p, nil
}

// SaveValidationCurve renders the validation curve to an image file; the
// format follows the path extension (png, svg, pdf, ...).
func SaveValidationCurve(results []model_selection.CandidateResult, param, path string) error {
	p, err := ValidationCurve(results, param)
	if err != nil {
		return err
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "report: saving validation curve failed")
	}
	return nil
}

func toFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}
