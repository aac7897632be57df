package metrics

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// tableAxes is the fixed label universe of the confusion table: the two
// binary labels plus the margins row/column.
var tableAxes = [3]string{"0", "1", "total"}

// ConfusionTable is a binary confusion matrix with margins, laid out as a
// pandas-style crosstab: rows are predictions, columns are true labels, and
// the third row/column holds the "total" margins. Every value is rounded to
// 2 decimals.
type ConfusionTable struct {
	// cells[i][j]: i indexes pred in {0, 1, total}, j indexes real in
	// {0, 1, total}.
	cells      [3][3]float64
	normalized bool
}

// ConfusionMatrix cross-tabulates binary predictions against true labels.
// With normalize the counts are divided by the number of samples so that the
// four inner cells sum to 1.
func ConfusionMatrix(yPred, yTrue *mat.VecDense, normalize bool) (*ConfusionTable, error) {
	tp, tn, fp, fn, err := binaryCounts("ConfusionMatrix", yTrue, yPred)
	if err != nil {
		return nil, err
	}

	// Inner cells, pred rows x real columns.
	cells := [3][3]float64{
		{tn, fn, 0}, // pred 0: real 0, real 1
		{fp, tp, 0}, // pred 1: real 0, real 1
	}

	if normalize {
		total := tp + tn + fp + fn
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				cells[i][j] /= total
			}
		}
	}

	// Margins.
	for i := 0; i < 2; i++ {
		cells[i][2] = cells[i][0] + cells[i][1]
	}
	for j := 0; j < 3; j++ {
		cells[2][j] = cells[0][j] + cells[1][j]
	}

	for i := range cells {
		for j := range cells[i] {
			cells[i][j] = round2(cells[i][j])
		}
	}

	return &ConfusionTable{cells: cells, normalized: normalize}, nil
}

// At returns the table value at the given pred row and actual-label column,
// each in {0, 1, 2} where 2 addresses the "total" margin.
func (t *ConfusionTable) At(pred, actual int) float64 {
	return t.cells[pred][actual]
}

// Normalized reports whether the table holds proportions rather than counts.
func (t *ConfusionTable) Normalized() bool {
	return t.normalized
}

// String renders the table as a crosstab with pred rows and real columns.
func (t *ConfusionTable) String() string {
	var sb strings.Builder
	sb.WriteString("real        0       1   total\n")
	sb.WriteString("pred\n")
	for i, name := range tableAxes {
		sb.WriteString(fmt.Sprintf("%-5s", name))
		for j := range tableAxes {
			if t.normalized {
				sb.WriteString(fmt.Sprintf("%8.2f", t.cells[i][j]))
			} else {
				sb.WriteString(fmt.Sprintf("%8.0f", t.cells[i][j]))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// MarshalJSON encodes the table as plain nested arrays with its axis labels.
func (t *ConfusionTable) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(`{"index":"pred","columns":"real","labels":["0","1","total"],"values":[`)
	for i := range t.cells {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString("[")
		for j := range t.cells[i] {
			if j > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(fmt.Sprintf("%g", t.cells[i][j]))
		}
		sb.WriteString("]")
	}
	sb.WriteString("]}")
	return []byte(sb.String()), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
