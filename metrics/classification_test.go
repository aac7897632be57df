package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/Vacek-Ace/moe/pkg/errors"
)

func TestMatthewsCorrCoef(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    float64
		wantErr bool
	}{
		{
			name:  "Perfect prediction",
			yTrue: []float64{0, 0, 1, 1},
			yPred: []float64{0, 0, 1, 1},
			want:  1.0,
		},
		{
			name:  "Total disagreement",
			yTrue: []float64{0, 0, 1, 1},
			yPred: []float64{1, 1, 0, 0},
			want:  -1.0,
		},
		{
			name:  "sklearn doc example",
			yTrue: []float64{1, 1, 1, 0},
			yPred: []float64{1, 0, 1, 1},
			want:  -1.0 / 3.0,
		},
		{
			name:  "Undefined, all predictions positive",
			yTrue: []float64{0, 1, 0, 1},
			yPred: []float64{1, 1, 1, 1},
			want:  0.0, // undefined case, warning + 0
		},
		{
			name:    "Non-binary labels",
			yTrue:   []float64{0, 2, 1},
			yPred:   []float64{0, 1, 1},
			wantErr: true,
		},
		{
			name:    "Dimension mismatch",
			yTrue:   []float64{0, 1},
			yPred:   []float64{0},
			wantErr: true,
		},
		{
			name:    "Empty vectors",
			yTrue:   []float64{},
			yPred:   []float64{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var yTrue, yPred *mat.VecDense
			if len(tt.yTrue) > 0 {
				yTrue = mat.NewVecDense(len(tt.yTrue), tt.yTrue)
			}
			if len(tt.yPred) > 0 {
				yPred = mat.NewVecDense(len(tt.yPred), tt.yPred)
			}

			got, err := MatthewsCorrCoef(yTrue, yPred)
			if (err != nil) != tt.wantErr {
				t.Errorf("MatthewsCorrCoef() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("MatthewsCorrCoef() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatthewsCorrCoefUndefinedWarns(t *testing.T) {
	var captured error
	errors.SetWarningHandler(func(w error) { captured = w })
	defer errors.SetWarningHandler(func(error) {})

	yTrue := mat.NewVecDense(4, []float64{0, 1, 0, 1})
	yPred := mat.NewVecDense(4, []float64{0, 0, 0, 0})

	got, err := MatthewsCorrCoef(yTrue, yPred)
	if err != nil {
		t.Fatalf("MatthewsCorrCoef() error = %v", err)
	}
	if got != 0 {
		t.Errorf("MatthewsCorrCoef() = %v, want 0 for undefined case", got)
	}

	var w *errors.UndefinedMetricWarning
	if !errors.As(captured, &w) {
		t.Fatalf("expected UndefinedMetricWarning, got %v", captured)
	}
	if w.Metric != "matthews_corrcoef" {
		t.Errorf("warning metric = %q, want %q", w.Metric, "matthews_corrcoef")
	}
}

func TestMatthewsCorrCoefMatrix(t *testing.T) {
	yTrue := mat.NewDense(4, 1, []float64{0, 0, 1, 1})
	yPred := mat.NewDense(4, 1, []float64{0, 0, 1, 1})

	got, err := MatthewsCorrCoefMatrix(yTrue, yPred)
	if err != nil {
		t.Fatalf("MatthewsCorrCoefMatrix() error = %v", err)
	}
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("MatthewsCorrCoefMatrix() = %v, want 1.0", got)
	}

	if _, err := MatthewsCorrCoefMatrix(mat.NewDense(2, 2, nil), yPred); err == nil {
		t.Error("MatthewsCorrCoefMatrix() accepted a non-column matrix")
	}
}

func TestScaledMatthewsCorrCoef(t *testing.T) {
	tests := []struct {
		name  string
		yTrue []float64
		yPred []float64
		want  float64
	}{
		{
			name:  "Perfect predictor scores 1",
			yTrue: []float64{0, 1, 0, 1, 1},
			yPred: []float64{0, 1, 0, 1, 1},
			want:  1.0,
		},
		{
			name:  "Inverted predictor scores 0",
			yTrue: []float64{0, 0, 1, 1},
			yPred: []float64{1, 1, 0, 0},
			want:  0.0,
		},
		{
			name:  "Undefined case maps to 0.5",
			yTrue: []float64{0, 1, 0, 1},
			yPred: []float64{1, 1, 1, 1},
			want:  0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yTrue := mat.NewVecDense(len(tt.yTrue), tt.yTrue)
			yPred := mat.NewVecDense(len(tt.yPred), tt.yPred)

			got, err := ScaledMatthewsCorrCoef(yTrue, yPred)
			if err != nil {
				t.Fatalf("ScaledMatthewsCorrCoef() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ScaledMatthewsCorrCoef() = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("ScaledMatthewsCorrCoef() = %v, outside [0, 1]", got)
			}
		})
	}
}

func BenchmarkMatthewsCorrCoef(b *testing.B) {
	n := 10000
	yTrue := mat.NewVecDense(n, nil)
	yPred := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		yTrue.SetVec(i, float64(i%2))
		yPred.SetVec(i, float64((i/3)%2))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = MatthewsCorrCoef(yTrue, yPred)
	}
}
