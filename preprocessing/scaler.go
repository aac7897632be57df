// Package preprocessing provides feature scaling transformers that fit the
// core/model contract, so scaled features can feed the model-selection
// helpers directly.
package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/Vacek-Ace/moe/core/model"
	"github.com/Vacek-Ace/moe/pkg/errors"
)

// degenerateScale is the threshold below which a per-feature scale counts
// as constant and is replaced by 1 to keep Transform finite.
const degenerateScale = 1e-8

// StandardScaler centers each feature to zero mean and scales it to unit
// population standard deviation. Constant features are centered only.
type StandardScaler struct {
	state *model.StateManager

	withMean bool
	withStd  bool

	mean  []float64
	scale []float64
}

// StandardScalerOption is a functional option for StandardScaler.
type StandardScalerOption func(*StandardScaler)

// WithoutMean disables centering; only scaling is applied.
func WithoutMean() StandardScalerOption {
	return func(s *StandardScaler) {
		s.withMean = false
	}
}

// WithoutStd disables scaling; only centering is applied.
func WithoutStd() StandardScalerOption {
	return func(s *StandardScaler) {
		s.withStd = false
	}
}

// NewStandardScaler creates a StandardScaler that both centers and scales
// unless configured otherwise.
func NewStandardScaler(opts ...StandardScalerOption) *StandardScaler {
	s := &StandardScaler{
		state:    model.NewStateManager(),
		withMean: true,
		withStd:  true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fit computes the per-feature mean and standard deviation of X.
func (s *StandardScaler) Fit(X mat.Matrix) error {
	nSamples, nFeatures := X.Dims()
	if nSamples == 0 || nFeatures == 0 {
		return errors.WithStack(errors.ErrEmptyData)
	}

	s.mean = make([]float64, nFeatures)
	s.scale = make([]float64, nFeatures)

	if s.withMean {
		for j := 0; j < nFeatures; j++ {
			sum := 0.0
			for i := 0; i < nSamples; i++ {
				sum += X.At(i, j)
			}
			s.mean[j] = sum / float64(nSamples)
		}
	}

	for j := 0; j < nFeatures; j++ {
		s.scale[j] = 1.0
	}
	if s.withStd {
		for j := 0; j < nFeatures; j++ {
			sumSquares := 0.0
			for i := 0; i < nSamples; i++ {
				diff := X.At(i, j) - s.mean[j]
				sumSquares += diff * diff
			}
			std := math.Sqrt(sumSquares / float64(nSamples))
			if std > degenerateScale {
				s.scale[j] = std
			}
		}
	}

	s.state.SetDimensions(nFeatures, nSamples)
	s.state.SetFitted()
	return nil
}

// Transform standardizes X with the fitted statistics.
func (s *StandardScaler) Transform(X mat.Matrix) (*mat.Dense, error) {
	if !s.state.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "Transform")
	}

	nSamples, nFeatures := X.Dims()
	fitted := len(s.mean)
	if nFeatures != fitted {
		return nil, errors.NewDimensionError("StandardScaler.Transform", fitted, nFeatures, 1)
	}

	out := mat.NewDense(nSamples, nFeatures, nil)
	for i := 0; i < nSamples; i++ {
		for j := 0; j < nFeatures; j++ {
			out.Set(i, j, (X.At(i, j)-s.mean[j])/s.scale[j])
		}
	}
	return out, nil
}

// FitTransform fits the scaler on X and returns the standardized X.
func (s *StandardScaler) FitTransform(X mat.Matrix) (*mat.Dense, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// InverseTransform maps standardized data back to the original scale.
func (s *StandardScaler) InverseTransform(X mat.Matrix) (*mat.Dense, error) {
	if !s.state.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "InverseTransform")
	}

	nSamples, nFeatures := X.Dims()
	fitted := len(s.mean)
	if nFeatures != fitted {
		return nil, errors.NewDimensionError("StandardScaler.InverseTransform", fitted, nFeatures, 1)
	}

	out := mat.NewDense(nSamples, nFeatures, nil)
	for i := 0; i < nSamples; i++ {
		for j := 0; j < nFeatures; j++ {
			out.Set(i, j, X.At(i, j)*s.scale[j]+s.mean[j])
		}
	}
	return out, nil
}

// Mean returns a copy of the fitted per-feature means.
func (s *StandardScaler) Mean() []float64 {
	out := make([]float64, len(s.mean))
	copy(out, s.mean)
	return out
}

// Scale returns a copy of the fitted per-feature scales.
func (s *StandardScaler) Scale() []float64 {
	out := make([]float64, len(s.scale))
	copy(out, s.scale)
	return out
}

// IsFitted reports whether Fit has completed.
func (s *StandardScaler) IsFitted() bool {
	return s.state.IsFitted()
}

// MinMaxScaler rescales each feature into a target range, [0, 1] unless
// configured otherwise. Constant features map to the range minimum.
type MinMaxScaler struct {
	state *model.StateManager

	rangeMin float64
	rangeMax float64

	dataMin []float64
	scale   []float64
}

// MinMaxScalerOption is a functional option for MinMaxScaler.
type MinMaxScalerOption func(*MinMaxScaler)

// WithFeatureRange sets the target range for the scaled features.
func WithFeatureRange(min, max float64) MinMaxScalerOption {
	return func(m *MinMaxScaler) {
		m.rangeMin = min
		m.rangeMax = max
	}
}

// NewMinMaxScaler creates a MinMaxScaler targeting [0, 1] by default.
func NewMinMaxScaler(opts ...MinMaxScalerOption) *MinMaxScaler {
	m := &MinMaxScaler{
		state:    model.NewStateManager(),
		rangeMin: 0,
		rangeMax: 1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Fit computes the per-feature minimum and range of X.
func (m *MinMaxScaler) Fit(X mat.Matrix) error {
	nSamples, nFeatures := X.Dims()
	if nSamples == 0 || nFeatures == 0 {
		return errors.WithStack(errors.ErrEmptyData)
	}
	if m.rangeMax <= m.rangeMin {
		return errors.NewValidationError("featureRange", "max must be greater than min", [2]float64{m.rangeMin, m.rangeMax})
	}

	m.dataMin = make([]float64, nFeatures)
	m.scale = make([]float64, nFeatures)

	for j := 0; j < nFeatures; j++ {
		lo, hi := X.At(0, j), X.At(0, j)
		for i := 1; i < nSamples; i++ {
			v := X.At(i, j)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		m.dataMin[j] = lo
		if span := hi - lo; span > degenerateScale {
			m.scale[j] = span
		} else {
			m.scale[j] = 1.0
		}
	}

	m.state.SetDimensions(nFeatures, nSamples)
	m.state.SetFitted()
	return nil
}

// Transform rescales X into the target range with the fitted statistics.
func (m *MinMaxScaler) Transform(X mat.Matrix) (*mat.Dense, error) {
	if !m.state.IsFitted() {
		return nil, errors.NewNotFittedError("MinMaxScaler", "Transform")
	}

	nSamples, nFeatures := X.Dims()
	fitted := len(m.dataMin)
	if nFeatures != fitted {
		return nil, errors.NewDimensionError("MinMaxScaler.Transform", fitted, nFeatures, 1)
	}

	span := m.rangeMax - m.rangeMin
	out := mat.NewDense(nSamples, nFeatures, nil)
	for i := 0; i < nSamples; i++ {
		for j := 0; j < nFeatures; j++ {
			unit := (X.At(i, j) - m.dataMin[j]) / m.scale[j]
			out.Set(i, j, unit*span+m.rangeMin)
		}
	}
	return out, nil
}

// FitTransform fits the scaler on X and returns the rescaled X.
func (m *MinMaxScaler) FitTransform(X mat.Matrix) (*mat.Dense, error) {
	if err := m.Fit(X); err != nil {
		return nil, err
	}
	return m.Transform(X)
}

// InverseTransform maps rescaled data back to the original feature range.
func (m *MinMaxScaler) InverseTransform(X mat.Matrix) (*mat.Dense, error) {
	if !m.state.IsFitted() {
		return nil, errors.NewNotFittedError("MinMaxScaler", "InverseTransform")
	}

	nSamples, nFeatures := X.Dims()
	fitted := len(m.dataMin)
	if nFeatures != fitted {
		return nil, errors.NewDimensionError("MinMaxScaler.InverseTransform", fitted, nFeatures, 1)
	}

	span := m.rangeMax - m.rangeMin
	out := mat.NewDense(nSamples, nFeatures, nil)
	for i := 0; i < nSamples; i++ {
		for j := 0; j < nFeatures; j++ {
			unit := (X.At(i, j) - m.rangeMin) / span
			out.Set(i, j, unit*m.scale[j]+m.dataMin[j])
		}
	}
	return out, nil
}

// IsFitted reports whether Fit has completed.
func (m *MinMaxScaler) IsFitted() bool {
	return m.state.IsFitted()
}
