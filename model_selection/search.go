package model_selection

import (
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/Vacek-Ace/moe/core/model"
	"github.com/Vacek-Ace/moe/core/parallel"
	"github.com/Vacek-Ace/moe/metrics"
	"github.com/Vacek-Ace/moe/pkg/errors"
	"github.com/Vacek-Ace/moe/pkg/log"
)

// Factory constructs a fresh estimator from a parameter assignment. One
// estimator is created per grid candidate; it is refitted once per fold.
type Factory func(params Params) (model.Estimator, error)

// Scoring evaluates held-out predictions against true labels. Higher is
// better; the search maximizes the mean over folds.
type Scoring func(yTrue, yPred *mat.VecDense) (float64, error)

// CandidateResult is the outcome of evaluating one grid candidate across
// every fold.
type CandidateResult struct {
	Params    Params
	Scores    []float64 // per-fold scores, fold order
	MeanScore float64
}

// GridSearchCV is an exhaustive cross-validated hyperparameter search.
//
// Fit computes one stratified fold partition (shuffled with the configured
// random state) and evaluates every candidate of the parameter grid against
// that identical partition, so candidate scores stay comparable. Candidates
// are independent and may be evaluated concurrently up to the configured
// degree of parallelism; the result list always preserves grid enumeration
// order, and ties on the best mean score break toward the earlier candidate.
//
// There is no failure recovery: the first candidate error aborts the whole
// search and no partial results are retained.
type GridSearchCV struct {
	state *model.StateManager

	newEstimator Factory
	grid         ParamGrid
	scoring      Scoring
	cv           int
	nJobs        int
	randomState  int64
	fixedParams  Params
	callbacks    []SearchCallback
	logger       log.Logger

	results    []CandidateResult
	bestIndex  int
	bestParams Params
	bestMean   float64
	bestStd    float64
}

// GridSearchOption is a functional option for GridSearchCV.
type GridSearchOption func(*GridSearchCV)

// WithScoring sets the scoring function. Default is the scaled Matthews
// correlation coefficient.
func WithScoring(scoring Scoring) GridSearchOption {
	return func(s *GridSearchCV) {
		s.scoring = scoring
	}
}

// WithCV sets the fold count. Default is 10.
func WithCV(cv int) GridSearchOption {
	return func(s *GridSearchCV) {
		s.cv = cv
	}
}

// WithNJobs sets the degree of parallelism for candidate evaluation.
// nJobs <= 0 means use all available cores. Default is -1.
func WithNJobs(nJobs int) GridSearchOption {
	return func(s *GridSearchCV) {
		s.nJobs = nJobs
	}
}

// WithRandomState sets the seed used to shuffle the fold partition.
// Default is 1234.
func WithRandomState(seed int64) GridSearchOption {
	return func(s *GridSearchCV) {
		s.randomState = seed
	}
}

// WithFixedParams sets constructor arguments merged into every candidate,
// the analog of passing fixed keyword arguments next to the grid.
func WithFixedParams(fixed Params) GridSearchOption {
	return func(s *GridSearchCV) {
		s.fixedParams = fixed
	}
}

// WithCallbacks registers progress callbacks invoked after each candidate.
func WithCallbacks(callbacks ...SearchCallback) GridSearchOption {
	return func(s *GridSearchCV) {
		s.callbacks = append(s.callbacks, callbacks...)
	}
}

// WithLogger sets the structured logger used by Fit.
func WithLogger(logger log.Logger) GridSearchOption {
	return func(s *GridSearchCV) {
		s.logger = logger
	}
}

// NewGridSearchCV creates a grid search over estimators built by factory.
func NewGridSearchCV(factory Factory, grid ParamGrid, opts ...GridSearchOption) *GridSearchCV {
	s := &GridSearchCV{
		state:        model.NewStateManager(),
		newEstimator: factory,
		grid:         grid,
		scoring:      metrics.ScaledMatthewsCorrCoef,
		cv:           10,
		nJobs:        -1,
		randomState:  1234,
	}

	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.GetLoggerWithName("model_selection")
	}

	return s
}

// Fit runs the search on X and the label column vector y.
func (s *GridSearchCV) Fit(X, y mat.Matrix) error {
	s.state.Reset()

	if s.newEstimator == nil {
		return errors.NewValueError("GridSearchCV.Fit", "estimator factory must not be nil")
	}
	if s.grid == nil {
		return errors.WithStack(errors.ErrEmptyGrid)
	}

	// One fixed, shuffled partition per search, shared by every candidate.
	splitter := NewStratifiedKFold(s.cv, true, s.randomState)
	folds, err := splitter.Split(X, y)
	if err != nil {
		return err
	}

	candidates := s.grid.Enumerate()
	if len(candidates) == 0 {
		return errors.WithStack(errors.ErrEmptyGrid)
	}

	nSamples, nFeatures := X.Dims()
	workers := parallel.ResolveWorkers(s.nJobs, len(candidates))
	s.logger.Info("grid search started",
		log.OperationKey, "fit",
		log.SamplesKey, nSamples,
		log.FeaturesKey, nFeatures,
		log.CandidatesKey, len(candidates),
		log.FoldsKey, s.cv,
		log.WorkersKey, workers,
		log.SeedKey, s.randomState,
	)
	start := time.Now()

	results := make([]CandidateResult, len(candidates))

	var (
		progressMu sync.Mutex
		completed  int
	)
	notify := func(res CandidateResult) error {
		if len(s.callbacks) == 0 {
			progressMu.Lock()
			completed++
			progressMu.Unlock()
			return nil
		}
		progressMu.Lock()
		defer progressMu.Unlock()
		completed++
		env := &SearchEnv{
			Completed: completed,
			Total:     len(candidates),
			Params:    res.Params,
			Scores:    res.Scores,
			MeanScore: res.MeanScore,
			Elapsed:   time.Since(start),
		}
		for _, cb := range s.callbacks {
			if err := cb(env); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, params := range candidates {
		g.Go(func() error {
			res, err := s.evalCandidate(X, y, folds, params)
			if err != nil {
				return errors.Wrapf(err, "candidate %d", i)
			}
			results[i] = res
			return notify(res)
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("grid search failed", err, log.OperationKey, "fit")
		return err
	}

	// First-occurrence argmax over mean scores.
	bestIndex := 0
	for i := 1; i < len(results); i++ {
		if results[i].MeanScore > results[bestIndex].MeanScore {
			bestIndex = i
		}
	}

	s.results = results
	s.bestIndex = bestIndex
	s.bestParams = results[bestIndex].Params.Clone()
	s.bestMean = results[bestIndex].MeanScore
	s.bestStd = stat.PopStdDev(results[bestIndex].Scores, nil)

	s.state.SetDimensions(nFeatures, nSamples)
	s.state.SetFitted()

	s.logger.Info("grid search completed",
		log.OperationKey, "fit",
		log.BestScoreKey, s.bestMean,
		log.BestParamsKey, s.bestParams,
		log.DurationSecondsKey, time.Since(start).Seconds(),
	)
	return nil
}

// evalCandidate fits and scores one parameter assignment on every fold.
func (s *GridSearchCV) evalCandidate(X, y mat.Matrix, folds []CVFold, params Params) (CandidateResult, error) {
	merged := params.merge(s.fixedParams)

	est, err := s.newEstimator(merged)
	if err != nil {
		return CandidateResult{}, err
	}
	if est == nil {
		return CandidateResult{}, errors.NewValueError("GridSearchCV", "factory returned a nil estimator")
	}

	scores := make([]float64, 0, len(folds))
	for _, fold := range folds {
		trainX, trainY := takeRows(X, y, fold.TrainIndices)
		testX, testY := takeRows(X, y, fold.TestIndices)

		err := errors.SafeExecute("estimator fit", func() error {
			return est.Fit(trainX, trainY)
		})
		if err != nil {
			return CandidateResult{}, err
		}

		var preds mat.Matrix
		err = errors.SafeExecute("estimator predict", func() error {
			var predErr error
			preds, predErr = est.Predict(testX)
			return predErr
		})
		if err != nil {
			return CandidateResult{}, err
		}

		score, err := s.scoring(colToVec(testY), colToVec(preds))
		if err != nil {
			return CandidateResult{}, err
		}
		scores = append(scores, score)
	}

	return CandidateResult{
		Params:    params,
		Scores:    scores,
		MeanScore: stat.Mean(scores, nil),
	}, nil
}

// BestParams returns the winning parameter assignment.
func (s *GridSearchCV) BestParams() (Params, error) {
	if !s.state.IsFitted() {
		return nil, errors.NewNotFittedError("GridSearchCV", "BestParams")
	}
	return s.bestParams.Clone(), nil
}

// BestScore returns the winning candidate's mean fold score and the
// population standard deviation of its fold scores.
func (s *GridSearchCV) BestScore() (mean, std float64, err error) {
	if !s.state.IsFitted() {
		return 0, 0, errors.NewNotFittedError("GridSearchCV", "BestScore")
	}
	return s.bestMean, s.bestStd, nil
}

// BestIndex returns the winning candidate's position in enumeration order.
func (s *GridSearchCV) BestIndex() (int, error) {
	if !s.state.IsFitted() {
		return 0, errors.NewNotFittedError("GridSearchCV", "BestIndex")
	}
	return s.bestIndex, nil
}

// Results returns every candidate's outcome in grid enumeration order.
func (s *GridSearchCV) Results() ([]CandidateResult, error) {
	if !s.state.IsFitted() {
		return nil, errors.NewNotFittedError("GridSearchCV", "Results")
	}
	return s.results, nil
}

// IsFitted reports whether Fit has completed successfully.
func (s *GridSearchCV) IsFitted() bool {
	return s.state.IsFitted()
}
