package model_selection

import (
	"fmt"
	"time"

	"github.com/Vacek-Ace/moe/pkg/log"
)

// SearchEnv carries the state handed to callbacks after each candidate
// evaluation completes.
type SearchEnv struct {
	Completed int    // candidates finished so far
	Total     int    // total candidates in the grid
	Params    Params // the candidate that just finished
	Scores    []float64
	MeanScore float64
	Elapsed   time.Duration
}

// SearchCallback is invoked after each candidate evaluation. Returning an
// error aborts the search. Callbacks run serialized; they never observe two
// invocations concurrently even when candidates are evaluated in parallel.
type SearchCallback func(env *SearchEnv) error

// PrintProgress prints a progress line every period completions.
func PrintProgress(period int) SearchCallback {
	if period < 1 {
		period = 1
	}
	return func(env *SearchEnv) error {
		if env.Completed%period == 0 || env.Completed == env.Total {
			fmt.Printf("[%d/%d] mean score: %.6f (params: %v)\n",
				env.Completed, env.Total, env.MeanScore, env.Params)
		}
		return nil
	}
}

// LogProgress reports candidate completions through a structured logger.
func LogProgress(logger log.Logger) SearchCallback {
	return func(env *SearchEnv) error {
		logger.Info("candidate evaluated",
			"completed", env.Completed,
			log.CandidatesKey, env.Total,
			"mean_score", env.MeanScore,
			"params", fmt.Sprintf("%v", env.Params),
			log.DurationMsKey, env.Elapsed.Milliseconds(),
		)
		return nil
	}
}

// RecordHistory appends a copy of every callback environment to history,
// in completion order.
func RecordHistory(history *[]SearchEnv) SearchCallback {
	return func(env *SearchEnv) error {
		*history = append(*history, *env)
		return nil
	}
}
