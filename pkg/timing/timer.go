// Package timing measures wall-clock durations of model-selection phases.
//
// A Timer is scoped to a single measured region: obtain one with Start,
// run the work, then call Stop. Named timers log their elapsed time through
// the pkg/log structured logger so the measurement lands next to the search
// logs it belongs to. Track is a convenience for deferred use:
//
//	defer timing.Start("grid search").Stop()
package timing

import (
	"time"

	"github.com/Vacek-Ace/moe/pkg/log"
)

// Timer measures the wall-clock time of one scoped region.
type Timer struct {
	name   string
	start  time.Time
	logger log.Logger
}

// Start begins timing a region. When name is non-empty, Stop logs the
// elapsed time under that name; an empty name makes the timer silent.
func Start(name string) *Timer {
	return &Timer{
		name:   name,
		start:  time.Now(),
		logger: log.GetLoggerWithName("timing"),
	}
}

// StartWithLogger begins timing a region that reports through the given
// logger instead of the package default.
func StartWithLogger(name string, logger log.Logger) *Timer {
	return &Timer{name: name, start: time.Now(), logger: logger}
}

// Stop ends the measurement and returns the elapsed wall-clock time. For a
// named timer it also logs the duration; stopping an unnamed timer only
// returns it.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	if t.name != "" {
		t.logger.Info("["+t.name+"] elapsed",
			log.DurationMsKey, elapsed.Milliseconds(),
			log.DurationSecondsKey, elapsed.Seconds(),
		)
	}
	return elapsed
}

// Elapsed returns the time passed since Start without stopping the timer.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Track times fn and returns how long it took, logging under name the same
// way a named Timer does.
func Track(name string, fn func()) time.Duration {
	timer := Start(name)
	fn()
	return timer.Stop()
}
