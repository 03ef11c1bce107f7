// Package stopwatch provides an elapsed-time accumulator that survives
// stop/start cycles, used for in-game play time across pauses.
package stopwatch

import "time"

// Stopwatch accumulates the time elapsed while running. The zero value is a
// stopped stopwatch with nothing accumulated.
//
// Storing the accumulated duration separately from the open interval's start
// instant keeps pause/resume drift-free: stopping flushes the interval into
// the accumulator, restarting opens a fresh one. time.Now carries a
// monotonic clock reading, so wall-clock adjustments cannot skew the result.
type Stopwatch struct {
	accumulated time.Duration
	startedAt   time.Time
	running     bool
}

// Start opens a running interval at the current instant. Starting an
// already-running stopwatch resets the open interval without touching the
// accumulated time.
func (s *Stopwatch) Start() {
	s.startedAt = time.Now()
	s.running = true
}

// Stop flushes the open interval into the accumulator. No-op when the
// stopwatch is not running.
func (s *Stopwatch) Stop() {
	s.accumulated = s.Elapsed()
	s.running = false
}

// Elapsed returns the total accumulated time, including the live duration of
// the open interval when running. It never decreases.
func (s *Stopwatch) Elapsed() time.Duration {
	if !s.running {
		return s.accumulated
	}
	return s.accumulated + time.Since(s.startedAt)
}
