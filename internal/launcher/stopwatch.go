// SPDX-License-Identifier: MPL-2.0

package launcher

import "time"

type (
	// Clock reads the time. time.Now carries a monotonic reading, so elapsed
	// durations from the system clock are immune to wall-clock changes.
	Clock interface {
		Now() time.Time
		Since(t time.Time) time.Duration
	}

	// Stopwatch measures elapsed time since the launcher started. It is
	// created once at entry and passed to the code that needs timing stamps.
	Stopwatch struct {
		clock Clock
		start time.Time
	}

	systemClock struct{}
)

// StartStopwatch starts a stopwatch on clock; nil means the system clock.
func StartStopwatch(clock Clock) *Stopwatch {
	if clock == nil {
		clock = systemClock{}
	}
	return &Stopwatch{clock: clock, start: clock.Now()}
}

// ElapsedMicros returns the microseconds elapsed since the stopwatch started.
func (s *Stopwatch) ElapsedMicros() int64 {
	return s.clock.Since(s.start).Microseconds()
}

func (systemClock) Now() time.Time                  { return time.Now() }
func (systemClock) Since(t time.Time) time.Duration { return time.Since(t) }
