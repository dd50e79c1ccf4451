package console

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/crypto-tester/internal/pkg/clock"
)

// Stopwatch measures time since Start until Stop.
type Stopwatch struct {
	clock   clock.Clock
	start   time.Time
	end     time.Time
	running bool
}

// NewStopwatch creates a stopped stopwatch reading from c.
func NewStopwatch(c clock.Clock) *Stopwatch {
	if c == nil {
		c = clock.RealClock{}
	}
	return &Stopwatch{clock: c}
}

// Start (re)starts the measurement.
func (s *Stopwatch) Start() {
	s.start = s.clock.Now()
	s.running = true
}

// Stop freezes the elapsed time.
func (s *Stopwatch) Stop() {
	if s.running {
		s.end = s.clock.Now()
		s.running = false
	}
}

// Elapsed returns the time measured so far.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.start.IsZero() {
		return 0
	}
	if s.running {
		return s.clock.Now().Sub(s.start)
	}
	return s.end.Sub(s.start)
}

// FormatElapsed renders d as whole seconds and milliseconds, e.g. "1.042".
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%d.%03d", d/time.Second, (d%time.Second)/time.Millisecond)
}
