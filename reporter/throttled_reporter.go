package reporter

import (
	"sync"
	"time"

	"github.com/tqdm-go/tqdm"
)

// defaultReportInterval is the throttle gap used when none is given.
const defaultReportInterval = 500 * time.Millisecond

// ThrottledReporter wraps another reporter and caps the rate of advance
// events it forwards.
//
// Rules:
//   - The first event of an iteration is always forwarded.
//   - The event where Current reaches Total is always forwarded.
//   - Other events are forwarded only when the interval has elapsed
//     since the last forwarded event; the rest are dropped.
//
// This keeps append-only reporters like TextReporter and JSONReporter
// from emitting one line per step on fast loops. The reporter is safe
// for concurrent use and can be reused across iterations via Reset.
type ThrottledReporter struct {
	reporter tqdm.Reporter

	interval   time.Duration
	lastReport time.Time
	mu         sync.Mutex
}

// NewThrottledReporter wraps r with the default 500ms throttle interval.
func NewThrottledReporter(r tqdm.Reporter) *ThrottledReporter {
	return NewThrottledReporterWithInterval(r, defaultReportInterval)
}

// NewThrottledReporterWithInterval wraps r with a custom throttle interval.
func NewThrottledReporterWithInterval(r tqdm.Reporter, interval time.Duration) *ThrottledReporter {
	return &ThrottledReporter{
		reporter: r,
		interval: interval,
	}
}

// Report forwards the event to the wrapped reporter unless throttled.
func (t *ThrottledReporter) Report(event tqdm.Event) {
	normalize(&event)

	t.mu.Lock()
	now := time.Now()

	isFirst := event.Stage == tqdm.StageStart || t.lastReport.IsZero()
	isLast := event.Stage == tqdm.StageFinish || (event.Total > 0 && event.Current == event.Total)
	intervalElapsed := now.Sub(t.lastReport) >= t.interval

	if !isFirst && !isLast && !intervalElapsed {
		t.mu.Unlock()
		return
	}

	t.lastReport = now
	t.mu.Unlock()

	if t.reporter != nil {
		t.reporter.Report(event)
	}
}

// Reset clears the throttling state so the wrapped reporter can serve a
// new iteration.
func (t *ThrottledReporter) Reset() {
	t.mu.Lock()
	t.lastReport = time.Time{}
	t.mu.Unlock()
}
