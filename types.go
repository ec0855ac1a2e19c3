package tqdm

import "time"

// Reporter is the interface for consuming progress events.
//
// Reporters receive one event at the start of an iteration, one per
// advancement, and one on completion. The reporter subpackage provides
// text, JSON, channel, log, and throttled implementations.
//
// Report is called inline from the goroutine driving the iteration and
// should not block.
type Reporter interface {
	Report(event Event)
}

// Event represents a progress update at a specific point in time.
type Event struct {
	// Timestamp is when the event occurred. If not set by the caller,
	// reporters will populate it automatically.
	Timestamp time.Time `json:"timestamp"`

	// Stage indicates where in the iteration lifecycle this event sits.
	Stage Stage `json:"stage"`

	// Title is the display label of the tracker that emitted the event.
	Title string `json:"title,omitempty"`

	// Current is the number of steps completed so far.
	Current int `json:"current,omitempty"`

	// Total is the expected number of steps.
	Total int `json:"total,omitempty"`

	// Percent is the completion percentage (0-100).
	// Reporters calculate it from Current and Total if not set.
	Percent float64 `json:"percent,omitempty"`
}

// Stage represents a phase of the iteration lifecycle.
//
// Stages occur in sequence:
//  1. StageStart - iteration obtained, no steps taken yet
//  2. StageAdvance - one step completed (repeats per step)
//  3. StageFinish - all steps completed
type Stage string

const (
	// StageStart is emitted once when iteration begins, before any step.
	StageStart Stage = "start"

	// StageAdvance is emitted after each completed step.
	StageAdvance Stage = "advance"

	// StageFinish is emitted when the final step completes. An abandoned
	// iteration never emits it.
	StageFinish Stage = "finish"
)

// NoopReporter discards all events.
//
// It is the zero-overhead default for callers that configure no reporter.
type NoopReporter struct{}

// NewNoopReporter creates a new no-op progress reporter.
func NewNoopReporter() *NoopReporter {
	return &NoopReporter{}
}

// Report discards the event without any action.
func (n *NoopReporter) Report(event Event) {
	// Intentionally empty - no-op implementation
}
