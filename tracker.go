package tqdm

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const (
	// DefaultThrottleInterval is the minimum gap between two redraws.
	DefaultThrottleInterval = 100 * time.Millisecond

	// DefaultWidth is the cell width of the inline bar.
	DefaultWidth = 10
)

// config carries the settings shared by Tracker construction and the
// iteration adapters.
type config struct {
	title     string
	width     int
	interval  time.Duration
	clock     func() time.Time
	writer    io.Writer
	reporters []Reporter
}

func newConfig(opts []Option) *config {
	cfg := &config{
		width:    DefaultWidth,
		interval: DefaultThrottleInterval,
		clock:    time.Now,
		writer:   os.Stderr,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *config) report(event Event) {
	for _, r := range c.reporters {
		r.Report(event)
	}
}

// Option configures a Tracker or an iteration adapter.
type Option func(*config)

// WithTitle sets the display label prepended to the progress line.
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithWidth sets the cell width of the inline bar. A non-positive width
// renders an empty bar.
func WithWidth(width int) Option {
	return func(c *config) {
		c.width = width
	}
}

// WithThrottleInterval sets the minimum wall-clock gap between two redraws.
// The first render and the render at completion are never throttled.
// Zero disables throttling entirely.
func WithThrottleInterval(d time.Duration) Option {
	return func(c *config) {
		c.interval = d
	}
}

// WithWriter sets the stream the progress line is written to.
// Defaults to os.Stderr. The writer must outlive the iteration.
//
// Only the iteration adapters write; a Tracker constructed directly via
// New never touches the stream.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.writer = w
		}
	}
}

// WithClock sets the time source used for throttling and duration
// estimates. Defaults to time.Now. Mainly useful in tests.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.clock = now
		}
	}
}

// WithReporters subscribes one or more reporters to the start, advance,
// and finish events of the iteration.
func WithReporters(reporters ...Reporter) Option {
	return func(c *config) {
		c.reporters = append(c.reporters, reporters...)
	}
}

// Tracker holds the progress state of one iteration: the expected step
// count, the steps completed so far, and the timing needed for throttled
// rendering and duration estimates.
//
// A Tracker renders itself to a string; it never writes to a stream. It is
// exclusively owned by the iteration that drives it and is not safe for
// concurrent use.
type Tracker struct {
	total    int
	title    string
	width    int
	interval time.Duration
	clock    func() time.Time

	completed   int
	firstRender bool
	start       time.Time
	current     time.Time
	lastRender  time.Time
}

// New creates a Tracker expecting total steps. A total of zero is valid
// and renders as 0/0 at completion. Negative totals are treated as zero.
func New(total int, opts ...Option) *Tracker {
	return newTracker(total, newConfig(opts))
}

func newTracker(total int, cfg *config) *Tracker {
	if total < 0 {
		total = 0
	}
	t := &Tracker{
		total:    total,
		title:    cfg.title,
		width:    cfg.width,
		interval: cfg.interval,
		clock:    cfg.clock,
	}
	t.Reset()
	return t
}

// Reset rewinds the tracker to zero completed steps and restarts the
// clock. The total and title are kept.
func (t *Tracker) Reset() {
	t.completed = 0
	t.firstRender = true
	t.start = t.clock()
}

// Step records one completed step and refreshes the current time.
// Past the total it is a no-op; the returned count never exceeds the
// total.
func (t *Tracker) Step() int {
	if t.completed < t.total {
		t.completed++
		t.current = t.clock()
	}
	return t.completed
}

// IsEnd reports whether every expected step has completed.
func (t *Tracker) IsEnd() bool {
	return t.completed >= t.total
}

// Completed returns the number of steps taken so far.
func (t *Tracker) Completed() int { return t.completed }

// Total returns the expected number of steps.
func (t *Tracker) Total() int { return t.total }

// Title returns the display label.
func (t *Tracker) Title() string { return t.title }

// Percent returns the completion percentage in [0, 100].
// A zero total counts as zero percent.
func (t *Tracker) Percent() float64 {
	return t.processed() * 100.0
}

func (t *Tracker) processed() float64 {
	if t.total == 0 {
		return 0
	}
	return float64(t.completed) / float64(t.total)
}

// Elapsed returns the time between the start of the iteration and the
// most recent step. Zero before the first step.
func (t *Tracker) Elapsed() time.Duration {
	if t.completed == 0 {
		return 0
	}
	return t.current.Sub(t.start)
}

// Estimated returns the projected total duration, extrapolated from the
// average step time so far. Zero before the first step.
func (t *Tracker) Estimated() time.Duration {
	if t.completed == 0 {
		return 0
	}
	return time.Duration(int64(t.Elapsed()) * int64(t.total) / int64(t.completed))
}

// Remaining returns the projected time left, extrapolated from the
// average step time so far. Zero before the first step.
//
// The rendered line shows [estimated<elapsed]; Remaining is exposed for
// callers composing their own line.
func (t *Tracker) Remaining() time.Duration {
	if t.completed == 0 {
		return 0
	}
	return time.Duration(int64(t.Elapsed()) * int64(t.total-t.completed) / int64(t.completed))
}

// Snapshot captures the current state as an Event with the given stage.
func (t *Tracker) Snapshot(stage Stage) Event {
	return Event{
		Timestamp: t.clock(),
		Stage:     stage,
		Title:     t.title,
		Current:   t.completed,
		Total:     t.total,
		Percent:   t.Percent(),
	}
}

// Render composes the progress line, or reports ok=false when the redraw
// is suppressed by the throttle interval. The first render and any render
// at completion are never suppressed.
//
// The line is prefixed with a carriage return so repeated renders
// overwrite the same terminal row, and the render at completion carries a
// trailing newline. Format:
//
//	<title> [====      ] 40% 4/10 [00:00:25<00:00:10]
//
// The bracket pair is the estimated total duration and the elapsed
// duration, both HH:MM:SS with unbounded hours.
func (t *Tracker) Render() (string, bool) {
	now := t.clock()
	if !t.firstRender && !t.IsEnd() && now.Sub(t.lastRender) < t.interval {
		return "", false
	}
	t.lastRender = now
	t.firstRender = false

	processed := t.processed()

	var b strings.Builder
	b.WriteByte('\r')
	b.WriteString(t.title)
	b.WriteString(" [")
	for i := 0; i < t.width; i++ {
		if float64(i)/float64(t.width) <= processed {
			b.WriteByte('=')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteString("]")
	fmt.Fprintf(&b, " %d%%", int(processed*100))
	fmt.Fprintf(&b, " %d/%d", t.completed, t.total)
	fmt.Fprintf(&b, " [%s<%s]", formatClock(t.Estimated()), formatClock(t.Elapsed()))
	if t.IsEnd() {
		b.WriteByte('\n')
	}
	return b.String(), true
}

// formatClock renders a duration as HH:MM:SS. Hours grow without bound;
// there is no day rollover.
func formatClock(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", ms/3600000, (ms%3600000)/60000, (ms%60000)/1000)
}
