package reporter

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/go-logr/logr"
	"github.com/tqdm-go/tqdm"
)

// ChannelReporter sends progress events to a Go channel for programmatic
// consumption - custom UIs, dashboards, or anything else that wants the
// event stream instead of rendered output.
//
// Events are delivered with non-blocking sends on a buffered channel, so
// a slow consumer drops events rather than stalling the iteration.
//
// Always call Close when done to release resources and signal completion
// to consumers; cancelling the construction context closes the reporter
// automatically.
//
// Example:
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	rep := reporter.NewChannelReporter(ctx)
//
//	go func() {
//	    for event := range rep.Events() {
//	        fmt.Printf("progress: %d%%\n", int(event.Percent))
//	    }
//	}()
//
//	for v := range tqdm.ForSlice(items, tqdm.WithReporters(rep)) {
//	    work(v)
//	}
type ChannelReporter struct {
	events        chan tqdm.Event
	mu            sync.RWMutex
	closed        bool
	droppedEvents atomic.Uint64
	log           logr.Logger
}

// ChannelReporterOption configures a ChannelReporter.
type ChannelReporterOption func(*ChannelReporter)

// WithLogger sets a logger used to note dropped events.
func WithLogger(log logr.Logger) ChannelReporterOption {
	return func(r *ChannelReporter) {
		r.log = log
	}
}

// NewChannelReporter creates a channel-based progress reporter.
//
// The channel is buffered (capacity 100) so reporting does not block the
// iteration. The reporter closes itself when ctx is cancelled; Close may
// also be called directly.
func NewChannelReporter(ctx context.Context, opts ...ChannelReporterOption) *ChannelReporter {
	r := &ChannelReporter{
		events: make(chan tqdm.Event, 100),
		log:    logr.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}

	go func() {
		<-ctx.Done()
		r.Close()
	}()

	return r
}

// Report sends a progress event to the channel.
//
// The send is non-blocking: if the buffer is full the event is dropped
// and counted. Reporting to a closed reporter is a safe no-op.
func (c *ChannelReporter) Report(event tqdm.Event) {
	normalize(&event)

	// Hold the read lock for the whole send so Close cannot close the
	// channel mid-send.
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return
	}

	select {
	case c.events <- event:
	default:
		dropped := c.droppedEvents.Add(1)
		c.log.V(1).Info("dropped progress event", "dropped_total", dropped)
	}
}

// Events returns the channel consumers read events from. The channel is
// closed when the reporter closes.
func (c *ChannelReporter) Events() <-chan tqdm.Event {
	return c.events
}

// DroppedEvents returns how many events were dropped due to backpressure.
func (c *ChannelReporter) DroppedEvents() uint64 {
	return c.droppedEvents.Load()
}

// Close closes the event channel. Safe to call more than once.
func (c *ChannelReporter) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.events)
}
