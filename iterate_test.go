package tqdm

import (
	"bytes"
	"iter"
	"strings"
	"sync"
	"testing"
	"time"
)

// captureReporter records every event it receives.
type captureReporter struct {
	events []Event
	mu     sync.Mutex
}

func (c *captureReporter) Report(event Event) {
	c.mu.Lock()
	c.events = append(c.events, event)
	c.mu.Unlock()
}

func (c *captureReporter) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event{}, c.events...)
}

func TestForSliceEndToEnd(t *testing.T) {
	var buf bytes.Buffer
	items := []string{"a", "b", "c", "d", "e"}

	var got []string
	for v := range ForSlice(items, WithWriter(&buf), WithThrottleInterval(0)) {
		got = append(got, v)
	}

	if len(got) != 5 {
		t.Fatalf("yielded %d values, want 5", len(got))
	}
	for i, v := range got {
		if v != items[i] {
			t.Errorf("value %d = %q, want %q", i, v, items[i])
		}
	}

	out := buf.String()
	// Six renders: start plus one per step.
	if n := strings.Count(out, "\r"); n != 6 {
		t.Errorf("got %d renders, want 6: %q", n, out)
	}
	if !strings.Contains(out, "5/5") {
		t.Errorf("output missing 5/5: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("output does not end with newline: %q", out)
	}
	if !strings.Contains(out, "100%") {
		t.Errorf("output missing 100%%: %q", out)
	}
}

func TestForSliceEmpty(t *testing.T) {
	var buf bytes.Buffer

	n := 0
	for range ForSlice([]int{}, WithWriter(&buf)) {
		n++
	}

	if n != 0 {
		t.Errorf("yielded %d values for empty slice, want 0", n)
	}
	out := buf.String()
	// The single callback is the terminal one: a 0/0 line with newline.
	if !strings.Contains(out, "0/0") {
		t.Errorf("output missing 0/0: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("output does not end with newline: %q", out)
	}
}

func TestForRange(t *testing.T) {
	var buf bytes.Buffer

	var got []int
	for i := range ForRange(3, 8, WithWriter(&buf), WithThrottleInterval(0)) {
		got = append(got, i)
	}

	want := []int{3, 4, 5, 6, 7}
	if len(got) != len(want) {
		t.Fatalf("yielded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d = %d, want %d", i, got[i], want[i])
		}
	}
	if !strings.Contains(buf.String(), "5/5") {
		t.Errorf("output missing 5/5: %q", buf.String())
	}
}

func TestForRangeInverted(t *testing.T) {
	var buf bytes.Buffer
	n := 0
	for range ForRange(8, 3, WithWriter(&buf)) {
		n++
	}
	if n != 0 {
		t.Errorf("yielded %d values for inverted range, want 0", n)
	}
	if !strings.Contains(buf.String(), "0/0") {
		t.Errorf("output missing 0/0: %q", buf.String())
	}
}

func TestForCount(t *testing.T) {
	var buf bytes.Buffer

	var got []int
	for i := range ForCount(10, 3, WithWriter(&buf), WithThrottleInterval(0)) {
		got = append(got, i)
	}

	want := []int{10, 11, 12}
	if len(got) != len(want) {
		t.Fatalf("yielded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestForSeq(t *testing.T) {
	var buf bytes.Buffer
	seq := func(yield func(string) bool) {
		for _, v := range []string{"x", "y", "z"} {
			if !yield(v) {
				return
			}
		}
	}

	var got []string
	for v := range ForSeq(iter.Seq[string](seq), 3, WithWriter(&buf), WithThrottleInterval(0)) {
		got = append(got, v)
	}

	if len(got) != 3 {
		t.Fatalf("yielded %d values, want 3", len(got))
	}
	out := buf.String()
	if n := strings.Count(out, "\r"); n != 4 {
		t.Errorf("got %d renders, want 4: %q", n, out)
	}
	if !strings.Contains(out, "3/3") || !strings.HasSuffix(out, "\n") {
		t.Errorf("unexpected terminal output: %q", out)
	}
}

func TestForSeqTruncatesLongSequence(t *testing.T) {
	var buf bytes.Buffer
	seq := func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}

	n := 0
	for range ForSeq(iter.Seq[int](seq), 4, WithWriter(&buf), WithThrottleInterval(0)) {
		n++
	}

	if n != 4 {
		t.Errorf("yielded %d values from unbounded sequence, want 4", n)
	}
	if !strings.Contains(buf.String(), "4/4") {
		t.Errorf("output missing 4/4: %q", buf.String())
	}
}

func TestEarlyBreakSkipsTerminalRender(t *testing.T) {
	var buf bytes.Buffer

	for i := range ForCount(0, 10, WithWriter(&buf), WithThrottleInterval(0)) {
		if i == 2 {
			break
		}
	}

	out := buf.String()
	if strings.HasSuffix(out, "\n") {
		t.Errorf("abandoned iteration emitted terminal newline: %q", out)
	}
	if strings.Contains(out, "10/10") {
		t.Errorf("abandoned iteration rendered completion: %q", out)
	}
}

func TestThrottledIterationWrites(t *testing.T) {
	var buf bytes.Buffer
	clock := newFakeClock()

	// The clock never advances, so every intermediate redraw is inside
	// the throttle window: only the first and terminal renders write.
	for range ForCount(0, 50, WithWriter(&buf), WithClock(clock.Now),
		WithThrottleInterval(100*time.Millisecond)) {
	}

	if n := strings.Count(buf.String(), "\r"); n != 2 {
		t.Errorf("got %d writes with frozen clock, want 2: %q", n, buf.String())
	}
}

func TestReporterLifecycleEvents(t *testing.T) {
	var buf bytes.Buffer
	rec := &captureReporter{}

	for range ForCount(0, 3, WithWriter(&buf), WithReporters(rec), WithThrottleInterval(0)) {
	}

	events := rec.Events()
	// start + one advance per step + finish.
	if len(events) != 5 {
		t.Fatalf("got %d events, want 5: %+v", len(events), events)
	}
	if events[0].Stage != StageStart || events[0].Current != 0 {
		t.Errorf("first event = %+v, want start at 0", events[0])
	}
	for i := 1; i <= 3; i++ {
		if events[i].Stage != StageAdvance || events[i].Current != i {
			t.Errorf("event %d = %+v, want advance at %d", i, events[i], i)
		}
	}
	last := events[len(events)-1]
	if last.Stage != StageFinish || last.Current != 3 || last.Total != 3 {
		t.Errorf("last event = %+v, want finish at 3/3", last)
	}
}

func TestReporterEventsOnEmptyIteration(t *testing.T) {
	var buf bytes.Buffer
	rec := &captureReporter{}

	for range ForSlice([]int{}, WithWriter(&buf), WithReporters(rec)) {
	}

	events := rec.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events for empty iteration, want 2: %+v", len(events), events)
	}
	if events[0].Stage != StageStart || events[1].Stage != StageFinish {
		t.Errorf("events = %+v, want start then finish", events)
	}
}
