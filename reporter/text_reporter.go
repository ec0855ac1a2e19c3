package reporter

import (
	"fmt"
	"io"
	"sync"

	"github.com/tqdm-go/tqdm"
)

// TextReporter writes progress events as human-readable text with
// timestamps, one line per event. Unlike the in-place bar line, the
// output is append-only, which suits log files and CI output where
// carriage returns would be noise.
//
// Example output:
//
//	[17:06:14] encode: starting (0/1000)
//	[17:06:15] encode: 412/1000 (41.2%)
//	[17:06:16] encode: done (1000/1000)
//
// The reporter is safe for concurrent use.
type TextReporter struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewTextReporter creates a text progress reporter that writes to w.
// The writer is typically os.Stderr, but can be any io.Writer.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{
		writer: w,
	}
}

// Report writes a progress event as a timestamped text line.
// Events with a zero timestamp are stamped with the current time.
func (t *TextReporter) Report(event tqdm.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	normalize(&event)

	label := event.Title
	if label == "" {
		label = "progress"
	}
	stamp := event.Timestamp.Format("15:04:05")

	var output string
	switch event.Stage {
	case tqdm.StageStart:
		output = fmt.Sprintf("[%s] %s: starting (%d/%d)\n", stamp, label, event.Current, event.Total)
	case tqdm.StageAdvance:
		output = fmt.Sprintf("[%s] %s: %d/%d (%.1f%%)\n", stamp, label, event.Current, event.Total, event.Percent)
	case tqdm.StageFinish:
		output = fmt.Sprintf("[%s] %s: done (%d/%d)\n", stamp, label, event.Current, event.Total)
	default:
		output = fmt.Sprintf("[%s] %s: %d/%d\n", stamp, label, event.Current, event.Total)
	}

	t.writer.Write([]byte(output))
}
