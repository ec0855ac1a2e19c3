package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/tqdm-go/tqdm"
)

// JSONReporter writes progress events as newline-delimited JSON (NDJSON).
//
// Each line is a complete, valid JSON object that can be parsed
// independently, making the format robust to interruptions and easy to
// stream into log aggregation or monitoring tools.
//
// Example output:
//
//	{"timestamp":"2026-08-24T17:06:14Z","stage":"start","title":"encode","total":1000}
//	{"timestamp":"2026-08-24T17:06:15Z","stage":"advance","title":"encode","current":412,"total":1000,"percent":41.2}
//	{"timestamp":"2026-08-24T17:06:16Z","stage":"finish","title":"encode","current":1000,"total":1000,"percent":100}
//
// The reporter is safe for concurrent use.
type JSONReporter struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewJSONReporter creates a JSON progress reporter that writes to w.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{
		writer: w,
	}
}

// Report writes a progress event as a single JSON line.
//
// Events with a zero timestamp are stamped with the current time before
// marshaling. Marshal and write errors are silently skipped so progress
// reporting never disrupts the iteration it observes.
func (j *JSONReporter) Report(event tqdm.Event) {
	j.mu.Lock()
	defer j.mu.Unlock()

	normalize(&event)

	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	fmt.Fprintln(j.writer, string(data))
}
