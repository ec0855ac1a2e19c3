// Package reporter provides structured consumers for progress events:
// human-readable text, NDJSON, logr, channel, and throttled variants.
package reporter

import (
	"time"

	"github.com/tqdm-go/tqdm"
)

// normalize updates the event with calculated values.
// - Sets Timestamp to now if zero
// - Calculates Percent from Current/Total if Percent is zero and Total > 0
func normalize(e *tqdm.Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	if e.Percent == 0.0 && e.Total > 0 {
		e.Percent = float64(e.Current) / float64(e.Total) * 100.0
	}
}
