package reporter

import (
	"github.com/go-logr/logr"
	"github.com/tqdm-go/tqdm"
)

// LogReporter emits progress events through a logr.Logger, letting
// progress flow into whatever logging backend the host program already
// configured.
//
// Start and finish are logged at V(0); per-step advance events at V(1)
// so default verbosity stays quiet on fast loops. Pair with
// ThrottledReporter when even V(1) would be too chatty.
type LogReporter struct {
	log logr.Logger
}

// NewLogReporter creates a reporter that logs events via log.
func NewLogReporter(log logr.Logger) *LogReporter {
	return &LogReporter{log: log}
}

// Report logs a progress event with structured key/value pairs.
func (l *LogReporter) Report(event tqdm.Event) {
	normalize(&event)

	keysAndValues := []interface{}{
		"title", event.Title,
		"current", event.Current,
		"total", event.Total,
		"percent", event.Percent,
	}

	switch event.Stage {
	case tqdm.StageStart:
		l.log.Info("progress started", keysAndValues...)
	case tqdm.StageFinish:
		l.log.Info("progress finished", keysAndValues...)
	default:
		l.log.V(1).Info("progress", keysAndValues...)
	}
}
