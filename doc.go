// Package tqdm wraps forward iteration with a terminal progress bar.
//
// The adapters decorate a range, a count, a slice, or an arbitrary
// sequence so that every advancement redraws a single progress line on
// the output stream, without changing the values the iteration produces:
//
//	for i := range tqdm.ForCount(0, 1000, tqdm.WithTitle("encode")) {
//	    work(i)
//	}
//
// Each line carries the title, an ASCII bar, the integer percentage, the
// completed/total counts, and an [estimated<elapsed] HH:MM:SS pair. Lines
// are carriage-return prefixed so successive renders overwrite in place;
// the final render appends a newline. Redraws are throttled to one per
// interval (default 100ms), except the first and the final render, which
// always go out.
//
// Progress state lives in a Tracker, which can also be driven by hand via
// Step and Render for loops that do not fit the adapter shapes. Structured
// consumers can subscribe a Reporter (see the reporter subpackage) to
// receive start/advance/finish events alongside the rendered bar.
//
// Rendering happens inline on the goroutine driving the iteration; a
// Tracker is not safe for concurrent advancement.
package tqdm
