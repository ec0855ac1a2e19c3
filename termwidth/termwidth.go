// Package termwidth queries the column width of an attached terminal.
//
// The progress core never calls it; callers who want to size the bar to
// the terminal do so explicitly:
//
//	w := termwidth.Width(os.Stderr)
//	for v := range tqdm.ForSlice(items, tqdm.WithWidth(w-40)) {
//	    ...
//	}
package termwidth

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is returned when the file is not a terminal or the size
// query fails, so callers always get a usable column count.
const DefaultWidth = 80

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the column count of the terminal attached to f, or
// DefaultWidth when f is not a terminal or the query fails.
func Width(f *os.File) int {
	if !IsTerminal(f) {
		return DefaultWidth
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}
