// Package bar renders fractional progress as a fixed-width string of glyphs.
//
// The renderer is stateless: callers pass the completion fraction, the bar
// width in cells, and an ordered glyph set running from "empty" to "full".
// Glyph sets with more than two entries get sub-cell resolution, where the
// cell at the fill boundary is drawn with an intermediate glyph.
//
// Example:
//
//	line := bar.Render(0.42, 25, bar.DefaultGlyphs)
//	fmt.Fprintf(os.Stderr, "|%s|", line)
package bar

import "strings"

// DefaultGlyphs is the eighth-block glyph set: a space for empty cells,
// seven partial blocks, and a full block. It gives the finest sub-cell
// resolution a monospace terminal can show.
var DefaultGlyphs = []string{" ", "▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"}

// BlockGlyphs is a coarse two-glyph set with no sub-cell resolution.
var BlockGlyphs = []string{"░", "█"}

// epsilon keeps a fraction of exactly 1.0 from overflowing the unit count
// after floating-point rounding.
const epsilon = 1e-5

// Render returns a string of exactly width glyph cells representing how much
// of the bar is filled.
//
// fraction is expected in [0, 1]. glyphs must be ordered from empty to full
// with at least two entries; fewer than two falls back to DefaultGlyphs.
// A non-positive width returns the empty string.
//
// Note that a fraction of zero still draws the lowest sub-glyph in the first
// cell rather than a fully empty bar: the unit formula always spends its
// remainder on one boundary cell. Callers that want a blank bar at zero
// progress should special-case it themselves.
func Render(fraction float64, width int, glyphs []string) string {
	if width <= 0 {
		return ""
	}
	if len(glyphs) < 2 {
		glyphs = DefaultGlyphs
	}

	sub := len(glyphs) - 1
	units := int((fraction - epsilon) * float64(width) * float64(sub))
	if units < 0 {
		units = 0
	}
	full := units / sub
	if full >= width {
		full = width
	}

	var b strings.Builder
	for i := 0; i < full; i++ {
		b.WriteString(glyphs[len(glyphs)-1])
	}
	if full < width {
		// Boundary cell: one sub-glyph for the remainder, then padding.
		b.WriteString(glyphs[units%sub+1])
		for i := 0; i < width-full-1; i++ {
			b.WriteString(glyphs[0])
		}
	}
	return b.String()
}
