package tqdm

import (
	"io"
	"iter"

	"github.com/tqdm-go/tqdm/hook"
)

// ForRange decorates iteration over the half-open interval [begin, end)
// with a progress bar, yielding each position in order. An end at or
// before begin yields nothing and renders a completed 0/0 line.
func ForRange(begin, end int, opts ...Option) iter.Seq[int] {
	if end < begin {
		end = begin
	}
	return forCount(begin, end-begin, newConfig(opts))
}

// ForCount decorates iteration over the n positions starting at begin
// with a progress bar, yielding begin, begin+1, ... begin+n-1.
func ForCount(begin, n int, opts ...Option) iter.Seq[int] {
	if n < 0 {
		n = 0
	}
	return forCount(begin, n, newConfig(opts))
}

func forCount(begin, n int, cfg *config) iter.Seq[int] {
	tr := newTracker(n, cfg)
	end := countPos{i: begin + n}
	fn := progressFunc(tr, cfg)
	r := hook.NewRange[countPos, int](countPos{i: begin}, end, func(p countPos) {
		fn(p.Equal(end))
	})
	return r.All()
}

// ForSlice decorates iteration over the elements of s with a progress
// bar. The slice header is captured by the adapter, so the range stays
// valid for the duration of the iteration even if the caller drops its
// own reference.
func ForSlice[S ~[]E, E any](s S, opts ...Option) iter.Seq[E] {
	cfg := newConfig(opts)
	tr := newTracker(len(s), cfg)
	end := slicePos[E]{s: s, i: len(s)}
	fn := progressFunc(tr, cfg)
	r := hook.NewRange[slicePos[E], E](slicePos[E]{s: s}, end, func(p slicePos[E]) {
		fn(p.Equal(end))
	})
	return r.All()
}

// ForSeq decorates an arbitrary sequence of known size with a progress
// bar. At most size elements are yielded; if seq runs short, the final
// newline-terminated render never fires, leaving the tracker in a valid
// non-terminal state. The sequence must remain valid while iterated.
func ForSeq[V any](seq iter.Seq[V], size int, opts ...Option) iter.Seq[V] {
	if size < 0 {
		size = 0
	}
	cfg := newConfig(opts)
	tr := newTracker(size, cfg)
	fn := progressFunc(tr, cfg)
	return func(yield func(V) bool) {
		taken := 0
		fn(taken == size)
		if size == 0 {
			return
		}
		for v := range seq {
			if !yield(v) {
				return
			}
			taken++
			fn(taken == size)
			if taken == size {
				return
			}
		}
	}
}

// progressFunc builds the advancement callback shared by all adapters:
// render on every invocation (throttled in the middle, forced at the
// end), step the tracker, and emit lifecycle events to any subscribed
// reporters. atEnd marks the invocation where the new position reached
// the end of the range.
func progressFunc(tr *Tracker, cfg *config) func(atEnd bool) {
	started := false
	return func(atEnd bool) {
		if !started {
			started = true
			cfg.report(tr.Snapshot(StageStart))
		}
		if atEnd {
			if line, ok := tr.Render(); ok {
				io.WriteString(cfg.writer, line)
			}
			cfg.report(tr.Snapshot(StageFinish))
			return
		}
		if line, ok := tr.Render(); ok {
			io.WriteString(cfg.writer, line)
		}
		tr.Step()
		cfg.report(tr.Snapshot(StageAdvance))
	}
}

// countPos is a forward position over integers.
type countPos struct {
	i int
}

func (p countPos) Equal(o countPos) bool { return p.i == o.i }
func (p countPos) Next() countPos { return countPos{i: p.i + 1} }
func (p countPos) Value() int { return p.i }

// slicePos is a forward position over the elements of a slice.
// Dereferencing the end position panics, per the slice's own contract;
// the hook adds no bounds checking.
type slicePos[E any] struct {
	s []E
	i int
}

func (p slicePos[E]) Equal(o slicePos[E]) bool { return p.i == o.i }
func (p slicePos[E]) Next() slicePos[E] { return slicePos[E]{s: p.s, i: p.i + 1} }
func (p slicePos[E]) Value() E { return p.s[p.i] }
