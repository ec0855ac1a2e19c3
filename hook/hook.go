// Package hook decorates forward iteration with a per-advancement callback.
//
// A Range wraps a begin/end position pair and a callback. Obtaining the
// begin cursor fires the callback once with the begin position; every
// advancement fires it again with the new position, including the final
// advancement onto the end position. Over a full traversal of n elements
// the callback therefore runs exactly n+1 times, and the last invocation
// sees the end position.
//
// The hook adds no bounds checking and no value semantics of its own;
// dereference and equality delegate to the underlying position.
package hook

import "iter"

// Position is the minimal forward-iteration contract: equality comparison,
// dereference, and forward advancement. Next returns the successor position
// and must not mutate the receiver.
type Position[P, V any] interface {
	Equal(P) bool
	Next() P
	Value() V
}

// Range couples a begin/end position pair with an advancement callback.
// The end position is fixed at construction.
type Range[P Position[P, V], V any] struct {
	begin P
	end   P
	fn    func(P)
}

// NewRange creates a Range over [begin, end) that fires fn on obtaining the
// begin cursor and after every advancement. A nil fn disables the hook.
func NewRange[P Position[P, V], V any](begin, end P, fn func(P)) *Range[P, V] {
	return &Range[P, V]{begin: begin, end: end, fn: fn}
}

// Begin fires the callback with the begin position and returns a cursor
// placed there.
func (r *Range[P, V]) Begin() *Cursor[P, V] {
	if r.fn != nil {
		r.fn(r.begin)
	}
	return &Cursor[P, V]{pos: r.begin, fn: r.fn}
}

// End returns a cursor placed at the end position. It exists for equality
// comparison; advancing it is whatever the underlying position defines.
func (r *Range[P, V]) End() *Cursor[P, V] {
	return &Cursor[P, V]{pos: r.end, fn: r.fn}
}

// All adapts the range to a standard sequence. The values yielded are
// exactly those of the undecorated traversal; the callback fires alongside.
// Breaking out of the loop skips the remaining advancements, so the
// terminal callback does not fire on early exit.
func (r *Range[P, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		cur, end := r.Begin(), r.End()
		for !cur.Equal(end) {
			if !yield(cur.Value()) {
				return
			}
			cur.Advance()
		}
	}
}

// Cursor wraps a position and the shared advancement callback.
type Cursor[P Position[P, V], V any] struct {
	pos P
	fn  func(P)
}

// Pos returns the wrapped position.
func (c *Cursor[P, V]) Pos() P { return c.pos }

// Value dereferences the wrapped position.
func (c *Cursor[P, V]) Value() V { return c.pos.Value() }

// Equal reports whether both cursors wrap equal positions.
func (c *Cursor[P, V]) Equal(o *Cursor[P, V]) bool { return c.pos.Equal(o.pos) }

// Advance moves the cursor forward, fires the callback with the new
// position, and returns the cursor to support chained advancement.
func (c *Cursor[P, V]) Advance() *Cursor[P, V] {
	c.pos = c.pos.Next()
	if c.fn != nil {
		c.fn(c.pos)
	}
	return c
}
