package hook

import "testing"

// intPos is a minimal forward position over integers for testing.
type intPos struct {
	i int
}

func (p intPos) Equal(o intPos) bool { return p.i == o.i }
func (p intPos) Next() intPos { return intPos{i: p.i + 1} }
func (p intPos) Value() int { return p.i }

func TestCallbackCount(t *testing.T) {
	for _, size := range []int{0, 1, 10} {
		calls := 0
		r := NewRange[intPos, int](intPos{i: 0}, intPos{i: size}, func(intPos) {
			calls++
		})
		for range r.All() {
		}
		if calls != size+1 {
			t.Errorf("size %d: callback fired %d times, want %d", size, calls, size+1)
		}
	}
}

func TestCallbackSeesPostAdvancementPosition(t *testing.T) {
	var seen []int
	r := NewRange[intPos, int](intPos{i: 3}, intPos{i: 6}, func(p intPos) {
		seen = append(seen, p.i)
	})
	for range r.All() {
	}

	want := []int{3, 4, 5, 6}
	if len(seen) != len(want) {
		t.Fatalf("callback positions = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("callback position %d = %d, want %d", i, seen[i], want[i])
		}
	}
}

func TestValuesUnchanged(t *testing.T) {
	r := NewRange[intPos, int](intPos{i: 0}, intPos{i: 5}, func(intPos) {})

	var got []int
	for v := range r.All() {
		got = append(got, v)
	}
	if len(got) != 5 {
		t.Fatalf("yielded %d values, want 5", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Errorf("value %d = %d, want %d", i, v, i)
		}
	}
}

func TestEarlyBreakSkipsTerminalCallback(t *testing.T) {
	calls := 0
	r := NewRange[intPos, int](intPos{i: 0}, intPos{i: 10}, func(intPos) {
		calls++
	})
	for v := range r.All() {
		if v == 2 {
			break
		}
	}

	// Begin plus the two advancements onto 1 and 2; the break skips the
	// advancement that would land on the end.
	if calls != 3 {
		t.Errorf("callback fired %d times after early break, want 3", calls)
	}
}

func TestCursorAdvanceChains(t *testing.T) {
	calls := 0
	r := NewRange[intPos, int](intPos{i: 0}, intPos{i: 3}, func(intPos) {
		calls++
	})

	cur, end := r.Begin(), r.End()
	for !cur.Equal(end) {
		cur.Advance()
	}

	if calls != 4 {
		t.Errorf("callback fired %d times over manual traversal, want 4", calls)
	}
	if cur.Pos().i != 3 {
		t.Errorf("cursor ended at %d, want 3", cur.Pos().i)
	}
}

func TestNilCallback(t *testing.T) {
	r := NewRange[intPos, int](intPos{i: 0}, intPos{i: 3}, nil)
	n := 0
	for range r.All() {
		n++
	}
	if n != 3 {
		t.Errorf("yielded %d values with nil callback, want 3", n)
	}
}
