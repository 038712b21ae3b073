package listx

import (
	"fmt"

	"github.com/comalice/listx/internal/primitives"
)

// IterState is the position of an Iterator in its lifecycle.
type IterState int

const (
	// BeforeFirst: created, Next not yet called.
	BeforeFirst IterState = iota
	// Positioned: the last Next returned an element.
	Positioned
	// Exhausted: the tail was reached.
	Exhausted
	// Invalidated: the list changed after the iterator was created.
	Invalidated
	// Closed: Close was called.
	Closed
)

func (s IterState) String() string {
	switch s {
	case BeforeFirst:
		return "before_first"
	case Positioned:
		return "positioned"
	case Exhausted:
		return "exhausted"
	case Invalidated:
		return "invalidated"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("IterState(%d)", int(s))
	}
}

// Iterator walks a List forward, one element per Next call. It records the
// list's version at creation and fails with ErrModified once any mutation has
// happened since. An Iterator cannot be rewound; call List.Iterate again.
type Iterator[T comparable] struct {
	list  *List[T]
	cur   primitives.Index
	seen  uint64
	pos   int
	state IterState
}

// Iterate returns a new iterator positioned before the first element.
func (l *List[T]) Iterate() *Iterator[T] {
	l.lazyInit()
	return &Iterator[T]{
		list:  l,
		cur:   primitives.Head,
		seen:  l.version.Load(),
		pos:   -1,
		state: BeforeFirst,
	}
}

// Next advances the iterator. It returns the next element and true, or the zero
// value and false once the list is exhausted. If the list was mutated since the
// iterator was created and before it was exhausted, Next returns ErrModified
// instead, on this and every later call. Exhausted and Closed are terminal.
func (it *Iterator[T]) Next() (T, bool, error) {
	var zero T
	if it.state == Closed || it.state == Exhausted {
		return zero, false, nil
	}
	if it.list.version.Changed(it.seen) {
		it.state = Invalidated
		return zero, false, fmt.Errorf("iterator at %d: %w", it.pos, ErrModified)
	}

	it.cur = it.list.arena.Next(it.cur)
	if it.cur == primitives.Tail {
		it.state = Exhausted
		return zero, false, nil
	}
	it.pos++
	it.state = Positioned
	return it.list.arena.Value(it.cur), true, nil
}

// Index returns the position of the element last returned by Next, or -1.
func (it *Iterator[T]) Index() int {
	if it.state != Positioned {
		return -1
	}
	return it.pos
}

// State returns the iterator's lifecycle state.
func (it *Iterator[T]) State() IterState { return it.state }

// Close releases the iterator. Later Next calls report exhaustion. Close is idempotent.
func (it *Iterator[T]) Close() {
	it.state = Closed
}
