// Package listx provides List, a mutable, indexable sequence backed by a
// doubly-linked chain of nodes bounded by head and tail sentinels.
//
// Positional access walks from whichever end is closer, so At, Set, Insert and
// RemoveAt traverse at most Len()/2 links. Iterators fail fast: once the list is
// mutated, including through Set, every iterator created before the mutation
// returns ErrModified on its next advance.
//
// A List is not safe for concurrent use; callers sharing one across goroutines
// must synchronise access themselves.
package listx

import (
	"fmt"
	"iter"
	"strings"

	"github.com/comalice/listx/internal/primitives"
	"github.com/comalice/listx/pkg/logger"
)

// List is a doubly-linked sequence of comparable values.
// The zero value is an empty list ready to use.
type List[T comparable] struct {
	arena   primitives.Arena[T]
	version primitives.Version
	name    string
	lggr    logger.Logger
}

// New returns an empty list.
func New[T comparable](opts ...Option) *List[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	l := &List[T]{name: cfg.name}
	if cfg.lggr != nil {
		l.lggr = cfg.lggr.Named("listx").With("list", cfg.name)
	}
	l.arena.Reset()
	return l
}

// Of returns a list holding values in order.
func Of[T comparable](values ...T) *List[T] {
	return From(values)
}

// From returns a list holding a copy of values in order.
func From[T comparable](values []T, opts ...Option) *List[T] {
	l := New[T](opts...)
	for _, v := range values {
		l.arena.InsertBefore(primitives.Tail, v)
	}
	return l
}

func (l *List[T]) lazyInit() {
	if l.arena.Cap() == 0 {
		l.arena.Reset()
	}
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.arena.Len() }

// Name returns the name given with WithName.
func (l *List[T]) Name() string { return l.name }

// Version returns the mutation counter. It changes on every Add, Insert, Set,
// RemoveAt, successful Remove and Clear.
func (l *List[T]) Version() uint64 { return l.version.Load() }

// At returns the element at index i.
func (l *List[T]) At(i int) (T, error) {
	if err := checkIndex("at", i, l.Len()); err != nil {
		var zero T
		return zero, err
	}
	return l.arena.Value(l.arena.Locate(i)), nil
}

// Set replaces the element at index i. Live iterators are invalidated even
// though the chain itself is unchanged.
func (l *List[T]) Set(i int, v T) error {
	if err := checkIndex("set", i, l.Len()); err != nil {
		return err
	}
	l.arena.SetValue(l.arena.Locate(i), v)
	l.changed("set", i)
	return nil
}

// Add appends v.
func (l *List[T]) Add(v T) {
	l.lazyInit()
	l.arena.InsertBefore(primitives.Tail, v)
	l.changed("add", l.Len()-1)
}

// Insert places v at index i, shifting later elements back. i may equal Len().
func (l *List[T]) Insert(i int, v T) error {
	if err := checkIndex("insert", i, l.Len()+1); err != nil {
		return err
	}
	l.lazyInit()
	l.arena.InsertBefore(l.arena.Locate(i), v)
	l.changed("insert", i)
	return nil
}

// RemoveAt removes the element at index i.
func (l *List[T]) RemoveAt(i int) error {
	if err := checkIndex("remove_at", i, l.Len()); err != nil {
		return err
	}
	l.arena.Unlink(l.arena.Locate(i))
	l.changed("remove_at", i)
	return nil
}

// Remove deletes the first element equal to v and reports whether one was found.
// Nothing changes when v is absent.
func (l *List[T]) Remove(v T) bool {
	pos, slot := l.find(v)
	if slot == primitives.None {
		return false
	}
	l.arena.Unlink(slot)
	l.changed("remove", pos)
	return true
}

// Contains reports whether some element equals v.
func (l *List[T]) Contains(v T) bool {
	_, slot := l.find(v)
	return slot != primitives.None
}

// IndexOf returns the index of the first element equal to v, or -1.
func (l *List[T]) IndexOf(v T) int {
	pos, _ := l.find(v)
	return pos
}

// Clear removes every element.
func (l *List[T]) Clear() {
	l.arena.Reset()
	l.changed("clear", -1)
}

// CopyTo copies the elements in order into dst starting at start. The rest of
// dst is left untouched.
func (l *List[T]) CopyTo(dst []T, start int) error {
	if dst == nil {
		return fmt.Errorf("copy_to: %w", ErrNilBuffer)
	}
	if start < 0 {
		return fmt.Errorf("copy_to: start offset %d: %w", start, ErrOutOfRange)
	}
	if l.Len() > len(dst)-start {
		return fmt.Errorf("copy_to: %d elements into %d slots from offset %d: %w",
			l.Len(), len(dst), start, ErrLengthMismatch)
	}
	l.walk(func(v T) {
		dst[start] = v
		start++
	})
	return nil
}

// Slice returns a new slice holding the elements in order.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.Len())
	l.walk(func(v T) { out = append(out, v) })
	return out
}

// All returns a range-over-func view of the list in forward order. Mutating the
// list while ranging panics with an error wrapping ErrModified.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := l.Iterate()
		defer it.Close()
		for i := 0; ; i++ {
			v, ok, err := it.Next()
			if err != nil {
				panic(fmt.Errorf("listx: range: %w", err))
			}
			if !ok || !yield(i, v) {
				return
			}
		}
	}
}

// Backward is like All but walks from the last element to the first.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l.arena.Cap() == 0 {
			return
		}
		seen := l.version.Load()
		i := l.Len() - 1
		for cur := l.arena.Prev(primitives.Tail); cur != primitives.Head; cur = l.arena.Prev(cur) {
			if !yield(i, l.arena.Value(cur)) {
				return
			}
			if l.version.Changed(seen) {
				panic(fmt.Errorf("listx: range: %w", ErrModified))
			}
			i--
		}
	}
}

// String renders the list as [a b c].
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	l.walk(func(v T) {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&b, v)
	})
	b.WriteByte(']')
	return b.String()
}

// Snapshot describes the chain slot by slot, sentinels included.
func (l *List[T]) Snapshot() primitives.Snapshot {
	l.lazyInit()
	return primitives.Snapshot{
		Name:        l.name,
		Len:         l.Len(),
		Version:     l.version.Load(),
		Fingerprint: primitives.Fingerprint(l.Slice()),
		Slots:       l.arena.Walk(func(v T) string { return fmt.Sprint(v) }),
	}
}

// Check verifies the chain's link invariants. It is meant for tests and debugging.
func (l *List[T]) Check() error {
	l.lazyInit()
	return l.arena.Check()
}

func (l *List[T]) find(v T) (int, primitives.Index) {
	if l.arena.Cap() == 0 {
		return -1, primitives.None
	}
	return l.arena.Find(func(x T) bool { return x == v })
}

func (l *List[T]) walk(fn func(T)) {
	if l.arena.Cap() == 0 {
		return
	}
	for cur := l.arena.Next(primitives.Head); cur != primitives.Tail; cur = l.arena.Next(cur) {
		fn(l.arena.Value(cur))
	}
}

func (l *List[T]) changed(op string, index int) {
	v := l.version.Bump()
	if l.lggr != nil {
		l.lggr.Debugw("list changed", "op", op, "index", index, "len", l.Len(), "version", v)
	}
}
