package primitives

import (
	"errors"
	"fmt"
	"math"
)

// Index addresses a slot in an Arena.
type Index int32

const (
	// Head is the slot of the head sentinel.
	Head Index = 0
	// Tail is the slot of the tail sentinel.
	Tail Index = 1
	// None marks an absent link.
	None Index = -1
)

// MaxSlot is the highest slot an Index can address. An arena holds at most
// MaxSlot-1 values; allocating past that panics.
const MaxSlot = math.MaxInt32

// slotLimit is MaxSlot, lowered in tests.
var slotLimit = MaxSlot

// ErrCorrupt is returned by Check when the link structure is inconsistent.
var ErrCorrupt = errors.New("arena: corrupt chain")

type slot[T any] struct {
	value T
	prev  Index
	next  Index
	live  bool
}

// Arena is a doubly-linked chain of values whose links are slot indices
// rather than pointers. It is not safe for concurrent use.
type Arena[T any] struct {
	slots []slot[T]
	free  Index
	count int
}

// NewArena returns an empty arena with both sentinels linked to each other.
func NewArena[T any]() *Arena[T] {
	a := &Arena[T]{}
	a.Reset()
	return a
}

// Reset drops every node and relinks the sentinels.
func (a *Arena[T]) Reset() {
	clear(a.slots)
	a.slots = append(a.slots[:0],
		slot[T]{prev: None, next: Tail},
		slot[T]{prev: Head, next: None},
	)
	a.free = None
	a.count = 0
}

// Len returns the number of value-holding nodes.
func (a *Arena[T]) Len() int { return a.count }

// Cap returns the number of allocated slots, sentinels and free slots included.
func (a *Arena[T]) Cap() int { return len(a.slots) }

// Next returns the slot following i.
func (a *Arena[T]) Next(i Index) Index { return a.slots[i].next }

// Prev returns the slot preceding i.
func (a *Arena[T]) Prev(i Index) Index { return a.slots[i].prev }

// Value returns the value stored at slot i.
func (a *Arena[T]) Value(i Index) T { return a.slots[i].value }

// SetValue replaces the value stored at slot i.
func (a *Arena[T]) SetValue(i Index, v T) { a.slots[i].value = v }

// IsSentinel reports whether i is the head or tail sentinel.
func IsSentinel(i Index) bool { return i == Head || i == Tail }

// Locate returns the slot at position pos, 0 <= pos <= Len(). Position Len()
// resolves to Tail. Positions in the first half are reached from Head, the rest
// from Tail, so no lookup walks more than Len()/2 links.
func (a *Arena[T]) Locate(pos int) Index {
	i, _ := a.locate(pos)
	return i
}

// locate is Locate that also reports how many links it followed past the
// first node.
func (a *Arena[T]) locate(pos int) (Index, int) {
	if pos == a.count {
		return Tail, 0
	}
	steps := 0
	if pos < a.count/2 {
		cur := a.slots[Head].next
		for ; pos > 0; pos-- {
			cur = a.slots[cur].next
			steps++
		}
		return cur, steps
	}
	cur := a.slots[Tail].prev
	for back := a.count - 1 - pos; back > 0; back-- {
		cur = a.slots[cur].prev
		steps++
	}
	return cur, steps
}

// InsertBefore links a new node holding v in front of at and returns its slot.
func (a *Arena[T]) InsertBefore(at Index, v T) Index {
	n := a.alloc(v)
	p := a.slots[at].prev

	a.slots[n].prev = p
	a.slots[n].next = at
	a.slots[p].next = n
	a.slots[at].prev = n

	a.count++
	return n
}

// Unlink removes the node at slot i, relinking its neighbours, and returns its value.
// The slot goes back on the free list.
func (a *Arena[T]) Unlink(i Index) T {
	s := a.slots[i]
	a.slots[s.prev].next = s.next
	a.slots[s.next].prev = s.prev
	a.release(i)
	a.count--
	return s.value
}

// Find returns the position and slot of the first node whose value satisfies match,
// or (-1, None).
func (a *Arena[T]) Find(match func(T) bool) (int, Index) {
	pos := 0
	for cur := a.slots[Head].next; cur != Tail; cur = a.slots[cur].next {
		if match(a.slots[cur].value) {
			return pos, cur
		}
		pos++
	}
	return -1, None
}

// Check walks the chain in both directions and verifies the link invariants.
func (a *Arena[T]) Check() error {
	seen := 0
	prev := Head
	for cur := a.slots[Head].next; cur != Tail; cur = a.slots[cur].next {
		if cur < 0 || int(cur) >= len(a.slots) || IsSentinel(cur) || !a.slots[cur].live {
			return fmt.Errorf("%w: forward walk hit slot %d", ErrCorrupt, cur)
		}
		if a.slots[cur].prev != prev {
			return fmt.Errorf("%w: slot %d prev=%d, want %d", ErrCorrupt, cur, a.slots[cur].prev, prev)
		}
		seen++
		if seen > a.count {
			return fmt.Errorf("%w: forward walk exceeds count %d", ErrCorrupt, a.count)
		}
		prev = cur
	}
	if a.slots[Tail].prev != prev {
		return fmt.Errorf("%w: tail prev=%d, want %d", ErrCorrupt, a.slots[Tail].prev, prev)
	}
	if seen != a.count {
		return fmt.Errorf("%w: forward walk saw %d nodes, count %d", ErrCorrupt, seen, a.count)
	}

	seen = 0
	for cur := a.slots[Tail].prev; cur != Head; cur = a.slots[cur].prev {
		seen++
		if seen > a.count {
			return fmt.Errorf("%w: backward walk exceeds count %d", ErrCorrupt, a.count)
		}
	}
	if seen != a.count {
		return fmt.Errorf("%w: backward walk saw %d nodes, count %d", ErrCorrupt, seen, a.count)
	}
	return nil
}

func (a *Arena[T]) alloc(v T) Index {
	if a.free != None {
		i := a.free
		a.free = a.slots[i].next
		a.slots[i] = slot[T]{value: v, live: true}
		return i
	}
	if len(a.slots) > slotLimit {
		panic(fmt.Sprintf("primitives: arena full, %d slots exceed the Index range", len(a.slots)))
	}
	a.slots = append(a.slots, slot[T]{value: v, live: true})
	return Index(len(a.slots) - 1)
}

// release zeroes the slot so the arena does not pin the old value.
func (a *Arena[T]) release(i Index) {
	a.slots[i] = slot[T]{prev: None, next: a.free}
	a.free = i
}
