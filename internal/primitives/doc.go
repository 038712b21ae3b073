// Package primitives provides the foundational, zero-dependency data structures
// behind the listx container.
//
// This package uses ONLY the Go standard library.
//
// Core invariants:
//   - Slot 0 is the head sentinel and slot 1 the tail sentinel; neither holds a value
//   - Following next from Head reaches Tail after exactly Len() live slots, and prev
//     from Tail mirrors it
//   - a.next[x] == y implies a.prev[y] == x outside of a single mutation
//   - Freed slots are recycled through an intrusive free list
//   - Slots are addressed by int32 indices, so an arena holds at most MaxSlot-1 values
package primitives
