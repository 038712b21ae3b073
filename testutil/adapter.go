// Package testutil provides a common sequence interface so the same checks run
// against listx.List and a slice-backed reference model.
package testutil

import (
	"slices"

	"github.com/comalice/listx"
)

// SequenceAdapter is the operation set shared by List and Model.
type SequenceAdapter[T comparable] interface {
	Len() int
	At(i int) (T, error)
	Set(i int, v T) error
	Add(v T)
	Insert(i int, v T) error
	RemoveAt(i int) error
	Remove(v T) bool
	IndexOf(v T) int
	Contains(v T) bool
	Clear()
	Slice() []T
}

var (
	_ SequenceAdapter[int] = (*listx.List[int])(nil)
	_ SequenceAdapter[int] = (*Model[int])(nil)
)

// Model is a slice-backed reference implementation of SequenceAdapter. It
// returns the same error kinds as List but makes no attempt at efficiency.
type Model[T comparable] struct {
	items []T
}

// NewModel returns a model holding a copy of values.
func NewModel[T comparable](values ...T) *Model[T] {
	return &Model[T]{items: slices.Clone(values)}
}

func (m *Model[T]) Len() int { return len(m.items) }

func (m *Model[T]) At(i int) (T, error) {
	if i < 0 || i >= len(m.items) {
		var zero T
		return zero, &listx.IndexError{Op: "at", Index: i, Bound: len(m.items)}
	}
	return m.items[i], nil
}

func (m *Model[T]) Set(i int, v T) error {
	if i < 0 || i >= len(m.items) {
		return &listx.IndexError{Op: "set", Index: i, Bound: len(m.items)}
	}
	m.items[i] = v
	return nil
}

func (m *Model[T]) Add(v T) { m.items = append(m.items, v) }

func (m *Model[T]) Insert(i int, v T) error {
	if i < 0 || i > len(m.items) {
		return &listx.IndexError{Op: "insert", Index: i, Bound: len(m.items) + 1}
	}
	m.items = slices.Insert(m.items, i, v)
	return nil
}

func (m *Model[T]) RemoveAt(i int) error {
	if i < 0 || i >= len(m.items) {
		return &listx.IndexError{Op: "remove_at", Index: i, Bound: len(m.items)}
	}
	m.items = slices.Delete(m.items, i, i+1)
	return nil
}

func (m *Model[T]) Remove(v T) bool {
	i := slices.Index(m.items, v)
	if i < 0 {
		return false
	}
	m.items = slices.Delete(m.items, i, i+1)
	return true
}

func (m *Model[T]) IndexOf(v T) int { return slices.Index(m.items, v) }

func (m *Model[T]) Contains(v T) bool { return slices.Contains(m.items, v) }

func (m *Model[T]) Clear() { m.items = m.items[:0] }

func (m *Model[T]) Slice() []T { return slices.Clone(m.items) }
