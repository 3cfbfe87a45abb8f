package query

import (
	"context"
	"fmt"
)

// ReorderSession holds the local state of a drag-to-reorder dialog. Moves
// splice a working copy; nothing is written until Save, and Save is a
// no-op unless the order actually changed. On a failed save the local
// order is preserved so the admin can retry. T is the sibling identity
// (an id, or an id+type pair for steps).
type ReorderSession[T comparable] struct {
	original []T
	items    []T
}

// NewReorderSession starts a session over the given sibling list.
func NewReorderSession[T comparable](items []T) *ReorderSession[T] {
	s := &ReorderSession[T]{
		original: make([]T, len(items)),
		items:    make([]T, len(items)),
	}
	copy(s.original, items)
	copy(s.items, items)
	return s
}

// Move splices the item at from to position to.
func (s *ReorderSession[T]) Move(from, to int) error {
	n := len(s.items)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("move %d -> %d out of range (%d items)", from, to, n)
	}
	if from == to {
		return nil
	}
	item := s.items[from]
	s.items = append(s.items[:from], s.items[from+1:]...)
	rest := append([]T{item}, s.items[to:]...)
	s.items = append(s.items[:to], rest...)
	return nil
}

// Items returns a copy of the current working order.
func (s *ReorderSession[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// HasChanged reports whether the working order differs from the original.
// Save is disabled until it does, preventing no-op writes.
func (s *ReorderSession[T]) HasChanged() bool {
	for i := range s.original {
		if s.original[i] != s.items[i] {
			return true
		}
	}
	return false
}

// Save submits the complete working order through submit when it has
// changed. On success the working order becomes the new baseline; on
// failure it is kept as-is for retry.
func (s *ReorderSession[T]) Save(ctx context.Context, submit func(ctx context.Context, items []T) error) error {
	if !s.HasChanged() {
		return nil
	}
	if err := submit(ctx, s.Items()); err != nil {
		return err
	}
	copy(s.original, s.items)
	return nil
}
