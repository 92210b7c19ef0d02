package grid

import (
	"slices"

	"github.com/briancoyner/interactive-grid/pkg/errors"
)

// MoveToOffset moves the element at from so that it sits immediately before
// the element originally at offset, using the pre-removal array as the frame
// of reference. offset may equal len(items), meaning "move to the end".
//
// This is the usual library "move" semantics: moving index 0 to offset 1 is
// a no-op, while offset 2 swaps the first two elements.
func MoveToOffset(items []Item, from, offset int) ([]Item, error) {
	if err := errors.ValidateIndex("source", from, len(items)); err != nil {
		return nil, err
	}
	if offset < 0 || offset > len(items) {
		return nil, errors.New(errors.ErrCodeIndexOutOfRange,
			"offset %d outside [0, %d]", offset, len(items))
	}
	to := offset
	if offset > from {
		to = offset - 1
	}
	return Pivot(items, from, to)
}

// Relocate moves the element at from so that its final index is to.
//
// Expressed as a library move, the insertion offset is to+1 when moving
// forward and to when moving backward.
func Relocate(items []Item, from, to int) ([]Item, error) {
	if err := errors.ValidateIndex("source", from, len(items)); err != nil {
		return nil, err
	}
	if err := errors.ValidateIndex("destination", to, len(items)); err != nil {
		return nil, err
	}
	offset := to
	if to > from {
		offset = to + 1
	}
	return MoveToOffset(items, from, offset)
}

// Pivot removes the element at from and inserts it at to in the array that
// remains after the removal.
func Pivot(items []Item, from, to int) ([]Item, error) {
	if err := errors.ValidateIndex("source", from, len(items)); err != nil {
		return nil, err
	}
	if to < 0 || to > len(items)-1 {
		return nil, errors.New(errors.ErrCodeIndexOutOfRange,
			"pivot destination %d outside [0, %d)", to, len(items))
	}
	out := slices.Clone(items)
	moved := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, moved), nil
}
