// Package slice implements a source that traverses uni-directionally
// over a generic slice of elements.
//
// The source holds a cursor into the caller's slice rather than a copy of
// it, so the slice must not be modified while the source is in use.
//
// Slice supports the Size interface.
package slice

import "github.com/jake-scott/go-itertools/option"

// Iterator traverses over a slice of elements of type T.
type Iterator[T any] struct {
	s   []T
	pos int
}

// New returns an Iterator that traverses over the provided slice.
func New[T any](s []T) Iterator[T] {
	return Iterator[T]{
		s: s,
	}
}

// Size returns the number of elements remaining, implementing the
// Size interface.
func (r *Iterator[T]) Size() uint {
	return uint(len(r.s) - r.pos)
}

// Next returns the element under the cursor and advances it, or None
// once the end of the slice has been reached.
func (r *Iterator[T]) Next() option.Option[T] {
	if r.pos >= len(r.s) {
		return option.None[T]()
	}

	v := r.s[r.pos]
	r.pos++
	return option.Some(v)
}
