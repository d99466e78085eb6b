// Package seq bridges between pull-based sources and the standard
// library's push-based iter.Seq.
//
// New adapts an iter.Seq into a source using iter.Pull, and All exposes any
// source as an iter.Seq so that it can be used with range-over-func.
package seq

import (
	"iter"

	"github.com/jake-scott/go-itertools/option"
)

// Source is the subset of the pipeline iterator protocol that All needs.
type Source[T any] interface {
	Next() option.Option[T]
}

// Iterator pulls elements from an iter.Seq.
//
// Iterator does not support the Size interface.
type Iterator[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

// New returns an Iterator that pulls from s.  The underlying pull state is
// released when s is exhausted; callers that abandon the Iterator early
// must call Stop.
func New[T any](s iter.Seq[T]) *Iterator[T] {
	next, stop := iter.Pull(s)
	return &Iterator[T]{
		next: next,
		stop: stop,
	}
}

// Next returns the next element yielded by the sequence, or None once the
// sequence has finished or Stop has been called.
func (i *Iterator[T]) Next() option.Option[T] {
	if i.done {
		return option.None[T]()
	}

	v, ok := i.next()
	if !ok {
		i.Stop()
		return option.None[T]()
	}

	return option.Some(v)
}

// Stop ends the iteration and releases the sequence.  It is safe to call
// more than once.
func (i *Iterator[T]) Stop() {
	if !i.done {
		i.done = true
		i.stop()
	}
}

// All returns an iter.Seq that yields the elements of src until it is
// exhausted or the loop body breaks.  Breaking out of the loop leaves src
// positioned after the last element yielded.
func All[T any](src Source[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := src.Next(); v.IsSome(); v = src.Next() {
			if !yield(v.Get()) {
				return
			}
		}
	}
}
