package itertools

import "github.com/jake-scott/go-itertools/option"

// FilterFunc is a generic function type that takes a single element and
// returns true if it is to be included or false if the element is to be
// excluded from the result set.
//
// Example:
//
//	func findEvenInts(i int) bool {
//	    return i%2 == 0
//	}
type FilterFunc[T any] func(T) bool

type filterIter[T any] struct {
	parent Iterator[T]
	fn     FilterFunc[T]
}

// FilterIter returns an iterator over the elements of parent for which f
// returns true, in their original order.  Each call to Next polls parent as
// many times as it takes to find a match, so a predicate that never matches
// an infinite parent will never return.
func FilterIter[T any](parent Iterator[T], f FilterFunc[T]) Iterator[T] {
	return &filterIter[T]{
		parent: mustIterator(parent),
		fn:     f,
	}
}

func (it *filterIter[T]) Next() option.Option[T] {
	for it.parent != nil {
		v := it.parent.Next()
		if v.IsNone() {
			it.parent = nil
			break
		}

		if it.fn(v.Get()) {
			return v
		}
	}

	return option.None[T]()
}

func (it *filterIter[T]) fused() {}

func (it *filterIter[T]) Stop() {
	stopIter(it.parent)
	it.parent = nil
}

// Filter is the non-OO version of Stage.Filter().
func Filter[T any](s *Stage[T], f FilterFunc[T], opts ...StageOption) *Stage[T] {
	return nextStage(s, FilterIter(s.release(), f), "Filter", opts...)
}

// Filter returns a new stage that produces the elements of this stage for
// which f(e) is true.  No elements are read until the new stage is
// consumed.
//
// The receiver is consumed and must not be used again.
func (s *Stage[T]) Filter(f FilterFunc[T], opts ...StageOption) *Stage[T] {
	return Filter(s, f, opts...)
}
