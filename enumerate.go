package itertools

import (
	"github.com/jake-scott/go-itertools/option"
	"github.com/jake-scott/go-itertools/pair"
)

type enumerateIter[T any] struct {
	parent Iterator[T]
	idx    uint
}

// EnumerateIter returns an iterator that pairs each element of parent with
// its position, starting at 0.  The counter belongs to the returned iterator,
// so enumerating an enumerated iterator yields nested pairs with two
// independent counters.
func EnumerateIter[T any](parent Iterator[T]) Iterator[pair.Pair[uint, T]] {
	return &enumerateIter[T]{
		parent: mustIterator(parent),
	}
}

func (it *enumerateIter[T]) Next() option.Option[pair.Pair[uint, T]] {
	if it.parent == nil {
		return option.None[pair.Pair[uint, T]]()
	}

	v := it.parent.Next()
	if v.IsNone() {
		it.parent = nil
		return option.None[pair.Pair[uint, T]]()
	}

	item := pair.New(it.idx, v.Get())
	it.idx++
	return option.Some(item)
}

func (it *enumerateIter[T]) sizeHint() (uint, bool) {
	if it.parent == nil {
		return 0, true
	}
	return sizeOf(it.parent)
}

func (it *enumerateIter[T]) fused() {}

func (it *enumerateIter[T]) Stop() {
	stopIter(it.parent)
	it.parent = nil
}

// Enumerate returns a new stage producing each element of s together with
// its index.
//
// s is consumed and must not be used again.
func Enumerate[T any](s *Stage[T], opts ...StageOption) *Stage[pair.Pair[uint, T]] {
	return nextStage(s, EnumerateIter(s.release()), "Enumerate", opts...)
}
