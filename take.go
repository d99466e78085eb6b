package itertools

import "github.com/jake-scott/go-itertools/option"

type takeIter[T any] struct {
	parent    Iterator[T]
	remaining uint
}

// TakeIter returns an iterator over at most the first n elements of parent.
// parent is not polled again once n elements have been produced, which makes
// TakeIter the usual way to bound an infinite source.  parent is stopped as
// soon as the n-th element has been produced.
func TakeIter[T any](parent Iterator[T], n uint) Iterator[T] {
	return &takeIter[T]{
		parent:    mustIterator(parent),
		remaining: n,
	}
}

func (it *takeIter[T]) Next() option.Option[T] {
	if it.parent == nil {
		return option.None[T]()
	}
	if it.remaining == 0 {
		it.Stop()
		return option.None[T]()
	}

	v := it.parent.Next()
	if v.IsNone() {
		it.parent = nil
		return v
	}

	it.remaining--
	if it.remaining == 0 {
		it.Stop()
	}
	return v
}

func (it *takeIter[T]) sizeHint() (uint, bool) {
	if it.parent == nil {
		return 0, true
	}

	n, ok := sizeOf(it.parent)
	if !ok {
		return 0, false
	}
	return min(n, it.remaining), true
}

func (it *takeIter[T]) fused() {}

func (it *takeIter[T]) Stop() {
	stopIter(it.parent)
	it.parent = nil
}

// Take returns a new stage producing at most the first n elements of this
// stage.
//
// The receiver is consumed and must not be used again.
func (s *Stage[T]) Take(n uint, opts ...StageOption) *Stage[T] {
	return nextStage(s, TakeIter(s.release(), n), "Take", opts...)
}
