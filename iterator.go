package itertools

import "github.com/jake-scott/go-itertools/option"

// Iterator is the pull protocol implemented by every pipeline stage.
//
// Each call to Next either returns a present Option holding the next element,
// or an empty Option to signal exhaustion.  Once Next has returned an empty
// Option it must keep doing so; the stages in this package enforce that for
// themselves and Fuse can be used to enforce it for other iterators.
type Iterator[T any] interface {
	Next() option.Option[T]
}

// Size is an interface that can be implemented by an iterator that
// knows how many elements it has left to produce.
type Size interface {
	Size() uint
}

// IteratorFunc adapts an ordinary function to the Iterator interface, which
// is the simplest way to write a custom source or an infinite generator.
type IteratorFunc[T any] func() option.Option[T]

// Next calls f.
func (f IteratorFunc[T]) Next() option.Option[T] {
	return f()
}

// sizeHinter is implemented by the stages in this package that can derive
// their length from their parents.
type sizeHinter interface {
	sizeHint() (uint, bool)
}

// fuser marks iterators that already return None forever once exhausted.
type fuser interface {
	fused()
}

// stopper is implemented by iterators that hold resources which must be
// released if they are abandoned before exhaustion, such as seq.Iterator.
// The stages in this package pass Stop on to their parents.
type stopper interface {
	Stop()
}

// stopIter stops i if it supports stopping.
func stopIter(i any) {
	if s, ok := i.(stopper); ok {
		s.Stop()
	}
}

func sizeOf(i any) (uint, bool) {
	switch s := i.(type) {
	case sizeHinter:
		return s.sizeHint()
	case Size:
		return s.Size(), true
	}
	return 0, false
}

type fuseIter[T any] struct {
	parent Iterator[T]
	done   bool
}

// Fuse returns an iterator that yields the elements of i until i first
// returns None, and None forever after that, without calling i again.
func Fuse[T any](i Iterator[T]) Iterator[T] {
	mustIterator(i)
	if _, ok := i.(fuser); ok {
		return i
	}
	return &fuseIter[T]{parent: i}
}

func (f *fuseIter[T]) Next() option.Option[T] {
	if f.done {
		return option.None[T]()
	}

	v := f.parent.Next()
	if v.IsNone() {
		f.done = true
		f.parent = nil
	}
	return v
}

func (f *fuseIter[T]) sizeHint() (uint, bool) {
	if f.done {
		return 0, true
	}
	return sizeOf(f.parent)
}

func (f *fuseIter[T]) fused() {}

func (f *fuseIter[T]) Stop() {
	if !f.done {
		f.done = true
		stopIter(f.parent)
		f.parent = nil
	}
}
