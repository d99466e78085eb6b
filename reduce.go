package itertools

import (
	"fmt"
	"io"
	"iter"
	"os"

	"golang.org/x/exp/constraints"

	"github.com/jake-scott/go-itertools/iter/seq"
	"github.com/jake-scott/go-itertools/option"
	"github.com/jake-scott/go-itertools/pair"
)

// ReduceFunc is a generic function that folds one element into an
// accumulator and returns the new accumulator.
type ReduceFunc[A any, T any] func(A, T) A

// Number is the set of types that Sum and Product can fold over.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Reduce is the non-OO version of Stage.Reduce().  It must be used in the
// case where the accumulator is of a different type than the stage
// elements.
func Reduce[T, A any](s *Stage[T], initial A, r ReduceFunc[A, T]) A {
	t := s.tracer("Reduce")
	defer t.End()

	i := s.release()

	n := 0
	acc := initial
	for v := i.Next(); v.IsSome(); v = i.Next() {
		acc = r(acc, v.Get())
		n++
	}

	t.Msg("reduced %d elements", n)
	return acc
}

// Reduce folds every element of the stage into an accumulator, starting
// from initial.
//
// The stage is consumed and must not be used again.
func (s *Stage[T]) Reduce(initial T, r ReduceFunc[T, T]) T {
	return Reduce(s, initial, r)
}

// reduceNonEmpty folds the stage using its first element as the initial
// accumulator, returning None if the stage produces nothing.
func reduceNonEmpty[T any](s *Stage[T], description string, r ReduceFunc[T, T]) option.Option[T] {
	t := s.tracer(description)
	defer t.End()

	i := s.release()

	first := i.Next()
	if first.IsNone() {
		t.Msg("no elements")
		return first
	}

	n := 1
	acc := first.Get()
	for v := i.Next(); v.IsSome(); v = i.Next() {
		acc = r(acc, v.Get())
		n++
	}

	t.Msg("reduced %d elements", n)
	return option.Some(acc)
}

// Sum adds up the elements of s.  An empty stage has no sum: the result is
// None rather than zero.
//
// s is consumed and must not be used again.
func Sum[N Number](s *Stage[N]) option.Option[N] {
	return reduceNonEmpty(s, "Sum", func(a, b N) N {
		return a + b
	})
}

// Product multiplies together the elements of s.  An empty stage has no
// product: the result is None rather than one.
//
// s is consumed and must not be used again.
func Product[N Number](s *Stage[N]) option.Option[N] {
	return reduceNonEmpty(s, "Product", func(a, b N) N {
		return a * b
	})
}

// SliceFromIterator is a reducer that appends each element to a slice.
func SliceFromIterator[T any](a []T, t T) []T {
	return append(a, t)
}

// Collect drains the stage and returns its elements in order.
//
// The stage is consumed and must not be used again.
func (s *Stage[T]) Collect() []T {
	t := s.tracer("Collect")
	defer t.End()

	size, ok := sizeOf(s.i)
	if !ok {
		size = s.opts.sizeHint
	}

	i := s.release()

	out := make([]T, 0, size)
	for v := i.Next(); v.IsSome(); v = i.Next() {
		out = append(out, v.Get())
	}

	t.Msg("collected %d elements", len(out))
	return out
}

// CollectMap drains a stage of key/value pairs into a map.  When a key
// occurs more than once the last value wins.
//
// s is consumed and must not be used again.
func CollectMap[K comparable, V any](s *Stage[pair.Pair[K, V]]) map[K]V {
	t := s.tracer("CollectMap")
	defer t.End()

	size, _ := sizeOf(s.i)
	i := s.release()

	out := make(map[K]V, size)
	for v := i.Next(); v.IsSome(); v = i.Next() {
		p := v.Get()
		out[p.First] = p.Second
	}

	t.Msg("collected %d keys", len(out))
	return out
}

// Count drains the stage and returns the number of elements it produced.
//
// The stage is consumed and must not be used again.
func (s *Stage[T]) Count() uint {
	t := s.tracer("Count")
	defer t.End()

	i := s.release()

	var n uint
	for v := i.Next(); v.IsSome(); v = i.Next() {
		n++
	}

	t.Msg("counted %d elements", n)
	return n
}

// ForEach calls f for every element of the stage, in order.
//
// The stage is consumed and must not be used again.
func (s *Stage[T]) ForEach(f func(T)) {
	t := s.tracer("ForEach")
	defer t.End()

	i := s.release()
	for v := i.Next(); v.IsSome(); v = i.Next() {
		f(v.Get())
	}
}

// All returns the stage's elements as an iter.Seq for use with
// range-over-func.  Elements are pulled only as the loop asks for them.
// Breaking out of the loop stops the pipeline's sources.
//
// The stage is consumed and must not be used again.
func (s *Stage[T]) All() iter.Seq[T] {
	i := s.release()
	return func(yield func(T) bool) {
		defer stopIter(i)
		seq.All[T](i)(yield)
	}
}

// Print writes the stage's elements to stdout in the form "{ a, b, }".
// It returns the first write error, if any.
//
// The stage is consumed and must not be used again.
func (s *Stage[T]) Print() error {
	return s.Fprint(os.Stdout)
}

// Fprint writes the stage's elements to w in the form "{ a, b, }",
// followed by a newline.  It stops at the first write error.
//
// The stage is consumed and must not be used again.
func (s *Stage[T]) Fprint(w io.Writer) error {
	t := s.tracer("Print")
	defer t.End()

	i := s.release()

	if _, err := io.WriteString(w, "{ "); err != nil {
		return err
	}

	for v := i.Next(); v.IsSome(); v = i.Next() {
		if _, err := fmt.Fprintf(w, "%v, ", v.Get()); err != nil {
			t.Msg("write failed: %s", err)
			return err
		}
	}

	_, err := io.WriteString(w, "}\n")
	return err
}
