package itertools

import (
	"testing"

	"github.com/jake-scott/go-itertools/iter/slice"
	"github.com/jake-scott/go-itertools/option"
)

var hundredInts = []int{
	89, 46, 43, 83, 87, 63, 48, 91, 75, 28,
	56, 21, 6, 12, 5, 39, 61, 63, 16, 23,
	81, 26, 25, 14, 9, 36, 67, 87, 30, 7,
	38, 41, 29, 13, 49, 89, 87, 34, 45, 64,
	62, 74, 70, 79, 62, 91, 4, 1, 80, 62,
	89, 17, 29, 33, 66, 3, 1, 50, 35, 86,
	74, 97, 12, 52, 72, 6, 84, 95, 31, 12,
	39, 49, 98, 11, 54, 34, 36, 7, 5, 87,
	22, 15, 20, 34, 50, 63, 43, 85, 74, 25,
	88, 7, 18, 49, 9, 26, 89, 36, 94, 60,
}

var doubleHundredInts = []int{
	178, 92, 86, 166, 174, 126, 96, 182, 150, 56,
	112, 42, 12, 24, 10, 78, 122, 126, 32, 46,
	162, 52, 50, 28, 18, 72, 134, 174, 60, 14,
	76, 82, 58, 26, 98, 178, 174, 68, 90, 128,
	124, 148, 140, 158, 124, 182, 8, 2, 160, 124,
	178, 34, 58, 66, 132, 6, 2, 100, 70, 172,
	148, 194, 24, 104, 144, 12, 168, 190, 62, 24,
	78, 98, 196, 22, 108, 68, 72, 14, 10, 174,
	44, 30, 40, 68, 100, 126, 86, 170, 148, 50,
	176, 14, 36, 98, 18, 52, 178, 72, 188, 120,
}

var hundredIntsEven = []int{
	46, 48, 28, 56, 6, 12, 16, 26, 14, 36,
	30, 38, 34, 64, 62, 74, 70, 62, 4, 80,
	62, 66, 50, 86, 74, 12, 52, 72, 6, 84,
	12, 98, 54, 34, 36, 22, 20, 34, 50, 74,
	88, 18, 26, 36, 94, 60,
}

const sumHundredInts = 4682

func isEven(i int) bool {
	return i%2 == 0
}

func double(i int) int {
	return i * 2
}

// testTracer sends trace output to the test log
func testTracer(t *testing.T) StageOption {
	return WithTraceFunc(func(f string, v ...any) {
		t.Logf(f, v...)
	})
}

// drain reads an iterator to exhaustion
func drain[T any](i Iterator[T]) []T {
	out := []T{}
	for v := i.Next(); v.IsSome(); v = i.Next() {
		out = append(out, v.Get())
	}
	return out
}

// naturals returns an infinite source 0, 1, 2, ... and a pointer to the
// number of times it has been polled
func naturals() (Iterator[int], *int) {
	calls := 0
	n := 0
	return IteratorFunc[int](func() option.Option[int] {
		calls++
		v := n
		n++
		return option.Some(v)
	}), &calls
}

// rewindingIter is a badly behaved source: after reporting exhaustion it
// starts again from the beginning
type rewindingIter[T any] struct {
	items []T
	pos   int
	calls int
}

func (r *rewindingIter[T]) Next() option.Option[T] {
	r.calls++
	if r.pos >= len(r.items) {
		r.pos = 0
		return option.None[T]()
	}

	v := r.items[r.pos]
	r.pos++
	return option.Some(v)
}

func sliceIter[T any](s []T) Iterator[T] {
	i := slice.New(s)
	return &i
}

// stoppingIter counts up from 0, ending after limit elements when limit is
// non-zero, and records whether Stop was called.
type stoppingIter struct {
	calls   int
	limit   int
	stopped bool
}

func (s *stoppingIter) Next() option.Option[int] {
	if s.stopped || (s.limit > 0 && s.calls >= s.limit) {
		return option.None[int]()
	}
	s.calls++
	return option.Some(s.calls - 1)
}

func (s *stoppingIter) Stop() {
	s.stopped = true
}
