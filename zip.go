package itertools

import (
	"fmt"

	"github.com/jake-scott/go-itertools/option"
	"github.com/jake-scott/go-itertools/pair"
)

type zipIter[A, B any] struct {
	first  Iterator[A]
	second Iterator[B]
}

// ZipIter returns an iterator that advances first and second in lockstep,
// producing a pair for each position at which both have an element.
//
// first is always polled before second, and second is not polled at all
// once first is exhausted.  The zipped iterator ends as soon as either input
// does; whatever remains in the longer input is never read, and the longer
// input is stopped.
func ZipIter[A, B any](first Iterator[A], second Iterator[B]) Iterator[pair.Pair[A, B]] {
	return &zipIter[A, B]{
		first:  mustIterator(first),
		second: mustIterator(second),
	}
}

func (it *zipIter[A, B]) Next() option.Option[pair.Pair[A, B]] {
	if it.first == nil {
		return option.None[pair.Pair[A, B]]()
	}

	a := it.first.Next()
	if a.IsNone() {
		it.Stop()
		return option.None[pair.Pair[A, B]]()
	}

	b := it.second.Next()
	if b.IsNone() {
		it.Stop()
		return option.None[pair.Pair[A, B]]()
	}

	return option.Some(pair.New(a.Get(), b.Get()))
}

func (it *zipIter[A, B]) Stop() {
	stopIter(it.first)
	stopIter(it.second)
	it.first = nil
	it.second = nil
}

func (it *zipIter[A, B]) sizeHint() (uint, bool) {
	if it.first == nil {
		return 0, true
	}

	n1, ok1 := sizeOf(it.first)
	n2, ok2 := sizeOf(it.second)
	if !ok1 || !ok2 {
		return 0, false
	}
	return min(n1, n2), true
}

func (it *zipIter[A, B]) fused() {}

// Zip returns a new stage that pairs up the elements of first and second
// position by position.  The new stage is as long as the shorter of the two.
// If first has option inheritence enabled the new stage takes first's
// options; second's options, including its tracing settings, are never
// inherited.  Pass opts to configure the zipped stage directly.
//
// Both first and second are consumed and must not be used again.
func Zip[A, B any](first *Stage[A], second *Stage[B], opts ...StageOption) *Stage[pair.Pair[A, B]] {
	i1 := first.release()
	i2 := second.release()
	return nextStage(first, ZipIter(i1, i2), fmt.Sprintf("Zip with stage #%d", second.id), opts...)
}
