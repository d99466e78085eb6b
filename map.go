package itertools

import "github.com/jake-scott/go-itertools/option"

// MapFunc is a generic function that takes a single element and returns
// a single transformed element.
//
// Example:
//
//	func ipAddress(host string) net.IP {
//	    ip, _ = net.LookupIp(host)
//		return ip
//	}
type MapFunc[T any, M any] func(T) M

type mapIter[T, M any] struct {
	parent Iterator[T]
	fn     MapFunc[T, M]
}

// MapIter returns an iterator that produces f(e) for each element e of
// parent.  Every call to Next makes exactly one call to parent.Next.
func MapIter[T, M any](parent Iterator[T], f MapFunc[T, M]) Iterator[M] {
	return &mapIter[T, M]{
		parent: mustIterator(parent),
		fn:     f,
	}
}

func (it *mapIter[T, M]) Next() option.Option[M] {
	if it.parent == nil {
		return option.None[M]()
	}

	v := it.parent.Next()
	if v.IsNone() {
		it.parent = nil
		return option.None[M]()
	}

	return option.Some(it.fn(v.Get()))
}

func (it *mapIter[T, M]) sizeHint() (uint, bool) {
	if it.parent == nil {
		return 0, true
	}
	return sizeOf(it.parent)
}

func (it *mapIter[T, M]) fused() {}

func (it *mapIter[T, M]) Stop() {
	stopIter(it.parent)
	it.parent = nil
}

// Map returns a new stage producing m(e) for each element e of this stage.
//
// If the map function returns values of a different type to the input values,
// the non-OO version of Map() must be used instead.
//
// The receiver is consumed and must not be used again.
func (s *Stage[T]) Map(m MapFunc[T, T], opts ...StageOption) *Stage[T] {
	return Map(s, m, opts...)
}

// Map is the non-OO version of Stage.Map().  It must be used in the case
// where the map function returns items of a different type than the input
// elements, due to limitations of Golang's generic syntax.
func Map[T, M any](s *Stage[T], m MapFunc[T, M], opts ...StageOption) *Stage[M] {
	return nextStage(s, MapIter(s.release(), m), "Map", opts...)
}
