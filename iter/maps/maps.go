// Package maps implements a source that traverses the entries of a Go map,
// producing each entry as a pair.Pair of key and value.
//
// Only the key set is captured when the source is created; values are read
// from the caller's map as the source advances.  Entries deleted after the
// source was created are skipped and entries added afterwards are not seen.
//
// Maps supports the Size interface.
package maps

import (
	"cmp"
	"slices"

	"github.com/jake-scott/go-itertools/option"
	"github.com/jake-scott/go-itertools/pair"
)

// Iterator traverses over the entries of a map[K]V.
type Iterator[K comparable, V any] struct {
	m    map[K]V
	keys []K
	pos  int
}

// New returns an Iterator over the entries of m in unspecified order.
func New[K comparable, V any](m map[K]V) Iterator[K, V] {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	return Iterator[K, V]{
		m:    m,
		keys: keys,
	}
}

// NewSorted returns an Iterator over the entries of m in ascending key order.
func NewSorted[K cmp.Ordered, V any](m map[K]V) Iterator[K, V] {
	i := New(m)
	slices.Sort(i.keys)
	return i
}

// Size returns the number of keys not yet visited.  It is an upper bound if
// entries have been deleted from the map since the source was created.
func (i *Iterator[K, V]) Size() uint {
	return uint(len(i.keys) - i.pos)
}

// Next returns the next entry of the map, or None once every captured key
// has been visited.
func (i *Iterator[K, V]) Next() option.Option[pair.Pair[K, V]] {
	for i.pos < len(i.keys) {
		k := i.keys[i.pos]
		i.pos++

		if v, ok := i.m[k]; ok {
			return option.Some(pair.New(k, v))
		}
	}

	return option.None[pair.Pair[K, V]]()
}
