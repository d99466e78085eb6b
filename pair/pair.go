// Package pair provides the two-element tuple produced by the Enumerate and
// Zip stages and by map sources.
package pair

import "fmt"

// Pair binds two values of possibly different types.
type Pair[A, B any] struct {
	First  A
	Second B
}

// New returns a Pair holding a and b.
func New[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{
		First:  a,
		Second: b,
	}
}

// Unpack returns both elements of the pair.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
