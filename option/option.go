// Package option implements Option, the value every pipeline stage hands to
// its consumer: either a present element or nothing.
//
// An absent Option is not an error; it is how a stage reports exhaustion.
// Reading the value of an absent Option is a programming error and panics.
package option

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyValueAccess is the panic value (wrapped with a stack trace) raised
// by Get when the Option holds no value.
var ErrEmptyValueAccess = errors.New("option: value accessed on empty Option")

// Option holds either a single value of type T or nothing.  The zero value
// is an absent Option.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{
		value: v,
		some:  true,
	}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// From returns Some(v) if ok is true and None otherwise.  It adapts the
// comma-ok idiom used by maps, channels and iter.Pull.
func From[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the contained value.  It panics with an error wrapping
// ErrEmptyValueAccess if the Option is empty.
func (o Option[T]) Get() T {
	if !o.some {
		panic(errors.WithStack(ErrEmptyValueAccess))
	}
	return o.value
}

// GetOK returns the contained value and true, or the zero value of T and
// false if the Option is empty.
func (o Option[T]) GetOK() (T, bool) {
	return o.value, o.some
}

// OrElse returns the contained value, or def if the Option is empty.
func (o Option[T]) OrElse(def T) T {
	if !o.some {
		return def
	}
	return o.value
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
