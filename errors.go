package itertools

import (
	"github.com/pkg/errors"

	"github.com/jake-scott/go-itertools/option"
)

// Programming errors.  These are raised as panics, wrapped with a stack
// trace; they are never returned.
var (
	// ErrEmptyValueAccess is raised when the value of an empty Option is read.
	ErrEmptyValueAccess = option.ErrEmptyValueAccess

	// ErrStageConsumed is raised when a Stage is used after it has been
	// handed to a later stage or drained by a terminal operation.
	ErrStageConsumed = errors.New("itertools: stage has already been consumed")

	// ErrNilIterator is raised when a stage is built on a nil iterator.
	ErrNilIterator = errors.New("itertools: nil iterator")
)

func mustIterator[T any](i Iterator[T]) Iterator[T] {
	if i == nil {
		panic(errors.WithStack(ErrNilIterator))
	}
	return i
}
