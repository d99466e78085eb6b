// Package channel implements a source that reads a data stream from
// the supplied channel.
package channel

import (
	"context"

	"github.com/jake-scott/go-itertools/option"
)

// Iterator traverses the elements of type T from a channel, until
// the channel is closed or the context is done.
//
// Iterator does not support the Size interface.
type Iterator[T any] struct {
	ctx  context.Context
	ch   <-chan T
	done bool
	err  error
}

// New returns an Iterator that receives from ch until the channel is
// closed, or ctx is done.  This is the only source whose Next can block,
// and then only on the supplied channel.
func New[T any](ctx context.Context, ch <-chan T) Iterator[T] {
	return Iterator[T]{
		ctx: ctx,
		ch:  ch,
	}
}

// Next receives the next item from the channel.  It returns None once the
// channel has been closed or the context has expired, and keeps returning
// None from then on.
//
// If the context expired, Error() will return the result of the context's
// Err() function.
func (i *Iterator[T]) Next() option.Option[T] {
	if i.done {
		return option.None[T]()
	}

	// check the context first so that a cancelled context wins over a
	// channel that still has buffered data
	if err := i.ctx.Err(); err != nil {
		i.err = err
		i.done = true
		return option.None[T]()
	}

	select {
	case item, ok := <-i.ch:
		if ok {
			return option.Some(item)
		}
		// read failed due to empty closed channel
	case <-i.ctx.Done():
		i.err = i.ctx.Err()
	}

	i.done = true
	return option.None[T]()
}

// Error returns the context expiry reason if any from a previous call
// to Next, otherwise it returns nil.
func (i *Iterator[T]) Error() error {
	return i.err
}
