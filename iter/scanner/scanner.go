// Package scanner implements a stream tokenizer source.
//
// The package makes use of the standard library bufio.Scanner to buffer and
// split data read from an io.Reader.  Scanner has a set of standard splitters
// for words, lines and runes and supports custom split functions as well.
package scanner

import (
	"fmt"

	"github.com/jake-scott/go-itertools/option"
)

// Iterator wraps a bufio.Scanner to traverse over a stream of tokens
// such as words or lines read from an io.Reader.
//
// Iterator does not support the Size interface.
type Iterator struct {
	scanner Scanner
	done    bool
	err     error
}

// Scanner is an interface defining a subset of the methods exposed by
// bufio.Scanner, and is here primarily to assist with unit testing.
type Scanner interface {
	Scan() bool
	Text() string
	Err() error
}

// ErrTooManyTokens is returned in response to a panic in the
// scanner.Scan() method, the result of too many tokens being returned without
// the scanner advancing.
type ErrTooManyTokens struct {
	panicMessage string
	err          error
}

func (e ErrTooManyTokens) Error() string {
	if e.err == nil {
		return "too many tokens: " + e.panicMessage
	}
	return fmt.Sprintf("too many tokens: %s", e.err)
}

func (e ErrTooManyTokens) Unwrap() error {
	return e.err
}

// New returns an Iterator that uses bufio.Scanner to traverse through
// tokens such as words or lines from an io.Reader such as a file.
func New(scanner Scanner) Iterator {
	return Iterator{
		scanner: scanner,
	}
}

// Next advances the scanner by calling Scanner.Scan() and returns the new
// token.  It returns None if the end of the input is reached or an error is
// encountered.  If the scanner panics, Next returns None and Error() will
// return the message from the scanner.
func (i *Iterator) Next() (ret option.Option[string]) {
	if i.done {
		return option.None[string]()
	}

	defer func() {
		switch err := recover().(type) {
		default:
			i.err = ErrTooManyTokens{panicMessage: fmt.Sprintf("%v", err)}
			i.done = true
			ret = option.None[string]()
		case error:
			i.err = ErrTooManyTokens{err: err}
			i.done = true
			ret = option.None[string]()
		case nil:
		}
	}()

	if !i.scanner.Scan() {
		i.done = true
		return option.None[string]()
	}

	return option.Some(i.scanner.Text())
}

// Error returns the panic message from the scanner if one occured during
// a Next() call.  Otherwise, Error calls the Scanner's Err() method, which
// returns nil if there are no errors or if the end of input is reached,
// otherwise the first error encounterd by the scanner.
func (i *Iterator) Error() error {
	if i.err != nil {
		return i.err
	}

	return i.scanner.Err()
}
