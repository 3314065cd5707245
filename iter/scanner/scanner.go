// Package scanner implements a stream tokenizer iterator.
//
// The package makes use of the standard library bufio.Scanner to buffer
// and split data read from an io.Reader.  Scanner has a set of standard
// splitters for words, lines and runes and supports custom split
// functions as well.
package scanner

import (
	"fmt"

	"github.com/ddjerqq/rustkit/option"
)

// Scanner is the subset of bufio.Scanner the iterator needs, defined
// as an interface primarily to assist with unit testing.
type Scanner interface {
	Scan() bool
	Text() string
	Err() error
}

// ErrTooManyTokens is recorded in response to a panic in the
// Scanner.Scan method, the result of too many tokens being returned
// without the scanner advancing.
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

// Iterator wraps a bufio.Scanner to traverse over a stream of tokens
// such as words or lines read from an io.Reader.
//
// Iterator does not support the Size interface.
type Iterator struct {
	scanner Scanner
	err     error
}

// New returns an iterator that yields the scanner's tokens as strings.
func New(scanner Scanner) *Iterator {
	return &Iterator{
		scanner: scanner,
	}
}

// Next yields the next token from the scanner, or None when the input
// is exhausted or an error is encountered.  If the scanner panics,
// Next returns None and Err reports an ErrTooManyTokens.
func (i *Iterator) Next() (ret option.Option[string]) {
	defer func() {
		switch err := recover().(type) {
		case nil:
		case error:
			i.err = ErrTooManyTokens{err: err}
			ret = option.None[string]()
		default:
			i.err = ErrTooManyTokens{panicMessage: fmt.Sprintf("%v", err)}
			ret = option.None[string]()
		}
	}()

	if i.scanner.Scan() {
		return option.Some(i.scanner.Text())
	}
	return option.None[string]()
}

// Err returns the panic message from the scanner if one occurred
// during a Next call.  Otherwise it consults the scanner's own Err
// method, which reports nil at a clean end of input.
func (i *Iterator) Err() option.Option[error] {
	if i.err != nil {
		return option.Some(i.err)
	}
	if err := i.scanner.Err(); err != nil {
		return option.Some(err)
	}
	return option.None[error]()
}
