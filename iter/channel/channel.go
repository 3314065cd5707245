// Package channel implements an iterator that reads a data stream from
// the supplied channel.
package channel

import "github.com/ddjerqq/rustkit/option"

// Iterator traverses the elements of type T from a channel, until the
// channel is closed.
//
// Iterator does not support the Size interface.
type Iterator[T any] struct {
	ch <-chan T
}

// New returns an iterator that yields values received from ch until
// the channel is closed.  A nil or never-closed channel makes Next
// block forever; closing the channel is the producer's responsibility.
func New[T any](ch <-chan T) *Iterator[T] {
	return &Iterator[T]{
		ch: ch,
	}
}

// Next receives the next value from the channel, blocking until one is
// available.  It returns None once the channel is closed and drained.
func (i *Iterator[T]) Next() option.Option[T] {
	x, ok := <-i.ch
	if !ok {
		return option.None[T]()
	}
	return option.Some(x)
}
