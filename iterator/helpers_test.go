package iterator_test

import (
	"github.com/ddjerqq/rustkit/iterator"
	"github.com/ddjerqq/rustkit/option"
)

// countingIter wraps an iterator and counts how many times Next is
// pulled, so tests can observe laziness and short-circuiting.
type countingIter[T any] struct {
	it    iterator.Iterator[T]
	pulls int
}

func counting[T any](it iterator.Iterator[T]) *countingIter[T] {
	return &countingIter[T]{it: it}
}

func (c *countingIter[T]) Next() option.Option[T] {
	c.pulls++
	return c.it.Next()
}
