// Package slice implements an iterator that traverses uni-directionally
// over a generic slice of elements.
//
// Slice supports the Size interface.
package slice

import "github.com/ddjerqq/rustkit/option"

// Iterator traverses over a slice of elements of type T.
type Iterator[T any] struct {
	s   []T
	pos int
}

// New returns an iterator that traverses over the provided slice.  The
// slice is not copied; the caller must not mutate it while iterating.
func New[T any](s []T) *Iterator[T] {
	return &Iterator[T]{
		s: s,
	}
}

// Size returns the number of elements not yet yielded, implementing
// the iterator.Size interface.
func (i *Iterator[T]) Size() uint {
	return uint(len(i.s) - i.pos)
}

// Next yields the next element of the underlying slice, or None when
// the end of the slice has been reached.
func (i *Iterator[T]) Next() option.Option[T] {
	if i.pos >= len(i.s) {
		return option.None[T]()
	}

	x := i.s[i.pos]
	i.pos++
	return option.Some(x)
}
