package iterator

import (
	"github.com/ddjerqq/rustkit/option"
)

// FnIterator adapts a plain function into an iterator.  Created by
// FromFn.
type FnIterator[T any] struct {
	f func() option.Option[T]
}

// FromFn returns an iterator that yields whatever f returns on each
// pull.  The function owns any state it needs between calls.
func FromFn[T any](f func() option.Option[T]) *FnIterator[T] {
	return &FnIterator[T]{f: f}
}

func (fn *FnIterator[T]) Next() option.Option[T] {
	return fn.f()
}
