package iterator

import (
	"github.com/ddjerqq/rustkit/option"
	"github.com/ddjerqq/rustkit/result"
)

// FilterIterator lazily yields only the elements of an inner iterator
// that satisfy a predicate.  Created by Filter.
type FilterIterator[T any] struct {
	it   Iterator[T]
	pred func(T) bool
}

// Filter returns an iterator yielding only the elements of it for
// which pred returns true.
func Filter[T any](it Iterator[T], pred func(T) bool) *FilterIterator[T] {
	return &FilterIterator[T]{it: it, pred: pred}
}

func (fi *FilterIterator[T]) Next() option.Option[T] {
	return Find(fi.it, fi.pred)
}

func (fi *FilterIterator[T]) Count() int {
	return Fold(fi.it, 0, func(n int, x T) int {
		if fi.pred(x) {
			return n + 1
		}
		return n
	})
}

func (fi *FilterIterator[T]) foldAny(acc any, f func(any, T) any) any {
	return Fold(fi.it, acc, func(acc any, x T) any {
		if fi.pred(x) {
			return f(acc, x)
		}
		return acc
	})
}

func (fi *FilterIterator[T]) tryFoldAny(acc any, f func(any, T) result.Result[any, any]) result.Result[any, any] {
	return TryFold(fi.it, acc, func(acc any, x T) result.Result[any, any] {
		if fi.pred(x) {
			return f(acc, x)
		}
		return result.Ok[any, any](acc)
	})
}
