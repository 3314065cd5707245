package iterator

import (
	"github.com/ddjerqq/rustkit/option"
	"github.com/ddjerqq/rustkit/result"
)

// TakeWhileIterator yields elements of an inner iterator while a
// predicate holds, then reports exhaustion forever.  Created by
// TakeWhile.
//
// The element that first fails the predicate is consumed from the inner
// iterator and discarded; after that the adapter stays exhausted even
// if the inner iterator would yield matching elements again.
type TakeWhileIterator[T any] struct {
	it   Iterator[T]
	pred func(T) bool
	done bool
}

// TakeWhile returns an iterator yielding the longest prefix of elements
// satisfying pred.
func TakeWhile[T any](it Iterator[T], pred func(T) bool) *TakeWhileIterator[T] {
	return &TakeWhileIterator[T]{it: it, pred: pred}
}

func (t *TakeWhileIterator[T]) Next() option.Option[T] {
	if t.done {
		return option.None[T]()
	}
	x, ok := t.it.Next().Get()
	if !ok || !t.pred(x) {
		t.done = true
		return option.None[T]()
	}
	return option.Some(x)
}

// takeWhileBreak carries the accumulator out of an inner try-fold when
// the predicate fails, so the stop is not mistaken for a caller error.
type takeWhileBreak struct {
	acc any
}

func (t *TakeWhileIterator[T]) tryFoldAny(acc any, f func(any, T) result.Result[any, any]) result.Result[any, any] {
	if t.done {
		return result.Ok[any, any](acc)
	}
	r := TryFold(t.it, acc, func(acc any, x T) result.Result[any, any] {
		if !t.pred(x) {
			t.done = true
			return result.Err[any, any](takeWhileBreak{acc: acc})
		}
		return f(acc, x)
	})
	if r.IsErr() {
		if br, ok := r.UnwrapErr().(takeWhileBreak); ok {
			return result.Ok[any, any](br.acc)
		}
	}
	return r
}

func (t *TakeWhileIterator[T]) foldAny(acc any, f func(any, T) any) any {
	return t.tryFoldAny(acc, func(acc any, x T) result.Result[any, any] {
		return result.Ok[any, any](f(acc, x))
	}).Unwrap()
}
