package iterator

import (
	"github.com/ddjerqq/rustkit"
	"github.com/ddjerqq/rustkit/option"
	"github.com/ddjerqq/rustkit/result"
)

// EnumerateIterator pairs each element with its zero-based position.
// Created by Enumerate.
type EnumerateIterator[T any] struct {
	it    Iterator[T]
	count int
}

// Enumerate returns an iterator yielding (index, element) pairs, with
// the index counting up from zero.
func Enumerate[T any](it Iterator[T]) *EnumerateIterator[T] {
	return &EnumerateIterator[T]{it: it}
}

func (e *EnumerateIterator[T]) Next() option.Option[rustkit.Pair[int, T]] {
	x, ok := e.it.Next().Get()
	if !ok {
		return option.None[rustkit.Pair[int, T]]()
	}
	i := e.count
	e.count = i + 1
	return option.Some(rustkit.Pair[int, T]{First: i, Second: x})
}

func (e *EnumerateIterator[T]) Count() int {
	return Count(e.it)
}

// Nth skips ahead on the inner iterator directly and reconstructs the
// index arithmetically rather than counting element by element.
func (e *EnumerateIterator[T]) Nth(n int) option.Option[rustkit.Pair[int, T]] {
	x, ok := Nth(e.it, n).Get()
	if !ok {
		return option.None[rustkit.Pair[int, T]]()
	}
	i := e.count + n
	e.count = i + 1
	return option.Some(rustkit.Pair[int, T]{First: i, Second: x})
}

func (e *EnumerateIterator[T]) AdvanceBy(n int) result.Result[struct{}, int] {
	res := AdvanceBy(e.it, n)
	if res.IsOk() {
		e.count += n
	} else {
		e.count += res.UnwrapErr()
	}
	return res
}

func (e *EnumerateIterator[T]) foldAny(acc any, f func(any, rustkit.Pair[int, T]) any) any {
	return Fold(e.it, acc, func(acc any, x T) any {
		i := e.count
		e.count = i + 1
		return f(acc, rustkit.Pair[int, T]{First: i, Second: x})
	})
}

func (e *EnumerateIterator[T]) tryFoldAny(acc any, f func(any, rustkit.Pair[int, T]) result.Result[any, any]) result.Result[any, any] {
	return TryFold(e.it, acc, func(acc any, x T) result.Result[any, any] {
		i := e.count
		e.count = i + 1
		return f(acc, rustkit.Pair[int, T]{First: i, Second: x})
	})
}
