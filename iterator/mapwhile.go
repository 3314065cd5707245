package iterator

import (
	"github.com/ddjerqq/rustkit/option"
	"github.com/ddjerqq/rustkit/result"
)

// MapWhileIterator maps elements until the function first returns None,
// then stops.  Created by MapWhile.
//
// Unlike TakeWhile it is not fused: a later Next call pulls the inner
// iterator again, and may resume yielding if the function accepts a
// subsequent element.
type MapWhileIterator[T, U any] struct {
	it Iterator[T]
	f  func(T) option.Option[U]
}

// MapWhile returns an iterator yielding the results of f for as long as
// f keeps returning Some.
func MapWhile[T, U any](it Iterator[T], f func(T) option.Option[U]) *MapWhileIterator[T, U] {
	return &MapWhileIterator[T, U]{it: it, f: f}
}

func (m *MapWhileIterator[T, U]) Next() option.Option[U] {
	x, ok := m.it.Next().Get()
	if !ok {
		return option.None[U]()
	}
	return m.f(x)
}

type mapWhileBreak struct {
	acc any
}

func (m *MapWhileIterator[T, U]) tryFoldAny(acc any, f func(any, U) result.Result[any, any]) result.Result[any, any] {
	r := TryFold(m.it, acc, func(acc any, x T) result.Result[any, any] {
		v, ok := m.f(x).Get()
		if !ok {
			return result.Err[any, any](mapWhileBreak{acc: acc})
		}
		return f(acc, v)
	})
	if r.IsErr() {
		if br, ok := r.UnwrapErr().(mapWhileBreak); ok {
			return result.Ok[any, any](br.acc)
		}
	}
	return r
}

func (m *MapWhileIterator[T, U]) foldAny(acc any, f func(any, U) any) any {
	return m.tryFoldAny(acc, func(acc any, x U) result.Result[any, any] {
		return result.Ok[any, any](f(acc, x))
	}).Unwrap()
}
