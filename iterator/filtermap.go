package iterator

import (
	"github.com/ddjerqq/rustkit/option"
	"github.com/ddjerqq/rustkit/result"
)

// FilterMapIterator filters and maps in one pass: elements for which
// the function returns Some are yielded unwrapped, the rest are
// dropped.  Created by FilterMap.
type FilterMapIterator[T, U any] struct {
	it Iterator[T]
	f  func(T) option.Option[U]
}

// FilterMap returns an iterator yielding the present results of f
// applied to each element of it.  It makes a Map-then-Filter chain a
// single adapter.
func FilterMap[T, U any](it Iterator[T], f func(T) option.Option[U]) *FilterMapIterator[T, U] {
	return &FilterMapIterator[T, U]{it: it, f: f}
}

func (fm *FilterMapIterator[T, U]) Next() option.Option[U] {
	return FindMap(fm.it, fm.f)
}

func (fm *FilterMapIterator[T, U]) foldAny(acc any, f func(any, U) any) any {
	return Fold(fm.it, acc, func(acc any, x T) any {
		if v, ok := fm.f(x).Get(); ok {
			return f(acc, v)
		}
		return acc
	})
}

func (fm *FilterMapIterator[T, U]) tryFoldAny(acc any, f func(any, U) result.Result[any, any]) result.Result[any, any] {
	return TryFold(fm.it, acc, func(acc any, x T) result.Result[any, any] {
		if v, ok := fm.f(x).Get(); ok {
			return f(acc, v)
		}
		return result.Ok[any, any](acc)
	})
}
