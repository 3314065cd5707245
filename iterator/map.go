package iterator

import (
	"github.com/ddjerqq/rustkit/option"
	"github.com/ddjerqq/rustkit/result"
)

// MapIterator lazily applies a function to every element of an inner
// iterator.  Created by Map.
type MapIterator[T, U any] struct {
	it Iterator[T]
	f  func(T) U
}

// Map returns an iterator that yields f applied to each element of it.
// Nothing is evaluated until the returned iterator is pulled.
func Map[T, U any](it Iterator[T], f func(T) U) *MapIterator[T, U] {
	return &MapIterator[T, U]{it: it, f: f}
}

func (m *MapIterator[T, U]) Next() option.Option[U] {
	return option.Map(m.it.Next(), m.f)
}

// Bulk traversal composes f into the callback and folds the inner
// iterator directly, so a Map over an overriding adapter keeps the
// inner adapter's fast path.
func (m *MapIterator[T, U]) foldAny(acc any, f func(any, U) any) any {
	return Fold(m.it, acc, func(acc any, x T) any {
		return f(acc, m.f(x))
	})
}

func (m *MapIterator[T, U]) tryFoldAny(acc any, f func(any, U) result.Result[any, any]) result.Result[any, any] {
	return TryFold(m.it, acc, func(acc any, x T) result.Result[any, any] {
		return f(acc, m.f(x))
	})
}
