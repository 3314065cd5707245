package iterator

import (
	"github.com/ddjerqq/rustkit/option"
	"github.com/ddjerqq/rustkit/result"
)

// Fold drives the iterator to completion, threading an accumulator
// through f for every element, and returns the final accumulator.
// It is the canonical bulk traversal; most other terminal operations
// are expressed through it.
func Fold[T, A any](it Iterator[T], init A, f func(A, T) A) A {
	if h, ok := it.(folder[T]); ok {
		out := h.foldAny(init, func(acc any, x T) any {
			return f(acc.(A), x)
		})
		return out.(A)
	}
	acc := init
	for {
		nxt := it.Next()
		if nxt.IsNone() {
			return acc
		}
		acc = f(acc, nxt.Unwrap())
	}
}

// TryFold folds like Fold but stops at the first Err returned by f,
// propagating it unchanged without pulling further elements.  A clean
// run returns Ok of the final accumulator.
func TryFold[T, A, E any](it Iterator[T], init A, f func(A, T) result.Result[A, E]) result.Result[A, E] {
	if h, ok := it.(tryFolder[T]); ok {
		out := h.tryFoldAny(init, func(acc any, x T) result.Result[any, any] {
			return eraseResult(f(acc.(A), x))
		})
		return uneraseResult[A, E](out)
	}
	acc := init
	for {
		nxt := it.Next()
		if nxt.IsNone() {
			return result.Ok[A, E](acc)
		}
		r := f(acc, nxt.Unwrap())
		if r.IsErr() {
			return r
		}
		acc = r.Unwrap()
	}
}

func eraseResult[A, E any](r result.Result[A, E]) result.Result[any, any] {
	if r.IsErr() {
		return result.Err[any, any](r.UnwrapErr())
	}
	return result.Ok[any, any](r.Unwrap())
}

func uneraseResult[A, E any](r result.Result[any, any]) result.Result[A, E] {
	if r.IsErr() {
		return result.Err[A, E](r.UnwrapErr().(E))
	}
	return result.Ok[A, E](r.Unwrap().(A))
}

// ForEach consumes the iterator, calling f on every element.
func ForEach[T any](it Iterator[T], f func(T)) {
	Fold(it, struct{}{}, func(acc struct{}, x T) struct{} {
		f(x)
		return acc
	})
}

// Count consumes the iterator and returns the number of elements it
// yielded.
func Count[T any](it Iterator[T]) int {
	if h, ok := it.(counter); ok {
		return h.Count()
	}
	return Fold(it, 0, func(n int, _ T) int { return n + 1 })
}

// Last consumes the iterator and returns the final element it yielded,
// or None when it was already exhausted.
func Last[T any](it Iterator[T]) option.Option[T] {
	if h, ok := it.(laster[T]); ok {
		return h.Last()
	}
	return Fold(it, option.None[T](), func(_ option.Option[T], x T) option.Option[T] {
		return option.Some(x)
	})
}

// Reduce folds the iterator using its first element as the initial
// accumulator, returning None when the iterator is empty.
func Reduce[T any](it Iterator[T], f func(T, T) T) option.Option[T] {
	first := it.Next()
	if first.IsNone() {
		return first
	}
	return option.Some(Fold(it, first.Unwrap(), f))
}

// All reports whether every element satisfies pred, stopping at the
// first element that does not.  All of an exhausted iterator is true.
func All[T any](it Iterator[T], pred func(T) bool) bool {
	return TryFold(it, struct{}{}, func(acc struct{}, x T) result.Result[struct{}, struct{}] {
		if pred(x) {
			return result.Ok[struct{}, struct{}](acc)
		}
		return result.Err[struct{}, struct{}](struct{}{})
	}).IsOk()
}

// Any reports whether some element satisfies pred, stopping at the
// first element that does.  Any of an exhausted iterator is false.
func Any[T any](it Iterator[T], pred func(T) bool) bool {
	return TryFold(it, struct{}{}, func(acc struct{}, x T) result.Result[struct{}, struct{}] {
		if pred(x) {
			return result.Err[struct{}, struct{}](struct{}{})
		}
		return result.Ok[struct{}, struct{}](acc)
	}).IsErr()
}

// Find returns the first element satisfying pred, consuming the
// iterator up to and including that element.
func Find[T any](it Iterator[T], pred func(T) bool) option.Option[T] {
	if h, ok := it.(finder[T]); ok {
		return h.Find(pred)
	}
	// The matching element rides the Err arm out of the short-circuit.
	return TryFold(it, struct{}{}, func(acc struct{}, x T) result.Result[struct{}, T] {
		if pred(x) {
			return result.Err[struct{}, T](x)
		}
		return result.Ok[struct{}, T](acc)
	}).Err()
}

// FindMap applies f to each element and returns the first present
// result, consuming the iterator up to and including that element.
func FindMap[T, U any](it Iterator[T], f func(T) option.Option[U]) option.Option[U] {
	return TryFold(it, struct{}{}, func(acc struct{}, x T) result.Result[struct{}, U] {
		if v, ok := f(x).Get(); ok {
			return result.Err[struct{}, U](v)
		}
		return result.Ok[struct{}, U](acc)
	}).Err()
}

// Position returns the zero-based index of the first element
// satisfying pred, or None when no element does.
func Position[T any](it Iterator[T], pred func(T) bool) option.Option[int] {
	return TryFold(it, 0, func(i int, x T) result.Result[int, int] {
		if pred(x) {
			return result.Err[int, int](i)
		}
		return result.Ok[int, int](i + 1)
	}).Err()
}
