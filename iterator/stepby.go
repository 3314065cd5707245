package iterator

import (
	"github.com/ddjerqq/rustkit/option"
	"github.com/ddjerqq/rustkit/result"
)

// StepByIterator yields the first element of an inner iterator and then
// every step-th element after it.  Created by StepBy.
type StepByIterator[T any] struct {
	it Iterator[T]
	// number of elements skipped between yields, i.e. step - 1
	step      int
	firstTake bool
}

// StepBy returns an iterator yielding every step-th element of it,
// starting with the first.  It panics if step is zero.
func StepBy[T any](it Iterator[T], step int) *StepByIterator[T] {
	if step == 0 {
		panic("StepBy: step must be non-zero")
	}
	return &StepByIterator[T]{it: it, step: step - 1, firstTake: true}
}

func (s *StepByIterator[T]) Next() option.Option[T] {
	if s.firstTake {
		s.firstTake = false
		return s.it.Next()
	}
	return Nth(s.it, s.step)
}

func (s *StepByIterator[T]) Nth(n int) option.Option[T] {
	if s.firstTake {
		s.firstTake = false
		first := s.it.Next()
		if n == 0 {
			return first
		}
		if first.IsNone() {
			return first
		}
		n--
	}
	// each remaining request lands (n+1) strides further along the
	// inner iterator
	return Nth(s.it, (n+1)*(s.step+1)-1)
}

func (s *StepByIterator[T]) foldAny(acc any, f func(any, T) any) any {
	if s.firstTake {
		s.firstTake = false
		x, ok := s.it.Next().Get()
		if !ok {
			return acc
		}
		acc = f(acc, x)
	}
	return Fold[T](FromFn(func() option.Option[T] {
		return Nth(s.it, s.step)
	}), acc, f)
}

func (s *StepByIterator[T]) tryFoldAny(acc any, f func(any, T) result.Result[any, any]) result.Result[any, any] {
	if s.firstTake {
		s.firstTake = false
		x, ok := s.it.Next().Get()
		if !ok {
			return result.Ok[any, any](acc)
		}
		r := f(acc, x)
		if r.IsErr() {
			return r
		}
		acc = r.Unwrap()
	}
	return TryFold[T](FromFn(func() option.Option[T] {
		return Nth(s.it, s.step)
	}), acc, f)
}
