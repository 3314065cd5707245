package iterator

import (
	"github.com/ddjerqq/rustkit/option"
	"github.com/ddjerqq/rustkit/result"
)

// SkipWhileIterator drops elements from the front of an inner iterator
// while a predicate holds, then yields everything after unconditionally.
// Created by SkipWhile.
type SkipWhileIterator[T any] struct {
	it   Iterator[T]
	pred func(T) bool
	done bool
}

// SkipWhile returns an iterator that skips the longest prefix of
// elements satisfying pred.  The predicate is never consulted again
// after it first returns false.
func SkipWhile[T any](it Iterator[T], pred func(T) bool) *SkipWhileIterator[T] {
	return &SkipWhileIterator[T]{it: it, pred: pred}
}

// check is the post-latch view of the predicate: until the latch flips
// it rejects the skipped prefix, afterwards it accepts everything.
func (s *SkipWhileIterator[T]) check(x T) bool {
	if s.done {
		return true
	}
	if s.pred(x) {
		return false
	}
	s.done = true
	return true
}

func (s *SkipWhileIterator[T]) Next() option.Option[T] {
	if s.done {
		return s.it.Next()
	}
	return Find(s.it, s.check)
}

func (s *SkipWhileIterator[T]) foldAny(acc any, f func(any, T) any) any {
	if !s.done {
		x, ok := Find(s.it, s.check).Get()
		if !ok {
			return acc
		}
		acc = f(acc, x)
	}
	return Fold(s.it, acc, f)
}

func (s *SkipWhileIterator[T]) tryFoldAny(acc any, f func(any, T) result.Result[any, any]) result.Result[any, any] {
	if !s.done {
		x, ok := Find(s.it, s.check).Get()
		if !ok {
			return result.Ok[any, any](acc)
		}
		r := f(acc, x)
		if r.IsErr() {
			return r
		}
		acc = r.Unwrap()
	}
	return TryFold(s.it, acc, f)
}
