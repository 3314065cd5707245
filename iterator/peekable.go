package iterator

import (
	"github.com/ddjerqq/rustkit/option"
	"github.com/ddjerqq/rustkit/result"
)

// PeekableIterator lets the caller look at the next element without
// consuming it.  Created by Peek.
//
// The buffer holds up to one already-pulled answer, including a
// remembered None, so peeking at an exhausted iterator never pulls the
// inner iterator twice.
type PeekableIterator[T any] struct {
	it     Iterator[T]
	peeked option.Option[option.Option[T]]
}

// Peek wraps it so its next element can be inspected before it is
// consumed.
func Peek[T any](it Iterator[T]) *PeekableIterator[T] {
	return &PeekableIterator[T]{it: it}
}

func (p *PeekableIterator[T]) Next() option.Option[T] {
	if buf, ok := p.peeked.Take().Get(); ok {
		return buf
	}
	return p.it.Next()
}

// Peek returns the element the next call to Next would yield, without
// consuming it.  Repeated peeks return the same value.
func (p *PeekableIterator[T]) Peek() option.Option[T] {
	return p.peeked.GetOrInsertWith(func() option.Option[T] {
		return p.it.Next()
	})
}

// NextIf consumes and returns the next element only if it satisfies
// pred.  Otherwise the element stays buffered and None is returned.
func (p *PeekableIterator[T]) NextIf(pred func(T) bool) option.Option[T] {
	x, ok := p.Next().Get()
	if !ok {
		return option.None[T]()
	}
	if pred(x) {
		return option.Some(x)
	}
	p.peeked = option.Some(option.Some(x))
	return option.None[T]()
}

// NextIfEq consumes and returns the next element of p only if it equals
// want.
func NextIfEq[T comparable](p *PeekableIterator[T], want T) option.Option[T] {
	return p.NextIf(func(x T) bool { return x == want })
}

func (p *PeekableIterator[T]) Count() int {
	if buf, ok := p.peeked.Take().Get(); ok {
		if buf.IsNone() {
			return 0
		}
		return 1 + Count(p.it)
	}
	return Count(p.it)
}

func (p *PeekableIterator[T]) Nth(n int) option.Option[T] {
	if buf, ok := p.peeked.Take().Get(); ok {
		if buf.IsNone() {
			return option.None[T]()
		}
		if n == 0 {
			return buf
		}
		n--
	}
	return Nth(p.it, n)
}

func (p *PeekableIterator[T]) Last() option.Option[T] {
	buffered := option.None[T]()
	if buf, ok := p.peeked.Take().Get(); ok {
		if buf.IsNone() {
			return option.None[T]()
		}
		buffered = buf
	}
	return Last(p.it).Or(buffered)
}

func (p *PeekableIterator[T]) foldAny(acc any, f func(any, T) any) any {
	if buf, ok := p.peeked.Take().Get(); ok {
		x, some := buf.Get()
		if !some {
			return acc
		}
		acc = f(acc, x)
	}
	return Fold(p.it, acc, f)
}

func (p *PeekableIterator[T]) tryFoldAny(acc any, f func(any, T) result.Result[any, any]) result.Result[any, any] {
	if buf, ok := p.peeked.Take().Get(); ok {
		x, some := buf.Get()
		if !some {
			return result.Ok[any, any](acc)
		}
		r := f(acc, x)
		if r.IsErr() {
			return r
		}
		acc = r.Unwrap()
	}
	return TryFold(p.it, acc, f)
}
