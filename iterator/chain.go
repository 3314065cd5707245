package iterator

import (
	"github.com/ddjerqq/rustkit/option"
	"github.com/ddjerqq/rustkit/result"
)

// ChainIterator yields every element of a first iterator followed by
// every element of a second.  Created by Chain.
//
// Once the first iterator reports exhaustion its slot is cleared
// permanently: it is released and never queried again, no matter what
// is asked of the chain afterwards.  The second iterator is not fused.
type ChainIterator[T any] struct {
	a option.Option[Iterator[T]]
	b option.Option[Iterator[T]]
}

// Chain returns an iterator yielding all of a, then all of b.
func Chain[T any](a, b Iterator[T]) *ChainIterator[T] {
	return &ChainIterator[T]{
		a: option.Some(a),
		b: option.Some(b),
	}
}

func (c *ChainIterator[T]) Next() option.Option[T] {
	if a, ok := c.a.Get(); ok {
		if x := a.Next(); x.IsSome() {
			return x
		}
		c.a = option.None[Iterator[T]]()
	}
	if b, ok := c.b.Get(); ok {
		return b.Next()
	}
	return option.None[T]()
}

// Count sums the counts of whichever sides are still held.
func (c *ChainIterator[T]) Count() int {
	n := 0
	if a, ok := c.a.Take().Get(); ok {
		n += Count(a)
	}
	if b, ok := c.b.Take().Get(); ok {
		n += Count(b)
	}
	return n
}

func (c *ChainIterator[T]) foldAny(acc any, f func(any, T) any) any {
	if a, ok := c.a.Take().Get(); ok {
		acc = Fold(a, acc, f)
	}
	if b, ok := c.b.Take().Get(); ok {
		acc = Fold(b, acc, f)
	}
	return acc
}

func (c *ChainIterator[T]) tryFoldAny(acc any, f func(any, T) result.Result[any, any]) result.Result[any, any] {
	if a, ok := c.a.Get(); ok {
		r := TryFold(a, acc, f)
		if r.IsErr() {
			return r
		}
		acc = r.Unwrap()
		c.a = option.None[Iterator[T]]()
	}
	if b, ok := c.b.Get(); ok {
		// the second side is deliberately not cleared: the chain is
		// not fused past it
		return TryFold(b, acc, f)
	}
	return result.Ok[any, any](acc)
}

// AdvanceBy spends the budget on the first side, carries any shortfall
// into the second, and reports the combined progress.
func (c *ChainIterator[T]) AdvanceBy(n int) result.Result[struct{}, int] {
	rem := n
	if a, ok := c.a.Get(); ok {
		res := AdvanceBy(a, rem)
		if res.IsOk() {
			return res
		}
		rem -= res.UnwrapErr()
		c.a = option.None[Iterator[T]]()
	}
	if b, ok := c.b.Get(); ok {
		res := AdvanceBy(b, rem)
		if res.IsOk() {
			return res
		}
		rem -= res.UnwrapErr()
	}
	if rem == 0 {
		return result.Ok[struct{}, int](struct{}{})
	}
	return result.Err[struct{}, int](n - rem)
}

func (c *ChainIterator[T]) Nth(n int) option.Option[T] {
	if a, ok := c.a.Get(); ok {
		res := AdvanceBy(a, n)
		if res.IsOk() {
			if x := a.Next(); x.IsSome() {
				return x
			}
			n = 0
		} else {
			n -= res.UnwrapErr()
		}
		c.a = option.None[Iterator[T]]()
	}
	if b, ok := c.b.Get(); ok {
		return Nth(b, n)
	}
	return option.None[T]()
}

func (c *ChainIterator[T]) Find(pred func(T) bool) option.Option[T] {
	if a, ok := c.a.Get(); ok {
		if x := Find(a, pred); x.IsSome() {
			return x
		}
		c.a = option.None[Iterator[T]]()
	}
	if b, ok := c.b.Get(); ok {
		return Find(b, pred)
	}
	return option.None[T]()
}

func (c *ChainIterator[T]) Last() option.Option[T] {
	var aLast, bLast option.Option[T]
	if a, ok := c.a.Take().Get(); ok {
		aLast = Last(a)
	}
	if b, ok := c.b.Take().Get(); ok {
		bLast = Last(b)
	}
	return bLast.Or(aLast)
}
