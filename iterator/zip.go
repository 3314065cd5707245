package iterator

import (
	"github.com/ddjerqq/rustkit"
	"github.com/ddjerqq/rustkit/option"
)

// ZipIterator pairs up the elements of two iterators.  Created by Zip.
type ZipIterator[T, U any] struct {
	a Iterator[T]
	b Iterator[U]
}

// Zip returns an iterator yielding pairs of corresponding elements of a
// and b.  It stops at the shorter side: once either side is exhausted
// no further pulls are made, so when a runs out first b is left
// untouched.
func Zip[T, U any](a Iterator[T], b Iterator[U]) *ZipIterator[T, U] {
	return &ZipIterator[T, U]{a: a, b: b}
}

func (z *ZipIterator[T, U]) Next() option.Option[rustkit.Pair[T, U]] {
	x, ok := z.a.Next().Get()
	if !ok {
		return option.None[rustkit.Pair[T, U]]()
	}
	y, ok := z.b.Next().Get()
	if !ok {
		return option.None[rustkit.Pair[T, U]]()
	}
	return option.Some(rustkit.Pair[T, U]{First: x, Second: y})
}

func (z *ZipIterator[T, U]) Nth(n int) option.Option[rustkit.Pair[T, U]] {
	for i := 0; i < n; i++ {
		if z.Next().IsNone() {
			return option.None[rustkit.Pair[T, U]]()
		}
	}
	return z.Next()
}
