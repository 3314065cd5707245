package iterator

import (
	"github.com/ddjerqq/rustkit/option"
	"github.com/ddjerqq/rustkit/result"
)

// AdvanceBy eagerly skips n elements by calling Next up to n times.
// It returns Ok when the iterator advanced by all n elements, and
// Err(k) when exhaustion was hit first, where k < n is the number of
// elements actually skipped.  Callers use k to adjust their own
// remaining budget.
//
// AdvanceBy(it, 0) is a valid call and always succeeds; some adapters
// use it to normalize internal state.
func AdvanceBy[T any](it Iterator[T], n int) result.Result[struct{}, int] {
	if h, ok := it.(advancer); ok {
		return h.AdvanceBy(n)
	}
	for i := 0; i < n; i++ {
		if it.Next().IsNone() {
			return result.Err[struct{}, int](i)
		}
	}
	return result.Ok[struct{}, int](struct{}{})
}

// Nth skips n elements and returns the one after them, or None when
// the iterator ran out first.  The count starts from zero: Nth(it, 0)
// returns the next element.  All skipped elements and the returned one
// are consumed; repeated Nth calls do not rewind.
func Nth[T any](it Iterator[T], n int) option.Option[T] {
	if h, ok := it.(nther[T]); ok {
		return h.Nth(n)
	}
	if AdvanceBy(it, n).IsErr() {
		return option.None[T]()
	}
	return it.Next()
}
