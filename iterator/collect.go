package iterator

import (
	"golang.org/x/exp/constraints"

	"github.com/ddjerqq/rustkit/option"
	"github.com/ddjerqq/rustkit/result"
)

// Collect drains the iterator into a slice, preserving order.  Sources
// implementing the Size capability get their backing array allocated
// up front.
func Collect[T any](it Iterator[T]) []T {
	out := []T{}
	if s, ok := it.(Size); ok {
		out = make([]T, 0, s.Size())
	}
	return Fold(it, out, func(acc []T, x T) []T {
		return append(acc, x)
	})
}

// CollectResult drains an iterator of Results into a Result of a
// slice: the first Err encountered is returned as-is and no further
// elements are pulled; otherwise Ok holds every success value in
// order.
func CollectResult[T, E any](it Iterator[result.Result[T, E]]) result.Result[[]T, E] {
	out := []T{}
	if s, ok := it.(Size); ok {
		out = make([]T, 0, s.Size())
	}
	return TryFold(it, out, func(acc []T, r result.Result[T, E]) result.Result[[]T, E] {
		v, e, ok := r.Get()
		if !ok {
			return result.Err[[]T, E](e)
		}
		return result.Ok[[]T, E](append(acc, v))
	})
}

// Partition consumes the iterator, routing each element into one of
// two slices depending on pred, preserving arrival order within each.
func Partition[T any](it Iterator[T], pred func(T) bool) (matched, rest []T) {
	matched, rest = []T{}, []T{}
	ForEach(it, func(x T) {
		if pred(x) {
			matched = append(matched, x)
		} else {
			rest = append(rest, x)
		}
	})
	return matched, rest
}

// Sum consumes the iterator and returns the sum of its elements,
// starting from the zero value.
func Sum[T constraints.Ordered](it Iterator[T]) T {
	var zero T
	return Fold(it, zero, func(acc, x T) T { return acc + x })
}

// MaxBy returns the element for which no later element wins the
// supplied "greater" relation, or None when the iterator is empty.
// Ties keep the earlier element.
func MaxBy[T any](it Iterator[T], greater func(a, b T) bool) option.Option[T] {
	return Reduce(it, func(best, x T) T {
		if greater(x, best) {
			return x
		}
		return best
	})
}

// MinBy is MaxBy with the relation inverted: it returns the element no
// later element undercuts.  Ties keep the earlier element.
func MinBy[T any](it Iterator[T], less func(a, b T) bool) option.Option[T] {
	return Reduce(it, func(best, x T) T {
		if less(x, best) {
			return x
		}
		return best
	})
}

// Max returns the largest element, or None when the iterator is empty.
func Max[T constraints.Ordered](it Iterator[T]) option.Option[T] {
	return MaxBy(it, func(a, b T) bool { return a > b })
}

// Min returns the smallest element, or None when the iterator is
// empty.
func Min[T constraints.Ordered](it Iterator[T]) option.Option[T] {
	return MinBy(it, func(a, b T) bool { return a < b })
}
