// Package iterator provides a lazy, pull-based iteration protocol and
// a library of composable adapters over it.
//
// The only required capability is Next, which either yields the next
// element wrapped in Some or signals exhaustion with None.  Everything
// else is derived from Next: the terminal algorithms (Fold, TryFold,
// Count, Find, Collect, ...) and the adapters (Map, Filter, Chain,
// Zip, Peekable, ...).  Most are free generic functions because Go
// methods cannot introduce the extra type parameters they need.
//
// Nothing is computed until demanded: a terminal operation pulls
// elements one at a time from the outermost adapter, which pulls from
// its inner iterator(s), down to the source.  Adapters buffer nothing
// beyond what their own semantics require (Peekable holds at most one
// element).
//
// Iterators are single-owner, single-goroutine values.  No internal
// synchronization is provided; do not share an iterator between
// goroutines without external locking.
package iterator

import (
	"github.com/ddjerqq/rustkit/option"
	"github.com/ddjerqq/rustkit/result"
)

// Iterator is the iteration capability: Next advances the iterator and
// returns the next element, or None when iteration is finished.
//
// Implementations may or may not keep returning None once exhausted;
// adapters that guarantee permanent exhaustion say so in their own
// documentation.
type Iterator[T any] interface {
	Next() option.Option[T]
}

// Size is an optional capability for iterators that know how many
// elements remain.  Collect uses it to preallocate.
type Size interface {
	Size() uint
}

// The interfaces below are the override points for the derived
// algorithms.  An adapter that can traverse in bulk more efficiently
// than the element-at-a-time default implements the matching
// interface, and the free functions dispatch to it.  The fold hooks
// carry the accumulator as `any` because methods cannot be generic in
// the accumulator type; Fold and TryFold translate between the typed
// and untyped views.

type folder[T any] interface {
	foldAny(acc any, f func(any, T) any) any
}

type tryFolder[T any] interface {
	tryFoldAny(acc any, f func(any, T) result.Result[any, any]) result.Result[any, any]
}

type counter interface {
	Count() int
}

type advancer interface {
	AdvanceBy(n int) result.Result[struct{}, int]
}

type nther[T any] interface {
	Nth(n int) option.Option[T]
}

type finder[T any] interface {
	Find(pred func(T) bool) option.Option[T]
}

type laster[T any] interface {
	Last() option.Option[T]
}
