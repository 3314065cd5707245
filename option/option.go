// Package option implements an optional-value container.
//
// An Option[T] is either Some and holds a value of type T, or None and
// holds nothing.  It replaces nil sentinels and (value, ok) pairs at
// API boundaries: absence is data, not a special case the caller can
// forget to check.
//
// The zero value of Option[T] is None.
package option

import (
	"fmt"

	"github.com/ddjerqq/rustkit"
)

// Option holds either a value of type T (Some) or nothing (None).
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr converts a possibly-nil pointer into an Option: nil becomes
// None, anything else becomes Some of the pointed-to value.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsSomeAnd reports whether the option holds a value and that value
// satisfies pred.  pred is never called on None.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.some && pred(o.value)
}

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the held value and whether it was present, in the
// comma-ok style.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Expect returns the held value, panicking with an UnwrapError
// carrying msg when the option is None.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(&rustkit.UnwrapError{Msg: msg})
	}
	return o.value
}

// Unwrap returns the held value, panicking with an UnwrapError when
// the option is None.  Prefer UnwrapOr, UnwrapOrElse or Get unless
// absence is a programming error at the call site.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(&rustkit.UnwrapError{Msg: "called `Option.Unwrap()` on a `None` value"})
	}
	return o.value
}

// UnwrapOr returns the held value, or def when the option is None.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}
	return o.value
}

// UnwrapOrElse returns the held value, or the result of calling f when
// the option is None.  f is only evaluated on None.
func (o Option[T]) UnwrapOrElse(f func() T) T {
	if !o.some {
		return f()
	}
	return o.value
}

// Filter returns the option unchanged when it holds a value satisfying
// pred, and None otherwise.  pred is never called on None.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

// Inspect calls f with the held value when present and returns the
// option unchanged.
func (o Option[T]) Inspect(f func(T)) Option[T] {
	if o.some {
		f(o.value)
	}
	return o
}

// And returns None when the option is None, and rhs otherwise.
func (o Option[T]) And(rhs Option[T]) Option[T] {
	if !o.some {
		return o
	}
	return rhs
}

// Or returns the option when it holds a value, and rhs otherwise.
func (o Option[T]) Or(rhs Option[T]) Option[T] {
	if !o.some {
		return rhs
	}
	return o
}

// OrElse returns the option when it holds a value, and the result of
// calling f otherwise.  f is only evaluated on None.
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if !o.some {
		return f()
	}
	return o
}

// Xor returns whichever of o and rhs is Some when exactly one of them
// is, and None otherwise.
func (o Option[T]) Xor(rhs Option[T]) Option[T] {
	switch {
	case o.some && !rhs.some:
		return o
	case !o.some && rhs.some:
		return rhs
	default:
		return None[T]()
	}
}

// Insert writes v into the option, overwriting any previous value, and
// returns v.  See GetOrInsert, which keeps an existing value.
func (o *Option[T]) Insert(v T) T {
	o.value = v
	o.some = true
	return v
}

// GetOrInsert writes v into the option only when it is None, then
// returns the held value.
func (o *Option[T]) GetOrInsert(v T) T {
	if !o.some {
		o.value = v
		o.some = true
	}
	return o.value
}

// GetOrInsertWith writes the result of f into the option only when it
// is None, then returns the held value.  f is only evaluated on None.
func (o *Option[T]) GetOrInsertWith(f func() T) T {
	if !o.some {
		o.value = f()
		o.some = true
	}
	return o.value
}

// Take moves the value out of the option, leaving None behind, and
// returns the previous content.
func (o *Option[T]) Take() Option[T] {
	prev := *o
	*o = None[T]()
	return prev
}

// Replace writes v into the option and returns the previous content.
func (o *Option[T]) Replace(v T) Option[T] {
	prev := *o
	*o = Some(v)
	return prev
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies f to the held value, leaving None unchanged.  f is never
// called on None.
//
// Map is a free function because Go methods cannot introduce the
// result type parameter U.  The same applies to the other
// type-changing transforms below.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.IsNone() {
		return None[U]()
	}
	return Some(f(o.value))
}

// MapOr applies f to the held value, or returns def when the option is
// None.
func MapOr[T, U any](o Option[T], def U, f func(T) U) U {
	if o.IsNone() {
		return def
	}
	return f(o.value)
}

// MapOrElse applies f to the held value, or returns the result of def
// when the option is None.
func MapOrElse[T, U any](o Option[T], def func() U, f func(T) U) U {
	if o.IsNone() {
		return def()
	}
	return f(o.value)
}

// And returns None when a is None, and b otherwise.  Unlike the method
// of the same name it may change the value type.
func And[T, U any](a Option[T], b Option[U]) Option[U] {
	if a.IsNone() {
		return None[U]()
	}
	return b
}

// AndThen returns None when the option is None, and f applied to the
// held value otherwise.  Some languages call this operation flatmap.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.IsNone() {
		return None[U]()
	}
	return f(o.value)
}

// Zip pairs the values of a and b when both are Some, and returns None
// otherwise.
func Zip[T, U any](a Option[T], b Option[U]) Option[rustkit.Pair[T, U]] {
	if a.some && b.some {
		return Some(rustkit.Pair[T, U]{First: a.value, Second: b.value})
	}
	return None[rustkit.Pair[T, U]]()
}

// ZipWith combines the values of a and b through f when both are Some,
// and returns None otherwise.  f is only called when both hold values.
func ZipWith[T, U, V any](a Option[T], b Option[U], f func(T, U) V) Option[V] {
	if a.some && b.some {
		return Some(f(a.value, b.value))
	}
	return None[V]()
}

// Flatten removes one level of nesting from an Option of an Option.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if o.IsNone() {
		return None[T]()
	}
	return o.value
}

// Contains reports whether the option holds a value equal to v.
func Contains[T comparable](o Option[T], v T) bool {
	return o.some && o.value == v
}

// Equal reports whether a and b hold the same variant with equal
// values.  None equals None; Some never equals None.
func Equal[T comparable](a, b Option[T]) bool {
	if a.some != b.some {
		return false
	}
	return !a.some || a.value == b.value
}
