// Package result implements a success-or-error container.
//
// A Result[T, E] is either Ok and holds a value of type T, or Err and
// holds an error payload of type E.  It is the type used for returning
// and propagating recoverable failures without panics: the error arm
// travels as data through combinators until the caller decides what to
// do with it.
//
// The package also hosts every conversion between Option and Result
// (OkOr, OkOrElse and the two Transpose directions): result depends on
// option, and Go does not permit the reverse import.
package result

import (
	"fmt"

	"github.com/ddjerqq/rustkit"
	"github.com/ddjerqq/rustkit/option"
)

// Result holds either a success value of type T (Ok) or an error
// payload of type E (Err).
type Result[T, E any] struct {
	value T
	errv  E
	ok    bool
}

// Ok returns a Result holding the success value v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

// Err returns a Result holding the error payload e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{errv: e}
}

// From invokes f and captures its outcome: a non-nil error becomes
// Err, anything else becomes Ok of the returned value.
func From[T any](f func() (T, error)) Result[T, error] {
	v, err := f()
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](v)
}

// Capture invokes f and recovers any panic into the Err arm.  A panic
// with an error value is kept as-is; any other panic value is
// formatted into an error.  A clean return becomes Ok.
func Capture[T any](f func() T) (r Result[T, error]) {
	defer func() {
		if p := recover(); p != nil {
			if err, ok := p.(error); ok {
				r = Err[T, error](err)
			} else {
				r = Err[T, error](fmt.Errorf("%v", p))
			}
		}
	}()
	return Ok[T, error](f())
}

// IsOk reports whether the result is Ok.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsOkAnd reports whether the result is Ok and its value satisfies
// pred.  pred is never called on Err.
func (r Result[T, E]) IsOkAnd(pred func(T) bool) bool {
	return r.ok && pred(r.value)
}

// IsErr reports whether the result is Err.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// IsErrAnd reports whether the result is Err and its payload satisfies
// pred.  pred is never called on Ok.
func (r Result[T, E]) IsErrAnd(pred func(E) bool) bool {
	return !r.ok && pred(r.errv)
}

// Ok projects the success arm into an Option: Ok(v) becomes Some(v),
// Err becomes None.
func (r Result[T, E]) Ok() option.Option[T] {
	if !r.ok {
		return option.None[T]()
	}
	return option.Some(r.value)
}

// Err projects the error arm into an Option: Err(e) becomes Some(e),
// Ok becomes None.
func (r Result[T, E]) Err() option.Option[E] {
	if r.ok {
		return option.None[E]()
	}
	return option.Some(r.errv)
}

// Expect returns the success value, panicking with an UnwrapError
// carrying msg when the result is Err.  An error payload is chained as
// the cause.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(&rustkit.UnwrapError{Msg: msg, Cause: errCause(r.errv)})
	}
	return r.value
}

// ExpectErr returns the error payload, panicking with an UnwrapError
// carrying msg when the result is Ok.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(&rustkit.UnwrapError{Msg: msg})
	}
	return r.errv
}

// Unwrap returns the success value, panicking with an UnwrapError when
// the result is Err.  An error payload is chained as the cause so that
// downstream diagnostics keep the original fault.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(&rustkit.UnwrapError{Msg: "called `Result.Unwrap()` on an `Err` value", Cause: errCause(r.errv)})
	}
	return r.value
}

// UnwrapErr returns the error payload, panicking with an UnwrapError
// when the result is Ok.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(&rustkit.UnwrapError{Msg: "called `Result.UnwrapErr()` on an `Ok` value"})
	}
	return r.errv
}

// UnwrapOr returns the success value, or def when the result is Err.
func (r Result[T, E]) UnwrapOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// UnwrapOrElse returns the success value, or the result of applying f
// to the error payload.  f is only evaluated on Err.
func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if !r.ok {
		return f(r.errv)
	}
	return r.value
}

// Inspect calls f with the success value when the result is Ok and
// returns the result unchanged.
func (r Result[T, E]) Inspect(f func(T)) Result[T, E] {
	if r.ok {
		f(r.value)
	}
	return r
}

// InspectErr calls f with the error payload when the result is Err and
// returns the result unchanged.
func (r Result[T, E]) InspectErr(f func(E)) Result[T, E] {
	if !r.ok {
		f(r.errv)
	}
	return r
}

// And returns rhs when the result is Ok, and the Err of r otherwise.
func (r Result[T, E]) And(rhs Result[T, E]) Result[T, E] {
	if !r.ok {
		return r
	}
	return rhs
}

// Or returns r when it is Ok, and rhs otherwise.
func (r Result[T, E]) Or(rhs Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return rhs
}

// Get returns the success value, the error payload and which arm is
// active, in the comma-ok style.
func (r Result[T, E]) Get() (T, E, bool) {
	return r.value, r.errv, r.ok
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.errv)
}

// errCause extracts an error from an arbitrary payload for UnwrapError
// chaining; non-error payloads yield no cause.
func errCause(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return nil
}

// Map applies f to the success value, leaving Err unchanged.  f is
// never called on Err.
//
// Map and the other transforms below are free functions because Go
// methods cannot introduce new type parameters.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.errv)
	}
	return Ok[U, E](f(r.value))
}

// MapErr applies f to the error payload, leaving Ok unchanged.  f is
// never called on Ok.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T, F](f(r.errv))
}

// MapOr applies f to the success value, or returns def when the result
// is Err.
func MapOr[T, U, E any](r Result[T, E], def U, f func(T) U) U {
	if !r.ok {
		return def
	}
	return f(r.value)
}

// MapOrElse applies f to the success value, or def to the error
// payload.  Exactly one of the two functions is evaluated.
func MapOrElse[T, U, E any](r Result[T, E], def func(E) U, f func(T) U) U {
	if !r.ok {
		return def(r.errv)
	}
	return f(r.value)
}

// AndThen returns f applied to the success value, or the Err of r
// unchanged.  f is called at most once, and only on Ok.
func AndThen[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.errv)
	}
	return f(r.value)
}

// OrElse returns f applied to the error payload, or the Ok of r
// unchanged.  f is called at most once, and only on Err.
func OrElse[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return f(r.errv)
}

// And returns rhs when r is Ok, and the Err of r otherwise.  Unlike
// the method of the same name it may change the success type.
func And[T, U, E any](r Result[T, E], rhs Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.errv)
	}
	return rhs
}

// Or returns r when it is Ok, and rhs otherwise.  Unlike the method of
// the same name it may change the error type.
func Or[T, E, F any](r Result[T, E], rhs Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return rhs
}

// Flatten removes one level of nesting from a Result of a Result.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if !r.ok {
		return Err[T, E](r.errv)
	}
	return r.value
}

// Contains reports whether the result is Ok with a value equal to v.
func Contains[T comparable, E any](r Result[T, E], v T) bool {
	return r.ok && r.value == v
}

// ContainsErr reports whether the result is Err with a payload equal
// to e.
func ContainsErr[T any, E comparable](r Result[T, E], e E) bool {
	return !r.ok && r.errv == e
}

// Equal reports whether a and b hold the same arm with equal contents.
// An Ok never equals an Err.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return a.value == b.value
	}
	return a.errv == b.errv
}

// OkOr converts an Option into a Result: Some(v) becomes Ok(v), None
// becomes Err(e).
func OkOr[T, E any](o option.Option[T], e E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T, E](e)
}

// OkOrElse converts an Option into a Result, computing the error
// payload lazily: f is only called on None.
func OkOrElse[T, E any](o option.Option[T], f func() E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T, E](f())
}

// TransposeOption converts an Option of a Result into a Result of an
// Option: None becomes Ok(None), Some(Ok(v)) becomes Ok(Some(v)) and
// Some(Err(e)) becomes Err(e).
func TransposeOption[T, E any](o option.Option[Result[T, E]]) Result[option.Option[T], E] {
	r, ok := o.Get()
	if !ok {
		return Ok[option.Option[T], E](option.None[T]())
	}
	if !r.ok {
		return Err[option.Option[T], E](r.errv)
	}
	return Ok[option.Option[T], E](option.Some(r.value))
}

// TransposeResult converts a Result of an Option into an Option of a
// Result: Ok(None) becomes None, Ok(Some(v)) becomes Some(Ok(v)) and
// Err(e) becomes Some(Err(e)).
func TransposeResult[T, E any](r Result[option.Option[T], E]) option.Option[Result[T, E]] {
	if !r.ok {
		return option.Some(Err[T, E](r.errv))
	}
	if v, ok := r.value.Get(); ok {
		return option.Some(Ok[T, E](v))
	}
	return option.None[Result[T, E]]()
}
