// Package rustkit provides composable abstractions for explicit,
// exception-free control flow: an optional-value container
// (package option), a success-or-error container (package result) and
// a lazy, pull-based iteration protocol with a library of adapters
// (package iterator).
//
// The root package holds the small vocabulary shared by the
// sub-packages: the Pair product type and the UnwrapError fault
// carried by panics from the Unwrap/Expect family.
package rustkit

// Pair is a two-element product type.  Go has no tuples; Pair is the
// element type yielded by iterator.Zip and iterator.Enumerate and the
// value produced by option.Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// UnwrapError is the panic payload raised by Unwrap and Expect on the
// wrong variant of an Option or Result.  When the extracted payload is
// itself an error, it is chained as the cause so that errors.Unwrap
// and errors.Is reach the original fault.
type UnwrapError struct {
	Msg   string
	Cause error
}

func (e *UnwrapError) Error() string {
	if e.Cause != nil {
		return e.Msg + ": " + e.Cause.Error()
	}
	return e.Msg
}

func (e *UnwrapError) Unwrap() error {
	return e.Cause
}
