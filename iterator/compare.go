package iterator

// EqBy compares two iterators in lockstep using the supplied relation.
// They are equal iff they exhaust at the same step and every paired
// element satisfies eq.  Both iterators are consumed up to the first
// difference.
func EqBy[T, U any](a Iterator[T], b Iterator[U], eq func(T, U) bool) bool {
	for {
		x := a.Next()
		if x.IsNone() {
			return b.Next().IsNone()
		}
		y := b.Next()
		if y.IsNone() {
			return false
		}
		if !eq(x.Unwrap(), y.Unwrap()) {
			return false
		}
	}
}

// Eq reports whether two iterators yield equal elements and exhaust at
// the same step.
func Eq[T comparable](a, b Iterator[T]) bool {
	return EqBy(a, b, func(x, y T) bool { return x == y })
}

// Ne is the negation of Eq.
func Ne[T comparable](a, b Iterator[T]) bool {
	return !Eq(a, b)
}
