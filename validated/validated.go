package validated

import "errors"

// Semigroup is implemented by containers that can be concatenated.
// Combine must keep the receiver's elements before the argument's.
type Semigroup[S any] interface {
	Combine(S) S
}

// Validated is the result of a validation that may have failed.
type Validated[E Semigroup[E], A any] struct {
	value   A
	errs    E
	invalid bool
}

// Valid returns a successful result.
func Valid[E Semigroup[E], A any](a A) Validated[E, A] {
	return Validated[E, A]{value: a}
}

// Invalid returns a failed result carrying errs.
func Invalid[E Semigroup[E], A any](errs E) Validated[E, A] {
	return Validated[E, A]{errs: errs, invalid: true}
}

// IsValid reports whether v holds a value.
func (v Validated[E, A]) IsValid() bool {
	return !v.invalid
}

// Value returns the value and true when v is valid.
func (v Validated[E, A]) Value() (A, bool) {
	if v.invalid {
		var zero A
		return zero, false
	}
	return v.value, true
}

// Errors returns the accumulated errors and true when v is invalid.
func (v Validated[E, A]) Errors() (E, bool) {
	if !v.invalid {
		var zero E
		return zero, false
	}
	return v.errs, true
}

// Fold collapses v with onInvalid or onValid.
func Fold[E Semigroup[E], A, R any](v Validated[E, A], onInvalid func(E) R, onValid func(A) R) R {
	if v.invalid {
		return onInvalid(v.errs)
	}
	return onValid(v.value)
}

// Map applies f to the value of a valid result.
func Map[E Semigroup[E], A, B any](v Validated[E, A], f func(A) B) Validated[E, B] {
	if v.invalid {
		return Invalid[E, B](v.errs)
	}
	return Valid[E](f(v.value))
}

// Map2 combines two independent results. If both are valid, f is applied.
// Otherwise the errors of every invalid input are concatenated, a's first.
func Map2[E Semigroup[E], A, B, C any](a Validated[E, A], b Validated[E, B], f func(A, B) C) Validated[E, C] {
	switch {
	case a.invalid && b.invalid:
		return Invalid[E, C](a.errs.Combine(b.errs))
	case a.invalid:
		return Invalid[E, C](a.errs)
	case b.invalid:
		return Invalid[E, C](b.errs)
	}
	return Valid[E](f(a.value, b.value))
}

// Sequence turns a slice of results into a result of a slice, accumulating
// the errors of every invalid element in slice order.
func Sequence[E Semigroup[E], A any](vs []Validated[E, A]) Validated[E, []A] {
	out := Valid[E](make([]A, 0, len(vs)))
	for _, v := range vs {
		out = Map2(out, v, func(as []A, a A) []A { return append(as, a) })
	}
	return out
}

// Traverse validates every element of in with f and sequences the results.
func Traverse[E Semigroup[E], A, B any](in []A, f func(A) Validated[E, B]) Validated[E, []B] {
	vs := make([]Validated[E, B], len(in))
	for i, a := range in {
		vs[i] = f(a)
	}
	return Sequence(vs)
}

// Join flattens an error container into a single error with errors.Join.
// It returns nil for an empty container.
func Join[E interface{ Slice() []error }](errs E) error {
	return errors.Join(errs.Slice()...)
}
