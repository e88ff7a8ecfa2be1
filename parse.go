package fuuid

import (
	"github.com/google/uuid"

	"github.com/Lzww0608/fuuid/validated"
)

// FromString parses s with the underlying UUID parser and accepts exactly
// what it accepts:
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (either case)
//   - urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//   - {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
//   - xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx
//
// On failure the error is a *ParseError that matches ErrInvalid.
func FromString(s string) (FUUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Nil, &ParseError{Input: s, Err: err}
	}
	return FUUID{u: u}, nil
}

// FromStringOpt is FromString without the error detail.
func FromStringOpt(s string) (FUUID, bool) {
	id, err := FromString(s)
	return id, err == nil
}

// IsValid reports whether FromString would accept s.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// FromStringF lifts the result of FromString into a caller-chosen result
// type R: pure wraps a success, raise wraps a failure.
func FromStringF[R any](s string, pure func(FUUID) R, raise func(error) R) R {
	id, err := FromString(s)
	if err != nil {
		return raise(err)
	}
	return pure(id)
}

// FromStringAccumulating parses s and, on failure, wraps the error into the
// container E with lift so that results of independent calls can be combined
// with validated.Map2 or validated.Sequence without losing any failure.
func FromStringAccumulating[E validated.Semigroup[E]](s string, lift func(error) E) validated.Validated[E, FUUID] {
	return FromStringF(s,
		validated.Valid[E, FUUID],
		func(err error) validated.Validated[E, FUUID] {
			return validated.Invalid[E, FUUID](lift(err))
		},
	)
}

// FromStringVNel accumulates failures into a validated.NonEmpty list.
func FromStringVNel(s string) validated.Validated[validated.NonEmpty[error], FUUID] {
	return FromStringAccumulating(s, func(err error) validated.NonEmpty[error] {
		return validated.NonEmptyOf(err)
	})
}

// FromStringVNec accumulates failures into a validated.Chain.
func FromStringVNec(s string) validated.Validated[validated.Chain[error], FUUID] {
	return FromStringAccumulating(s, func(err error) validated.Chain[error] {
		return validated.ChainOf(err)
	})
}

// FromBytes wraps the 16-byte binary form of a UUID.
func FromBytes(b []byte) (FUUID, error) {
	u, err := uuid.FromBytes(b)
	if err != nil {
		return Nil, &ParseError{Input: string(b), Err: err}
	}
	return FUUID{u: u}, nil
}

// Literal returns the FUUID for a constant string and panics if it is invalid.
//
// Arguments must be compile-time constants. The fuuidlint analyzer checks
// every call at vet time, rejecting non-constant arguments and invalid
// literals, so a program that passes the check never panics here:
//
//	var AdminID = fuuid.Literal("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
//
// Values only known at run time go through FromString.
func Literal(s string) FUUID {
	id, err := FromString(s)
	if err != nil {
		panic(literalPanic(s, err))
	}
	return id
}
