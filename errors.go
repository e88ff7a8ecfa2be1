package fuuid

import (
	"errors"
	"strconv"

	"github.com/Lzww0608/fuuid/internal/diag"
)

var (
	// ErrInvalid matches every error produced by rejecting a malformed FUUID.
	ErrInvalid = errors.New("fuuid: invalid FUUID")

	// ErrUnsupported indicates that name-based generation cannot run because the
	// required hash function is not linked into the binary.
	ErrUnsupported = errors.New("fuuid: name-based generation unsupported (SHA-1 unavailable)")

	// ErrNull indicates that a SQL NULL was scanned into a non-nullable FUUID.
	ErrNull = errors.New("fuuid: cannot scan NULL into FUUID (use NullFUUID)")
)

// ParseError is returned when input is not accepted by the UUID parser.
// Error reports the parser's diagnostic unmodified.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports ErrInvalid as a match so callers can branch without a type assertion.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalid
}

// literalPanic is the value Literal panics with.
func literalPanic(s string, err error) string {
	return "fuuid: Literal(" + strconv.Quote(s) + "): " + diag.Rename(err.Error())
}
