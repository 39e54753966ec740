package scan

import (
	"errors"
	"fmt"
)

// Error kinds. Every *Error unwraps to exactly one of these, so callers can
// test the failure class with errors.Is.
var (
	// ErrUnexpectedCharacter is reported when a grammar position allows a
	// known set of characters and another one shows up.
	ErrUnexpectedCharacter = errors.New("unexpected character")
	// ErrMismatch is reported when a required literal token is missing.
	ErrMismatch = errors.New("structural mismatch")
	// ErrMalformedLiteral is reported for numbers and hex pairs that do not
	// convert to their target representation.
	ErrMalformedLiteral = errors.New("malformed literal")
	// ErrEndOfInput is reported when the input ends where more is required.
	ErrEndOfInput = errors.New("unexpected end of input")
)

// Error is a fatal parse error. It records the byte offset in the source at
// which the grammar rule failed.
type Error struct {
	Kind   error
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("offset %d: %s", e.Offset, e.Kind)
	}
	return fmt.Sprintf("offset %d: %s: %s", e.Offset, e.Kind, e.Msg)
}

// Unwrap returns the error kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

type abort struct {
	err error
}

// Abort stops the current parse with err. It is used to pass on errors of
// collaborators that are not parse errors of the cursor itself.
func Abort(err error) {
	panic(abort{err})
}

// Recover turns a parse error raised by Fail, Abort or any cursor primitive
// back into an ordinary error. It must be deferred directly by the parser
// entry point. Other panics are passed on.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	switch e := r.(type) {
	case *Error:
		*errp = e
	case abort:
		*errp = e.err
	default:
		panic(r)
	}
}
