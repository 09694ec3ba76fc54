package asc

import (
	"errors"
	"fmt"
)

// Parse errors abort the document. Edit errors are raised before anything is
// mutated.
var (
	ErrUnterminatedString    = errors.New("unterminated string")
	ErrUnexpectedToken       = errors.New("unexpected token")
	ErrPrematureEndOfInput   = errors.New("premature end of input")
	ErrMissingField          = errors.New("missing field")
	ErrAttributeTypeMismatch = errors.New("attribute type mismatch")
	ErrNotFound              = errors.New("not found")
)

// SyntaxError reports a parse failure at a source line.
type SyntaxError struct {
	Line int
	Err  error
	Text string
}

func (e *SyntaxError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Text)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// UnexpectedTokenError is returned when the token stream does not match the
// expected structure.
type UnexpectedTokenError struct {
	Expected TokenKind
	Found    Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("line %d: unexpected token: expected %s, found %s",
		e.Found.Line, e.Expected, e.Found)
}

func (e *UnexpectedTokenError) Is(target error) bool { return target == ErrUnexpectedToken }

// FieldError reports a named sub-item that an operation needs but the item
// lacks.
type FieldError struct {
	Item  string
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: missing field %q", e.Item, e.Field)
}

func (e *FieldError) Is(target error) bool { return target == ErrMissingField }

// TypeMismatchError reports an attribute whose type differs from what an
// operation needs.
type TypeMismatchError struct {
	Item     string
	Expected string
	Found    string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: attribute type mismatch: expected %s, found %s",
		e.Item, e.Expected, e.Found)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrAttributeTypeMismatch }

// NotFoundError reports a lookup that matched nothing.
type NotFoundError struct {
	What string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.What)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
