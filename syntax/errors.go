package syntax

import (
	"errors"
	"fmt"
)

// Sentinel causes of a ParseError, for use with errors.Is.
var (
	ErrEmpty           = errors.New("empty expression")
	ErrMissingParen    = errors.New("missing closing parenthesis")
	ErrUnexpectedParen = errors.New("unexpected closing parenthesis")
	ErrMissingOperand  = errors.New("missing operand")
	ErrBadClass        = errors.New("unsupported character class")
	ErrTruncatedEscape = errors.New("trailing backslash")
	ErrInvalidToken    = errors.New("invalid token")
)

// ParseError reports why a pattern could not be parsed and where.
type ParseError struct {
	Pattern string
	Offset  int // byte offset of the offending token
	Err     error
	Detail  string
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return fmt.Sprintf("regex %q at offset %d: %s", e.Pattern, e.Offset, msg)
}

func (e *ParseError) Unwrap() error { return e.Err }
