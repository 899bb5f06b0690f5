package parser

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	// KindIllegalDelimiter means the delimiter collides with a reserved character.
	KindIllegalDelimiter Kind = iota
	// KindIllegalRecordTerminator means the terminator set is empty or invalid.
	KindIllegalRecordTerminator
	// KindMalformedQuotedField means the input ended inside a quoted field.
	KindMalformedQuotedField
	// KindUnexpectedCharacterAfterQuotedField means a character other than a
	// delimiter or terminator followed a closing quote under strict parsing.
	KindUnexpectedCharacterAfterQuotedField
	// KindCallback means a callback failed the parse.
	KindCallback
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindIllegalDelimiter:
		return "illegalDelimiter"
	case KindIllegalRecordTerminator:
		return "illegalRecordTerminator"
	case KindMalformedQuotedField:
		return "malformedQuotedField"
	case KindUnexpectedCharacterAfterQuotedField:
		return "unexpectedCharacterAfterQuotedField"
	case KindCallback:
		return "callbackError"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Sentinel errors, reachable from an *Error with errors.Is.
var (
	ErrIllegalDelimiter                    = errors.New("illegal delimiter")
	ErrIllegalRecordTerminator             = errors.New("illegal record terminator")
	ErrMalformedQuotedField                = errors.New("unterminated quoted field")
	ErrUnexpectedCharacterAfterQuotedField = errors.New("unexpected character after quoted field")
)

// Error describes why a parse failed and where.
type Error struct {
	// Kind classifies the failure.
	Kind Kind
	// Delimiter is the offending delimiter for KindIllegalDelimiter.
	Delimiter rune
	// Progress is the position at the point of failure.
	Progress Progress
	// Err is the sentinel for the kind, or the callback's own error.
	Err error
}

// Error returns a formatted error message with position information.
func (e *Error) Error() string {
	switch e.Kind {
	case KindIllegalDelimiter:
		return fmt.Sprintf("csv: %v %q", e.Err, e.Delimiter)
	case KindIllegalRecordTerminator:
		return fmt.Sprintf("csv: %v", e.Err)
	}
	return fmt.Sprintf("csv: parse error on %s: %v", e.Progress, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, progress Progress) *Error {
	var err error
	switch kind {
	case KindIllegalDelimiter:
		err = ErrIllegalDelimiter
	case KindIllegalRecordTerminator:
		err = ErrIllegalRecordTerminator
	case KindMalformedQuotedField:
		err = ErrMalformedQuotedField
	case KindUnexpectedCharacterAfterQuotedField:
		err = ErrUnexpectedCharacterAfterQuotedField
	}
	return &Error{Kind: kind, Progress: progress, Err: err}
}

// callbackError attaches progress to an error returned by a callback.
// An *Error is passed through unchanged.
func callbackError(err error, progress Progress) error {
	if _, ok := err.(*Error); ok {
		return err
	}
	return &Error{Kind: KindCallback, Progress: progress, Err: err}
}
