// Package csv provides error types and dispositions for event-driven parsing.
package csv

import "github.com/shapestone/shape-csvstream/internal/parser"

// Disposition is returned by every callback to steer the parser: continue,
// cancel (stop without error) or fail with an error.
type Disposition = parser.Disposition

var (
	// Continue lets the parser proceed to the next event.
	Continue = parser.Continue
	// Cancel stops the parse; Parse returns nil and OnEndDocument sees no error.
	Cancel = parser.Cancel
)

// Fail stops the parse with err. Parse returns err itself when it is an
// *Error, otherwise an *Error of KindCallback wrapping it.
func Fail(err error) Disposition {
	return parser.Fail(err)
}

// Progress is a snapshot of parse position attached to events and errors.
type Progress = parser.Progress

// Error is a parsing error with position information.
// Use errors.Is with the sentinels below, or inspect Kind.
type Error = parser.Error

// Kind classifies an Error.
type Kind = parser.Kind

// Error kinds.
const (
	KindIllegalDelimiter                    = parser.KindIllegalDelimiter
	KindIllegalRecordTerminator             = parser.KindIllegalRecordTerminator
	KindMalformedQuotedField                = parser.KindMalformedQuotedField
	KindUnexpectedCharacterAfterQuotedField = parser.KindUnexpectedCharacterAfterQuotedField
	KindCallback                            = parser.KindCallback
)

// Common parsing errors
var (
	// ErrIllegalDelimiter indicates the delimiter collides with a terminator or reserved character.
	ErrIllegalDelimiter = parser.ErrIllegalDelimiter

	// ErrIllegalRecordTerminator indicates an empty or invalid terminator set.
	ErrIllegalRecordTerminator = parser.ErrIllegalRecordTerminator

	// ErrMalformedQuotedField indicates the input ended inside a quoted field.
	ErrMalformedQuotedField = parser.ErrMalformedQuotedField

	// ErrUnexpectedCharacterAfterQuotedField indicates text after a closing quote
	// while SanitizeFields is set.
	ErrUnexpectedCharacterAfterQuotedField = parser.ErrUnexpectedCharacterAfterQuotedField
)
