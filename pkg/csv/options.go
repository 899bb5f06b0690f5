// Package csv provides configurable dialects for CSV parsing.
package csv

import (
	"github.com/shapestone/shape-csvstream/internal/parser"
	"github.com/shapestone/shape-csvstream/internal/tokenizer"
)

// Configuration describes a dialect and the callbacks that receive its events.
// A Configuration is read-only during a parse; it is validated at the start of
// every parse.
type Configuration struct {
	// Delimiter separates fields.
	// It must not be '"', a record terminator, or a character reserved by an
	// enabled flag ('\\', '#', '=').
	// Default: ','
	Delimiter rune

	// RecordTerminators is the set of sequences that end a record. An entry may
	// span several characters (e.g. "\r\n"); the longest match wins.
	// Default: CRLF, LF, CR, VT, FF, NEL, LS, PS
	RecordTerminators []string

	// RecognizeBackslashAsEscape makes \" and \<delimiter> literal characters.
	// Default: false
	RecognizeBackslashAsEscape bool

	// SanitizeFields removes control characters (except tab, CR and LF) from
	// fields and comments, and rejects characters after a closing quote.
	// Default: false
	SanitizeFields bool

	// RecognizeComments reports records beginning with '#' through OnReadComment.
	// Default: false
	RecognizeComments bool

	// TrimWhitespace strips leading and trailing whitespace from fields.
	// Quoted content is never trimmed.
	// Default: false
	TrimWhitespace bool

	// RecognizeLeadingEqualSign parses ="..." as a quoted field whose value
	// keeps the '=' prefix.
	// Default: false
	RecognizeLeadingEqualSign bool

	// OnBeginDocument is called once before any input is read.
	OnBeginDocument func() Disposition
	// OnEndDocument is called once when the parse completes, is cancelled or fails.
	// err is nil unless the parse failed.
	OnEndDocument func(p Progress, err error)
	// OnBeginRecord is called before the first field of each record.
	OnBeginRecord func(p Progress) Disposition
	// OnEndRecord is called after the last field of each record.
	OnEndRecord func(p Progress) Disposition
	// OnReadField is called for each field, in order.
	OnReadField func(field string, p Progress) Disposition
	// OnReadComment is called for each comment line, without the '#'.
	OnReadComment func(comment string, p Progress) Disposition
}

// DefaultConfiguration returns the comma-separated dialect with newline
// terminators and every flag off.
func DefaultConfiguration() Configuration {
	opts := parser.DefaultOptions()
	return Configuration{
		Delimiter:         opts.Delimiter,
		RecordTerminators: opts.RecordTerminators,
	}
}

// TSVConfiguration returns the tab-separated dialect.
func TSVConfiguration() Configuration {
	cfg := DefaultConfiguration()
	cfg.Delimiter = tokenizer.Tab
	return cfg
}

// Validate checks the dialect rules without reading any input.
// It returns an *Error of KindIllegalDelimiter or KindIllegalRecordTerminator.
func (c Configuration) Validate() error {
	return c.options().Validate()
}

func (c Configuration) options() parser.Options {
	return parser.Options{
		Delimiter:                  c.Delimiter,
		RecordTerminators:          c.RecordTerminators,
		RecognizeBackslashAsEscape: c.RecognizeBackslashAsEscape,
		SanitizeFields:             c.SanitizeFields,
		RecognizeComments:          c.RecognizeComments,
		TrimWhitespace:             c.TrimWhitespace,
		RecognizeLeadingEqualSign:  c.RecognizeLeadingEqualSign,
	}
}

func (c Configuration) hooks() parser.Hooks {
	return parser.Hooks{
		BeginDocument: c.OnBeginDocument,
		EndDocument:   c.OnEndDocument,
		BeginRecord:   c.OnBeginRecord,
		EndRecord:     c.OnEndRecord,
		ReadField:     c.OnReadField,
		ReadComment:   c.OnReadComment,
	}
}
