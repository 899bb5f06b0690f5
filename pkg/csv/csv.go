// Package csv provides streaming, event-driven parsing of CSV and related
// delimiter-separated dialects.
//
// The parser never builds the document in memory. It pulls characters from a
// CharacterSource one at a time and reports what it finds through the
// callbacks of a Configuration: OnBeginDocument, OnBeginRecord, OnReadField,
// OnReadComment, OnEndRecord and OnEndDocument. Every callback except
// OnEndDocument returns a Disposition:
//
//   - Continue lets the parser proceed
//   - Cancel stops the parse; Parse returns nil
//   - Fail(err) stops the parse; Parse returns the error
//
// OnEndDocument is always the last callback of a parse that passed
// configuration validation, and it sees the error when there is one.
//
// # Dialects
//
// The delimiter, the record terminators and five flags make up a dialect:
// backslash escaping, field sanitization, '#' comments, whitespace trimming
// and leading-equals quoting (="0012", as written by spreadsheets).
// Invalid dialects are rejected before any callback fires.
//
// # Thread Safety
//
// A parse runs synchronously on the calling goroutine. Separate parses share
// no mutable state and may run concurrently on separate sources.
//
// # Example usage with ParseString:
//
//	cfg := csv.DefaultConfiguration()
//	cfg.OnReadField = func(field string, p csv.Progress) csv.Disposition {
//	    fmt.Printf("record %d field %d: %s\n", p.Record, p.Field, field)
//	    return csv.Continue
//	}
//	if err := csv.ParseString("name,age\nAlice,30", cfg); err != nil {
//	    // handle error
//	}
//
// # Example usage with ParseReader:
//
//	file, err := os.Open("data.csv")
//	if err != nil {
//	    // handle error
//	}
//	defer file.Close()
//
//	err = csv.ParseReader(file, cfg)
package csv

import (
	"io"

	"github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-csvstream/internal/parser"
)

// CharacterSource is an ordered, pull-based stream of characters with one
// character of lookahead. End of input is reported with ok == false.
//
// shape-core's tokenizer.Stream satisfies this interface.
type CharacterSource interface {
	// PeekChar returns the next character without consuming it.
	PeekChar() (r rune, ok bool)
	// NextChar consumes and returns the next character.
	NextChar() (r rune, ok bool)
}

// Parse validates cfg and runs it over src.
//
// It returns nil when the document completes or a callback cancels, and an
// error when cfg is invalid, the input is malformed, or a callback fails.
// Configuration errors are returned before any callback is invoked.
func Parse(src CharacterSource, cfg Configuration) error {
	p, err := parser.NewParser(cfg.options(), cfg.hooks())
	if err != nil {
		return err
	}
	return p.Parse(src)
}

// ParseString parses CSV held in memory.
//
// Example:
//
//	err := csv.ParseString("a,b,c\n", cfg)
func ParseString(input string, cfg Configuration) error {
	return Parse(tokenizer.NewStream(input), cfg)
}

// ParseReader parses UTF-8 encoded CSV from an io.Reader.
//
// The reader is consumed through a buffered stream, so memory use is bounded
// by the longest field rather than by the size of the input.
//
// Example:
//
//	err := csv.ParseReader(strings.NewReader("name,age\nAlice,30"), cfg)
func ParseReader(reader io.Reader, cfg Configuration) error {
	return Parse(tokenizer.NewStreamFromReader(reader), cfg)
}

// Format returns the format identifier for this parser.
// Returns "CSV" to identify this as the CSV data format parser.
func Format() string {
	return "CSV"
}

// Validate checks that input parses under cfg's dialect.
// The callbacks of cfg are ignored.
//
// Example:
//
//	if err := csv.Validate(input, csv.DefaultConfiguration()); err != nil {
//	    fmt.Println("Invalid CSV:", err)
//	}
func Validate(input string, cfg Configuration) error {
	return ParseString(input, dialectOnly(cfg))
}

// ValidateReader checks that the input from an io.Reader parses under cfg's
// dialect. The callbacks of cfg are ignored.
func ValidateReader(reader io.Reader, cfg Configuration) error {
	return ParseReader(reader, dialectOnly(cfg))
}

// dialectOnly strips the callbacks from cfg.
func dialectOnly(cfg Configuration) Configuration {
	return Configuration{
		Delimiter:                  cfg.Delimiter,
		RecordTerminators:          cfg.RecordTerminators,
		RecognizeBackslashAsEscape: cfg.RecognizeBackslashAsEscape,
		SanitizeFields:             cfg.SanitizeFields,
		RecognizeComments:          cfg.RecognizeComments,
		TrimWhitespace:             cfg.TrimWhitespace,
		RecognizeLeadingEqualSign:  cfg.RecognizeLeadingEqualSign,
	}
}
