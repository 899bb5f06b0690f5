//go:build go1.18
// +build go1.18

package parser

import (
	"errors"
	"testing"
	"unicode/utf8"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
)

// FuzzParse tests the parser with random inputs and dialect flags.
// The parser must not panic, must end the document exactly once and may only
// fail with an engine error kind.
// Run with: go test -fuzz=FuzzParse -fuzztime=30s ./internal/parser
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"a,b,c",
		"\"quoted\"",
		"\"with,comma\"",
		"\"with\"\"quote\"",
		"\"unclosed",
		"#comment\na",
		"=\"001\"",
		`a\,b`,
		"\"a\"b\r\nc",
		" a , \"b\" ",
	}

	for _, s := range seeds {
		f.Add(s, uint8(0))
		f.Add(s, uint8(31))
	}

	f.Fuzz(func(t *testing.T, input string, flags uint8) {
		if !utf8.ValidString(input) {
			return
		}
		opts := DefaultOptions()
		opts.RecognizeBackslashAsEscape = flags&1 != 0
		opts.SanitizeFields = flags&2 != 0
		opts.RecognizeComments = flags&4 != 0
		opts.TrimWhitespace = flags&8 != 0
		opts.RecognizeLeadingEqualSign = flags&16 != 0

		ends := 0
		var last Progress
		p, err := NewParser(opts, Hooks{
			EndDocument: func(pr Progress, _ error) { ends++; last = pr },
		})
		if err != nil {
			t.Fatalf("default dialect rejected: %v", err)
		}

		err = p.Parse(shapetokenizer.NewStream(input))
		if ends != 1 {
			t.Fatalf("EndDocument called %d times", ends)
		}
		if err != nil && !errors.Is(err, ErrMalformedQuotedField) && !errors.Is(err, ErrUnexpectedCharacterAfterQuotedField) {
			t.Fatalf("unexpected error: %v", err)
		}
		if err == nil && last.Characters != utf8.RuneCountInString(input) {
			t.Fatalf("consumed %d runes, want %d", last.Characters, utf8.RuneCountInString(input))
		}
	})
}
