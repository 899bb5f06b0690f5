//go:build go1.18
// +build go1.18

package tokenizer

import (
	"testing"
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// FuzzLookahead tests that mixing peeks, terminator matches and reads never
// loses or duplicates a rune.
// Run with: go test -fuzz=FuzzLookahead -fuzztime=30s ./internal/tokenizer
func FuzzLookahead(f *testing.F) {
	seeds := []string{
		"",
		"a",
		"\r\n",
		"\r\r\n",
		"a,b\nc",
		"é\u2028x",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			return
		}
		terms := NewTerminators(Newlines)
		l := NewLookahead(tokenizer.NewStream(input))

		var out []rune
		for !l.AtEnd() {
			l.PeekAt(1)
			if term, ok := terms.Consume(l); ok {
				out = append(out, []rune(term)...)
				continue
			}
			r, _ := l.Next()
			out = append(out, r)
		}

		if string(out) != input {
			t.Errorf("round trip = %q, want %q", string(out), input)
		}
		if got := l.Location().Characters; got != utf8.RuneCountInString(input) {
			t.Errorf("Characters = %d, want %d", got, utf8.RuneCountInString(input))
		}
	})
}
