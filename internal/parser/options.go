package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/shapestone/shape-csvstream/internal/tokenizer"
)

// Options configures the dialect the parser recognizes.
type Options struct {
	// Delimiter separates fields within a record. Default: ','
	Delimiter rune
	// RecordTerminators ends a record. Each entry may span several runes.
	// Default: tokenizer.Newlines
	RecordTerminators []string
	// RecognizeBackslashAsEscape treats \" and \<delimiter> as literals.
	RecognizeBackslashAsEscape bool
	// SanitizeFields strips control characters and rejects characters after a closing quote.
	SanitizeFields bool
	// RecognizeComments treats records starting with '#' as comments.
	RecognizeComments bool
	// TrimWhitespace strips whitespace around fields, outside quotes.
	TrimWhitespace bool
	// RecognizeLeadingEqualSign parses ="..." as a quoted field prefixed with '='.
	RecognizeLeadingEqualSign bool
}

// DefaultOptions returns the comma-separated dialect with newline terminators.
func DefaultOptions() Options {
	terms := make([]string, len(tokenizer.Newlines))
	copy(terms, tokenizer.Newlines)
	return Options{
		Delimiter:         tokenizer.Comma,
		RecordTerminators: terms,
	}
}

// Hooks are the callbacks invoked for each event, in document order.
// A nil hook continues.
type Hooks struct {
	BeginDocument func() Disposition
	EndDocument   func(Progress, error)
	BeginRecord   func(Progress) Disposition
	EndRecord     func(Progress) Disposition
	ReadField     func(string, Progress) Disposition
	ReadComment   func(string, Progress) Disposition
}

func (h *Hooks) beginDocument() Disposition {
	if h.BeginDocument == nil {
		return Continue
	}
	return h.BeginDocument()
}

func (h *Hooks) endDocument(p Progress, err error) {
	if h.EndDocument != nil {
		h.EndDocument(p, err)
	}
}

func (h *Hooks) beginRecord(p Progress) Disposition {
	if h.BeginRecord == nil {
		return Continue
	}
	return h.BeginRecord(p)
}

func (h *Hooks) endRecord(p Progress) Disposition {
	if h.EndRecord == nil {
		return Continue
	}
	return h.EndRecord(p)
}

func (h *Hooks) readField(v string, p Progress) Disposition {
	if h.ReadField == nil {
		return Continue
	}
	return h.ReadField(v, p)
}

func (h *Hooks) readComment(v string, p Progress) Disposition {
	if h.ReadComment == nil {
		return Continue
	}
	return h.ReadComment(v, p)
}

// Validate checks the dialect rules. Delimiter problems are reported before
// terminator problems. The returned error is an *Error with zero Progress.
func (o Options) Validate() error {
	if !o.validDelimiter() {
		err := newError(KindIllegalDelimiter, Progress{})
		err.Delimiter = o.Delimiter
		return err
	}
	if len(o.RecordTerminators) == 0 {
		return newError(KindIllegalRecordTerminator, Progress{})
	}
	for _, term := range o.RecordTerminators {
		if term == "" || !utf8.ValidString(term) || strings.HasPrefix(term, string(tokenizer.Quote)) {
			return newError(KindIllegalRecordTerminator, Progress{})
		}
	}
	return nil
}

// validDelimiter reports whether the delimiter collides with nothing reserved.
func (o Options) validDelimiter() bool {
	d := o.Delimiter
	if d == 0 || d == utf8.RuneError || !utf8.ValidRune(d) {
		return false
	}
	switch {
	case d == tokenizer.Quote:
		return false
	case d == tokenizer.Equal && o.RecognizeLeadingEqualSign:
		return false
	case d == tokenizer.Backslash && o.RecognizeBackslashAsEscape:
		return false
	case d == tokenizer.Octothorpe && o.RecognizeComments:
		return false
	}
	for _, term := range o.RecordTerminators {
		if r, _ := utf8.DecodeRuneInString(term); term != "" && r == d {
			return false
		}
	}
	return true
}
