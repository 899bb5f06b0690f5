// Package parser implements the event-driven state machine for delimiter-separated text.
//
// The parser pulls runes from a tokenizer.Source, classifies each one against
// the configured dialect and reports fields, records and comments through
// Hooks. Every hook returns a Disposition that decides whether parsing
// continues, stops quietly or fails.
package parser

import (
	"strings"
	"unicode"

	"github.com/tliron/commonlog"

	"github.com/shapestone/shape-csvstream/internal/tokenizer"
)

// state is a node of the document state machine.
type state int

const (
	stateAwaitingDocument state = iota
	stateAwaitingRecord
	stateAwaitingComment
	stateAwaitingField
	stateRecordComplete
	stateDocumentComplete
	stateCancelled
	stateFailed
)

func (s state) String() string {
	switch s {
	case stateAwaitingDocument:
		return "AwaitingDocument"
	case stateAwaitingRecord:
		return "AwaitingRecord"
	case stateAwaitingComment:
		return "AwaitingComment"
	case stateAwaitingField:
		return "AwaitingField"
	case stateRecordComplete:
		return "RecordComplete"
	case stateDocumentComplete:
		return "DocumentComplete"
	case stateCancelled:
		return "Cancelled"
	case stateFailed:
		return "Failed"
	}
	return "unknown"
}

func logger() commonlog.Logger {
	return commonlog.GetLogger("csvstream.parser")
}

// Parser runs parses for one validated dialect.
// A Parser holds no per-parse state; each call to Parse is independent.
type Parser struct {
	opts  Options
	hooks Hooks
	terms tokenizer.Terminators
}

// NewParser validates opts and returns a parser for that dialect.
func NewParser(opts Options, hooks Hooks) (*Parser, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Parser{
		opts:  opts,
		hooks: hooks,
		terms: tokenizer.NewTerminators(opts.RecordTerminators),
	}, nil
}

// parseState is owned by a single call to Parse.
type parseState struct {
	opts    *Options
	hooks   *Hooks
	terms   tokenizer.Terminators
	in      *tokenizer.Lookahead
	record  int
	field   int
	buf     strings.Builder
	outcome Disposition
}

// Parse reads src to the end, or until a hook cancels or fails.
//
// It returns nil on completion and on cancellation. On failure it returns
// the error, after EndDocument has seen it.
func (p *Parser) Parse(src tokenizer.Source) error {
	s := &parseState{
		opts:  &p.opts,
		hooks: &p.hooks,
		terms: p.terms,
		in:    tokenizer.NewLookahead(src),
	}
	return s.run()
}

func (s *parseState) run() error {
	log := logger()
	st := stateAwaitingDocument
	for {
		switch st {
		case stateAwaitingDocument:
			st = s.apply(s.hooks.beginDocument(), stateAwaitingRecord)
		case stateAwaitingRecord:
			st = s.awaitRecord()
		case stateAwaitingComment:
			st = s.readComment()
		case stateAwaitingField:
			st = s.readField()
		case stateRecordComplete:
			st = s.completeRecord()
		case stateDocumentComplete:
			log.Debugf("document complete: %d records, %s", s.record, s.progress())
			s.hooks.endDocument(s.progress(), nil)
			return nil
		case stateCancelled:
			log.Debugf("parse cancelled at %s", s.progress())
			s.hooks.endDocument(s.progress(), nil)
			return nil
		case stateFailed:
			err := s.outcome.Err()
			log.Debugf("parse failed: %s", err)
			s.hooks.endDocument(s.progress(), err)
			return err
		default:
			panic("parser: unknown state " + st.String())
		}
	}
}

// apply records a terminal disposition or moves on to next.
func (s *parseState) apply(d Disposition, next state) state {
	switch {
	case d.IsContinue():
		return next
	case d.IsCancel():
		s.outcome = d
		return stateCancelled
	default:
		s.outcome = Fail(callbackError(d.Err(), s.progress()))
		return stateFailed
	}
}

// fail records an error found by the engine itself.
func (s *parseState) fail(err error) state {
	s.outcome = Fail(err)
	return stateFailed
}

func (s *parseState) progress() Progress {
	loc := s.in.Location()
	return Progress{
		Characters: loc.Characters,
		Bytes:      loc.Bytes,
		Line:       loc.Line,
		Column:     loc.Column,
		Record:     s.record,
		Field:      s.field,
	}
}

// awaitRecord starts the next record, a comment, or ends the document.
// A comment line produces no record events.
func (s *parseState) awaitRecord() state {
	r, ok := s.in.Peek()
	if !ok {
		return stateDocumentComplete
	}
	if s.opts.RecognizeComments && r == tokenizer.Octothorpe {
		return stateAwaitingComment
	}
	s.field = 0
	return s.apply(s.hooks.beginRecord(s.progress()), stateAwaitingField)
}

// readComment reports the rest of the line after '#', without the terminator.
func (s *parseState) readComment() state {
	s.in.Next()
	s.buf.Reset()
	for {
		if _, ok := s.terms.Match(s.in); ok {
			break
		}
		r, ok := s.in.Next()
		if !ok {
			break
		}
		s.buf.WriteRune(r)
	}

	text := s.sanitize(s.buf.String())
	st := s.apply(s.hooks.readComment(text, s.progress()), stateAwaitingRecord)
	if st == stateAwaitingRecord {
		s.terms.Consume(s.in)
	}
	return st
}

// readField scans one field, reports it and consumes the delimiter after it.
func (s *parseState) readField() state {
	value, err := s.scanField()
	if err != nil {
		return s.fail(err)
	}

	st := s.apply(s.hooks.readField(value, s.progress()), stateRecordComplete)
	if st != stateRecordComplete {
		return st
	}
	if r, ok := s.in.Peek(); ok && r == s.opts.Delimiter {
		s.in.Next()
		s.field++
		return stateAwaitingField
	}
	return stateRecordComplete
}

// completeRecord reports the end of a record and consumes its terminator.
func (s *parseState) completeRecord() state {
	st := s.apply(s.hooks.endRecord(s.progress()), stateAwaitingRecord)
	if st == stateAwaitingRecord {
		s.terms.Consume(s.in)
		s.record++
	}
	return st
}

// atBoundary reports whether r, the next rune, ends the current field.
func (s *parseState) atBoundary(r rune) bool {
	if r == s.opts.Delimiter {
		return true
	}
	_, ok := s.terms.Match(s.in)
	return ok
}

// escapable reports whether r may follow a backslash as a literal.
func (s *parseState) escapable(r rune) bool {
	return r == tokenizer.Quote || r == s.opts.Delimiter
}

// scanField reads a field up to, not including, the next delimiter,
// terminator or end of input.
func (s *parseState) scanField() (string, error) {
	s.buf.Reset()
	if s.opts.TrimWhitespace {
		s.skipSpace()
	}

	r, ok := s.in.Peek()
	if !ok {
		return "", nil
	}
	if s.opts.RecognizeLeadingEqualSign && r == tokenizer.Equal {
		if q, ok := s.in.PeekAt(1); ok && q == tokenizer.Quote {
			s.in.Next()
			s.buf.WriteRune(tokenizer.Equal)
			return s.scanQuoted()
		}
	}
	if r == tokenizer.Quote {
		return s.scanQuoted()
	}
	return s.scanUnquoted(), nil
}

func (s *parseState) skipSpace() {
	for {
		r, ok := s.in.Peek()
		if !ok || !unicode.IsSpace(r) || s.atBoundary(r) {
			return
		}
		s.in.Next()
	}
}

// scanUnquoted accumulates literal runes. A quote after the first rune is literal.
func (s *parseState) scanUnquoted() string {
	for {
		r, ok := s.in.Peek()
		if !ok || s.atBoundary(r) {
			break
		}
		s.in.Next()
		if r == tokenizer.Backslash && s.opts.RecognizeBackslashAsEscape {
			if e, ok := s.in.Peek(); ok && s.escapable(e) {
				s.in.Next()
				r = e
			}
		}
		s.buf.WriteRune(r)
	}

	value := s.buf.String()
	if s.opts.TrimWhitespace {
		value = strings.TrimRightFunc(value, unicode.IsSpace)
	}
	return s.sanitize(value)
}

// scanQuoted reads from the opening quote to the closing quote, then any
// trailing runes up to the field boundary.
func (s *parseState) scanQuoted() (string, error) {
	s.in.Next()
	for {
		r, ok := s.in.Next()
		if !ok {
			return "", newError(KindMalformedQuotedField, s.progress())
		}
		if r == tokenizer.Quote {
			if n, ok := s.in.Peek(); ok && n == tokenizer.Quote {
				s.in.Next()
				s.buf.WriteRune(tokenizer.Quote)
				continue
			}
			break
		}
		if r == tokenizer.Backslash && s.opts.RecognizeBackslashAsEscape {
			if e, ok := s.in.Peek(); ok && s.escapable(e) {
				s.in.Next()
				r = e
			}
		}
		s.buf.WriteRune(r)
	}
	return s.scanAfterQuote()
}

// scanAfterQuote handles runes between a closing quote and the boundary.
// They are appended literally, unless SanitizeFields is set, in which case
// anything but trimmable whitespace is an error.
func (s *parseState) scanAfterQuote() (string, error) {
	var tail strings.Builder
	for {
		r, ok := s.in.Peek()
		if !ok || s.atBoundary(r) {
			break
		}
		if s.opts.SanitizeFields && !(s.opts.TrimWhitespace && unicode.IsSpace(r)) {
			return "", newError(KindUnexpectedCharacterAfterQuotedField, s.progress())
		}
		s.in.Next()
		tail.WriteRune(r)
	}

	rest := tail.String()
	if s.opts.TrimWhitespace {
		rest = strings.TrimRightFunc(rest, unicode.IsSpace)
	}
	s.buf.WriteString(rest)
	return s.sanitize(s.buf.String()), nil
}

// sanitize drops control characters other than tab, LF and CR.
func (s *parseState) sanitize(v string) string {
	if !s.opts.SanitizeFields {
		return v
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\t' && r != '\n' && r != '\r' {
			return -1
		}
		return r
	}, v)
}
