package tokenizer

import (
	"sort"
	"unicode/utf8"
)

// Source is a pull-based rune stream with one rune of lookahead.
// It is satisfied by shape-core's tokenizer.Stream.
type Source interface {
	// PeekChar returns the next rune without consuming it.
	PeekChar() (rune, bool)
	// NextChar consumes and returns the next rune.
	NextChar() (rune, bool)
}

// Location counts what a Lookahead has consumed so far.
type Location struct {
	Characters int
	Bytes      int
	Line       int
	Column     int
}

// Lookahead wraps a Source and adds bounded multi-rune lookahead.
//
// Runes are only pulled from the source ahead of time when a caller asks to
// see past the first pending rune, so the buffer never grows beyond the
// longest sequence the caller peeks at (a record terminator or `="`).
type Lookahead struct {
	src     Source
	pending []rune
	loc     Location
	lastCR  bool
}

// NewLookahead creates a Lookahead positioned at the start of src.
func NewLookahead(src Source) *Lookahead {
	return &Lookahead{
		src: src,
		loc: Location{Line: 1, Column: 1},
	}
}

// Location returns the counters for everything consumed so far.
func (l *Lookahead) Location() Location {
	return l.loc
}

// Peek returns the next rune without consuming it.
func (l *Lookahead) Peek() (rune, bool) {
	if len(l.pending) > 0 {
		return l.pending[0], true
	}
	return l.src.PeekChar()
}

// PeekAt returns the rune n positions ahead (0 is the next rune) without
// consuming anything. It pulls at most n runes from the source into the
// pending buffer.
func (l *Lookahead) PeekAt(n int) (rune, bool) {
	if n == 0 {
		return l.Peek()
	}
	for len(l.pending) <= n {
		r, ok := l.src.NextChar()
		if !ok {
			return 0, false
		}
		l.pending = append(l.pending, r)
	}
	return l.pending[n], true
}

// AtEnd reports whether the stream is exhausted.
func (l *Lookahead) AtEnd() bool {
	_, ok := l.Peek()
	return !ok
}

// Next consumes and returns the next rune.
func (l *Lookahead) Next() (rune, bool) {
	var r rune
	if len(l.pending) > 0 {
		r = l.pending[0]
		l.pending = l.pending[1:]
	} else {
		var ok bool
		r, ok = l.src.NextChar()
		if !ok {
			return 0, false
		}
	}
	l.advance(r)
	return r, true
}

// advance updates the location counters for a consumed rune.
// CRLF counts as a single line break.
func (l *Lookahead) advance(r rune) {
	l.loc.Characters++
	l.loc.Bytes += utf8.RuneLen(r)
	switch {
	case r == '\n' && l.lastCR:
		// second half of CRLF, the line was already counted
	case isLineBreak(r):
		l.loc.Line++
		l.loc.Column = 1
	default:
		l.loc.Column++
	}
	l.lastCR = r == '\r'
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// Terminators is a set of record terminators ordered for longest-first
// matching.
type Terminators struct {
	seqs    [][]rune
	longest int
}

// NewTerminators builds a matcher for the given terminators.
// Duplicates and empty entries are dropped.
func NewTerminators(terms []string) Terminators {
	seen := make(map[string]bool, len(terms))
	t := Terminators{}
	for _, s := range terms {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		seq := []rune(s)
		t.seqs = append(t.seqs, seq)
		if len(seq) > t.longest {
			t.longest = len(seq)
		}
	}
	sort.SliceStable(t.seqs, func(i, j int) bool {
		return len(t.seqs[i]) > len(t.seqs[j])
	})
	return t
}

// Len returns the number of distinct terminators.
func (t Terminators) Len() int {
	return len(t.seqs)
}

// Longest returns the rune length of the longest terminator.
func (t Terminators) Longest() int {
	return t.longest
}

// Match reports whether a terminator starts at the current position and
// returns its length in runes. The longest matching terminator wins.
// Nothing is consumed.
func (t Terminators) Match(l *Lookahead) (int, bool) {
	first, ok := l.Peek()
	if !ok {
		return 0, false
	}
	for _, seq := range t.seqs {
		if seq[0] != first {
			continue
		}
		if t.matchesAt(l, seq) {
			return len(seq), true
		}
	}
	return 0, false
}

func (t Terminators) matchesAt(l *Lookahead, seq []rune) bool {
	for i := 1; i < len(seq); i++ {
		r, ok := l.PeekAt(i)
		if !ok || r != seq[i] {
			return false
		}
	}
	return true
}

// Consume matches a terminator at the current position and consumes it.
func (t Terminators) Consume(l *Lookahead) (string, bool) {
	n, ok := t.Match(l)
	if !ok {
		return "", false
	}
	out := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		r, _ := l.Next()
		out = append(out, r)
	}
	return string(out), true
}
