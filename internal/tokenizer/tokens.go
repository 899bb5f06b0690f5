// Package tokenizer provides character-level lookahead over a rune stream.
package tokenizer

// Character classes recognized by the CSV dialects.
// These correspond to the reserved characters of the dialect rules.
//
// Note: The delimiter and record terminators are not listed here. They are
// configurable and validated against these reserved characters.
const (
	// Structural characters
	Quote      = '"'  // quote delimiter
	Backslash  = '\\' // escape introducer (when escaping is enabled)
	Octothorpe = '#'  // comment introducer (when comments are enabled)
	Equal      = '='  // leading equals prefix (when enabled)
	Comma      = ','  // default field delimiter
	Tab        = '\t' // TSV field delimiter
)

// Newlines is the default record terminator set.
// CRLF is listed first; matching is longest-first regardless of order.
var Newlines = []string{
	"\r\n",
	"\n",
	"\r",
	"\v",
	"\f",
	"\u0085",
	"\u2028",
	"\u2029",
}
