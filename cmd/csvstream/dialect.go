package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/shapestone/shape-csvstream/pkg/csv"
)

// dialectFlags holds the dialect options shared by every subcommand.
type dialectFlags struct {
	delimiter     string
	terminators   []string
	escape        bool
	sanitize      bool
	comments      bool
	trim          bool
	leadingEquals bool
	tsv           bool
}

func (d *dialectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&d.delimiter, "delimiter", "d", ",", `field delimiter, a single character (escapes like \t accepted)`)
	cmd.Flags().StringArrayVarP(&d.terminators, "terminator", "t", nil, `record terminator, repeatable (default: all newlines; escapes like \r\n accepted)`)
	cmd.Flags().BoolVar(&d.escape, "escape", false, `treat \" and \<delimiter> as literals`)
	cmd.Flags().BoolVar(&d.sanitize, "sanitize", false, "strip control characters and reject text after a closing quote")
	cmd.Flags().BoolVar(&d.comments, "comments", false, "report lines starting with # as comments")
	cmd.Flags().BoolVar(&d.trim, "trim", false, "trim whitespace around fields")
	cmd.Flags().BoolVar(&d.leadingEquals, "leading-equals", false, `parse ="..." as a quoted field`)
	cmd.Flags().BoolVar(&d.tsv, "tsv", false, "tab-separated input (overrides --delimiter)")
}

// configuration builds a csv.Configuration without callbacks.
func (d *dialectFlags) configuration() (csv.Configuration, error) {
	cfg := csv.DefaultConfiguration()

	if d.tsv {
		cfg = csv.TSVConfiguration()
	} else {
		delim, err := unescape(d.delimiter)
		if err != nil {
			return cfg, fmt.Errorf("delimiter: %w", err)
		}
		if utf8.RuneCountInString(delim) != 1 {
			return cfg, fmt.Errorf("delimiter must be a single character, got %q", delim)
		}
		cfg.Delimiter, _ = utf8.DecodeRuneInString(delim)
	}

	if len(d.terminators) > 0 {
		cfg.RecordTerminators = make([]string, 0, len(d.terminators))
		for _, t := range d.terminators {
			term, err := unescape(t)
			if err != nil {
				return cfg, fmt.Errorf("terminator: %w", err)
			}
			cfg.RecordTerminators = append(cfg.RecordTerminators, term)
		}
	}

	cfg.RecognizeBackslashAsEscape = d.escape
	cfg.SanitizeFields = d.sanitize
	cfg.RecognizeComments = d.comments
	cfg.TrimWhitespace = d.trim
	cfg.RecognizeLeadingEqualSign = d.leadingEquals

	return cfg, cfg.Validate()
}

// unescape interprets Go escape sequences such as \t, \r\n or \u2028.
func unescape(s string) (string, error) {
	if s == `"` {
		return s, nil
	}
	out, err := strconv.Unquote(`"` + s + `"`)
	if err != nil {
		return "", fmt.Errorf("invalid escape in %q", s)
	}
	return out, nil
}

// openInput opens the named file, or stdin when no file is given.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "<stdin>", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("open input: %w", err)
	}
	return f, args[0], nil
}
