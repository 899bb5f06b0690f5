package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/shapestone/shape-csvstream/pkg/csv"
)

// stats summarizes a document without keeping any of it.
type stats struct {
	records      int
	fields       int
	comments     int
	minFields    int
	maxFields    int
	widestField  int
	widestRecord int
	lines        int
	bytes        int
}

func (s *stats) configure(cfg *csv.Configuration) {
	cfg.OnEndRecord = func(p csv.Progress) csv.Disposition {
		n := p.Field + 1
		if s.records == 0 || n < s.minFields {
			s.minFields = n
		}
		if n > s.maxFields {
			s.maxFields = n
		}
		s.records++
		return csv.Continue
	}
	cfg.OnReadField = func(field string, p csv.Progress) csv.Disposition {
		s.fields++
		if w := utf8.RuneCountInString(field); w > s.widestField {
			s.widestField = w
			s.widestRecord = p.Record
		}
		return csv.Continue
	}
	cfg.OnReadComment = func(string, csv.Progress) csv.Disposition {
		s.comments++
		return csv.Continue
	}
	cfg.OnEndDocument = func(p csv.Progress, err error) {
		s.lines = p.Line
		s.bytes = p.Bytes
	}
}

func newStatsCmd() *cobra.Command {
	var dialect dialectFlags

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Count records, fields and comments",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := dialect.configuration()
			if err != nil {
				return err
			}

			in, name, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			var s stats
			s.configure(&cfg)
			if err := csv.ParseReader(in, cfg); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "records:       %d\n", s.records)
			fmt.Fprintf(out, "fields:        %d\n", s.fields)
			fmt.Fprintf(out, "comments:      %d\n", s.comments)
			fmt.Fprintf(out, "fields/record: %d-%d\n", s.minFields, s.maxFields)
			fmt.Fprintf(out, "widest field:  %d (record %d)\n", s.widestField, s.widestRecord)
			fmt.Fprintf(out, "lines:         %d\n", s.lines)
			fmt.Fprintf(out, "bytes:         %d\n", s.bytes)
			return nil
		},
	}

	dialect.register(cmd)

	return cmd
}
