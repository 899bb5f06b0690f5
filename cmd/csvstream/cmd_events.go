package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/shapestone/shape-csvstream/pkg/csv"
)

func newEventsCmd() *cobra.Command {
	var dialect dialectFlags
	var maxRecords int
	var showPositions bool

	cmd := &cobra.Command{
		Use:   "events [file]",
		Short: "Print every parse event, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("csvstream.events")

			cfg, err := dialect.configuration()
			if err != nil {
				return err
			}

			in, name, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			out := cmd.OutOrStdout()
			at := func(p csv.Progress) string {
				if !showPositions {
					return ""
				}
				return " @" + p.String()
			}

			cfg.OnBeginDocument = func() csv.Disposition {
				fmt.Fprintln(out, "begin-document")
				return csv.Continue
			}
			cfg.OnEndDocument = func(p csv.Progress, err error) {
				if err != nil {
					fmt.Fprintf(out, "end-document error=%q%s\n", err.Error(), at(p))
					return
				}
				fmt.Fprintf(out, "end-document%s\n", at(p))
			}
			cfg.OnBeginRecord = func(p csv.Progress) csv.Disposition {
				if maxRecords > 0 && p.Record >= maxRecords {
					log.Infof("%s: stopping after %d records", name, maxRecords)
					return csv.Cancel
				}
				fmt.Fprintf(out, "begin-record %d%s\n", p.Record, at(p))
				return csv.Continue
			}
			cfg.OnEndRecord = func(p csv.Progress) csv.Disposition {
				fmt.Fprintf(out, "end-record %d%s\n", p.Record, at(p))
				return csv.Continue
			}
			cfg.OnReadField = func(field string, p csv.Progress) csv.Disposition {
				fmt.Fprintf(out, "field %d.%d %q%s\n", p.Record, p.Field, field, at(p))
				return csv.Continue
			}
			cfg.OnReadComment = func(comment string, p csv.Progress) csv.Disposition {
				fmt.Fprintf(out, "comment %q%s\n", comment, at(p))
				return csv.Continue
			}

			log.Debugf("parsing %s", name)
			if err := csv.ParseReader(in, cfg); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		},
	}

	dialect.register(cmd)
	cmd.Flags().IntVarP(&maxRecords, "max-records", "n", 0, "cancel after this many records (0 means no limit)")
	cmd.Flags().BoolVarP(&showPositions, "positions", "p", false, "append the progress snapshot to each event")

	return cmd
}
