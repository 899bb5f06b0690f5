package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/shapestone/shape-csvstream/pkg/csv"
)

func newValidateCmd() *cobra.Command {
	var dialect dialectFlags

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check that the input parses under the dialect",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("csvstream.validate")

			cfg, err := dialect.configuration()
			if err != nil {
				return err
			}

			in, name, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			records := 0
			cfg.OnEndRecord = func(csv.Progress) csv.Disposition {
				records++
				return csv.Continue
			}

			if err := csv.ParseReader(in, cfg); err != nil {
				var perr *csv.Error
				if errors.As(err, &perr) {
					log.Debugf("%s: %s at byte %d", name, perr.Kind, perr.Progress.Bytes)
				}
				return fmt.Errorf("%s: invalid: %w", name, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (%d records)\n", name, records)
			return nil
		},
	}

	dialect.register(cmd)

	return cmd
}
