package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/gastos/internal/model"
	"github.com/cleared-dev/gastos/internal/share"
)

func newValidateCommand(root *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "validate <file | gs://bucket/object>",
		Short: "Check a spreadsheet without submitting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*root)
			if err != nil {
				return err
			}
			data, err := share.Open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			records, err := runCheck(a, cmd.OutOrStdout(), data, share.BaseName(args[0]))
			if err != nil {
				return err
			}
			if output == "" {
				return nil
			}
			return writeRecords(output, records)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the records as JSON, readable by export --records")

	return cmd
}

func writeRecords(path string, records []model.Record) error {
	data, err := model.EncodeRecords(records)
	if err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing records: %w", err)
	}
	return nil
}
