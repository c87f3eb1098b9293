package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/gastos/internal/export"
	"github.com/cleared-dev/gastos/internal/model"
	"github.com/cleared-dev/gastos/internal/share"
)

func newExportCommand(root *string) *cobra.Command {
	var recordsPath, from, to, name string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transaction records to a workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*root)
			if err != nil {
				return err
			}

			data, err := share.Open(cmd.Context(), recordsPath)
			if err != nil {
				return err
			}
			records, err := model.DecodeRecords(data)
			if err != nil {
				return err
			}

			records, rangeName, err := filterByDate(records, from, to)
			if err != nil {
				return err
			}
			if name == "" {
				name = rangeName
			}

			exp, err := a.exporter()
			if err != nil {
				return err
			}
			res := exp.Export(cmd.Context(), records, name)
			if !res.Success {
				return errors.New(res.Message)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", res.Message, res.Location)
			return nil
		},
	}

	cmd.Flags().StringVar(&recordsPath, "records", "", "JSON array of records (path or gs:// URI)")
	_ = cmd.MarkFlagRequired("records")
	cmd.Flags().StringVar(&from, "from", "", "first day to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last day to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&name, "name", "", "output file name")

	return cmd
}

// filterByDate keeps records dated within [from, to]; either bound may be
// empty. When both are set it also returns the range file name.
func filterByDate(records []model.Record, from, to string) ([]model.Record, string, error) {
	if from == "" && to == "" {
		return records, "", nil
	}

	var start, end time.Time
	var err error
	if from != "" {
		if start, err = time.Parse(model.DateFormat, from); err != nil {
			return nil, "", fmt.Errorf("parsing --from: %w", err)
		}
	}
	if to != "" {
		if end, err = time.Parse(model.DateFormat, to); err != nil {
			return nil, "", fmt.Errorf("parsing --to: %w", err)
		}
	}
	if from != "" && to != "" && end.Before(start) {
		return nil, "", fmt.Errorf("--to %s is before --from %s", to, from)
	}

	var out []model.Record
	for _, r := range records {
		d := r.Common().Date
		if from != "" && d.Before(start) {
			continue
		}
		if to != "" && d.After(end) {
			continue
		}
		out = append(out, r)
	}

	name := ""
	if from != "" && to != "" {
		name = export.RangeFileName(start, end)
	}
	return out, name, nil
}
