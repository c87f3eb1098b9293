package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newTemplateCommand(root *string) *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Write the import template workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*root)
			if err != nil {
				return err
			}
			exp, err := a.exporter()
			if err != nil {
				return err
			}

			res := exp.CreateTemplate(cmd.Context())
			if !res.Success {
				return errors.New(res.Message)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", res.Message, res.Location)
			return nil
		},
	}
}
