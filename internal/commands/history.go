package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/gastos/internal/importlog"
)

func newHistoryCommand(root *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past imports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*root)
			if err != nil {
				return err
			}
			entries, err := importlog.Read(a.dataRoot())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(w, "Sin importaciones registradas")
				return nil
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[len(entries)-limit:]
			}
			for _, e := range entries {
				status := "OK"
				if !e.Success {
					status = "ERROR"
				}
				fmt.Fprintf(w, "%s  %-5s  %3d/%-3d  %s  %s\n",
					e.Timestamp.Local().Format(time.DateTime), status, e.Imported, e.Total, e.File, e.Message)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "show only the most recent entries (0 for all)")

	return cmd
}
