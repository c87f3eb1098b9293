package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/gastos/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var root string

	rootCmd := &cobra.Command{
		Use:     "gastos",
		Short:   "Spreadsheet import and export for store transactions",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&root, "root", ".", "data root holding gastos.yaml")

	rootCmd.AddCommand(
		newInitCommand(),
		newTemplateCommand(&root),
		newExportCommand(&root),
		newImportCommand(&root),
		newValidateCommand(&root),
		newHistoryCommand(&root),
	)

	return rootCmd
}
