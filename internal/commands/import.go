package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/gastos/internal/importer"
	"github.com/cleared-dev/gastos/internal/importlog"
	"github.com/cleared-dev/gastos/internal/model"
	"github.com/cleared-dev/gastos/internal/share"
)

func newImportCommand(root *string) *cobra.Command {
	var inbox, dryRun bool

	cmd := &cobra.Command{
		Use:   "import [file | gs://bucket/object]",
		Short: "Import a spreadsheet and submit its records",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if inbox == (len(args) == 1) {
				return errors.New("give either a file or --inbox")
			}
			a, err := loadApp(*root)
			if err != nil {
				return err
			}
			if inbox {
				return runImportInbox(cmd.Context(), a, cmd.OutOrStdout(), dryRun)
			}
			return runImport(cmd.Context(), a, cmd.OutOrStdout(), args[0], dryRun)
		},
	}

	cmd.Flags().BoolVar(&inbox, "inbox", false, "import every spreadsheet in import/")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate without submitting")

	return cmd
}

func runImport(ctx context.Context, a *app, w io.Writer, uri string, dryRun bool) error {
	data, err := share.Open(ctx, uri)
	if err != nil {
		return err
	}
	name := share.BaseName(uri)
	if dryRun {
		_, err := runCheck(a, w, data, name)
		return err
	}

	out := importOne(ctx, a, w, data, name)
	if !out.Success {
		return errors.New(out.Message)
	}
	return nil
}

func runImportInbox(ctx context.Context, a *app, w io.Writer, dryRun bool) error {
	root := a.dataRoot()
	files, err := importer.Scan(root, importer.DefaultRegistry())
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(w, "No hay archivos en import/")
		return nil
	}

	failed := 0
	for _, f := range files {
		data, err := share.Open(ctx, f.Path)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "== %s\n", f.Name)

		if dryRun {
			if _, err := runCheck(a, w, data, f.Name); err != nil {
				fmt.Fprintln(w, err)
				failed++
			}
			continue
		}

		out := importOne(ctx, a, w, data, f.Name)
		if !out.Success {
			failed++
			continue
		}
		if err := importer.MarkProcessed(root, f.Name); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d de %d archivos con errores", failed, len(files))
	}
	return nil
}

// importOne runs the pipeline, prints the outcome and records it in the log.
func importOne(ctx context.Context, a *app, w io.Writer, data []byte, name string) model.ImportOutcome {
	d := a.dispatcher()
	d.Progress = func(done, total int) {
		a.log.Info().Int("done", done).Int("total", total).Msg("submitting")
	}

	out := a.pipeline(d).Import(ctx, data, name)
	printOutcome(w, out)

	if err := importlog.Append(a.dataRoot(), importlog.FromOutcome(time.Now(), name, out)); err != nil {
		a.log.Error().Err(err).Msg("writing import log")
	}
	return out
}

// runCheck validates without submitting and returns the records the file
// would produce.
func runCheck(a *app, w io.Writer, data []byte, name string) ([]model.Record, error) {
	res, err := a.pipeline(nil).Check(data, name)
	if err != nil {
		return nil, err
	}
	if !res.Validation.Valid {
		for _, e := range res.Validation.Errors {
			fmt.Fprintf(w, "  - %s\n", e)
		}
		return nil, errors.New(importer.MsgValidationFailed)
	}
	fmt.Fprintf(w, "%d registros válidos\n", len(res.Records))
	return res.Records, nil
}

func printOutcome(w io.Writer, out model.ImportOutcome) {
	fmt.Fprintln(w, out.Message)
	if out.Total > 0 {
		fmt.Fprintf(w, "Importados: %d/%d\n", out.Imported, out.Total)
	}
	for _, e := range out.Errors {
		fmt.Fprintf(w, "  - %s\n", e)
	}
}
