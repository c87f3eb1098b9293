// Package export writes transaction and template workbooks.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/cleared-dev/gastos/internal/model"
	"github.com/cleared-dev/gastos/internal/share"
)

// SheetTransactions is the data sheet of an export.
const SheetTransactions = "Transacciones"

// defaultSheet is the sheet excelize creates in a new file.
const defaultSheet = "Sheet1"

// column is one export column: its header label and width.
type column struct {
	label string
	width float64
}

var exportColumns = []column{
	{"Tipo", 12},
	{"Monto", 14},
	{"Fecha", 12},
	{"Descripción", 40},
	{"Local", 14},
	{"Proveedor", 25},
	{"Cantidad de Cierres", 18},
	{"Periodo Desde", 14},
	{"Periodo Hasta", 14},
}

// StoreNamer resolves store IDs to display names.
type StoreNamer interface {
	DisplayName(id model.StoreID) string
}

// Options configures an Exporter.
type Options struct {
	Locale     string
	MonthNames []string // 12 names, January first; Spanish when empty
	Now        func() time.Time
}

// Exporter builds workbooks and hands them to a share.Sink.
type Exporter struct {
	sink   share.Sink
	stores StoreNamer
	amount amountFormatter
	months [12]string
	now    func() time.Time
	log    zerolog.Logger
}

// New creates an Exporter.
func New(sink share.Sink, stores StoreNamer, opts Options, log zerolog.Logger) (*Exporter, error) {
	amount, err := newAmountFormatter(opts.Locale)
	if err != nil {
		return nil, err
	}
	months := SpanishMonths
	if len(opts.MonthNames) > 0 {
		if len(opts.MonthNames) != 12 {
			return nil, fmt.Errorf("month names: want 12, got %d", len(opts.MonthNames))
		}
		copy(months[:], opts.MonthNames)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Exporter{
		sink:   sink,
		stores: stores,
		amount: amount,
		months: months,
		now:    now,
		log:    log.With().Str("component", "export").Logger(),
	}, nil
}

// Export writes records to a workbook named fileName, or the default
// monthly name when fileName is empty. Failures are reported in the result.
func (e *Exporter) Export(ctx context.Context, records []model.Record, fileName string) model.FileResult {
	if fileName == "" {
		fileName = DefaultFileName(e.now(), e.months)
	}
	data, err := e.Workbook(records)
	if err != nil {
		e.log.Error().Err(err).Msg("building export workbook")
		return model.FileResult{Success: false, Message: fmt.Sprintf("Error al generar el archivo: %v", err)}
	}
	return e.deliver(ctx, fileName, data, fmt.Sprintf("Se exportaron %d registros", len(records)))
}

// Workbook renders records as xlsx bytes.
func (e *Exporter) Workbook(records []model.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, SheetTransactions); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	labels := make([]string, len(exportColumns))
	for i, c := range exportColumns {
		labels[i] = c.label
	}
	if err := writeHeader(f, SheetTransactions, labels); err != nil {
		return nil, err
	}
	for i, c := range exportColumns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(SheetTransactions, name, name, c.width); err != nil {
			return nil, fmt.Errorf("setting width of %s: %w", c.label, err)
		}
	}

	for i, r := range records {
		if err := setRow(f, SheetTransactions, i+2, e.row(r)); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// row renders one record in exportColumns order.
func (e *Exporter) row(r model.Record) []string {
	b := r.Common()
	out := []string{
		r.Type().Label(),
		e.amount.format(b.Amount),
		b.Date.Format(model.DateFormat),
		model.Description(r),
		e.stores.DisplayName(b.Store),
		"", "", "", "",
	}
	switch v := r.(type) {
	case model.SupplierRecord:
		out[5] = v.Supplier
	case model.ClosingRecord:
		if v.ClosingsCount != nil {
			out[6] = fmt.Sprint(*v.ClosingsCount)
		}
		if v.PeriodStart != nil {
			out[7] = v.PeriodStart.Format(model.DateFormat)
		}
		if v.PeriodEnd != nil {
			out[8] = v.PeriodEnd.Format(model.DateFormat)
		}
	}
	return out
}

func (e *Exporter) deliver(ctx context.Context, name string, data []byte, msg string) model.FileResult {
	loc, err := e.sink.Deliver(ctx, name, data)
	if err != nil {
		e.log.Error().Err(err).Str("file", name).Msg("delivering workbook")
		return model.FileResult{Success: false, Message: fmt.Sprintf("Error al guardar el archivo: %v", err)}
	}
	e.log.Info().Str("file", name).Str("location", loc).Msg("workbook delivered")
	return model.FileResult{Success: true, Message: msg, Location: loc}
}

// writeHeader writes a bold header in row 1.
func writeHeader(f *excelize.File, sheet string, labels []string) error {
	if err := setRow(f, sheet, 1, labels); err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, style); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}
	return nil
}

// setRow writes cells as text starting at column A of row n.
func setRow(f *excelize.File, sheet string, n int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	vals := make([]any, len(cells))
	for i, c := range cells {
		vals[i] = c
	}
	if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
		return fmt.Errorf("writing row %d: %w", n, err)
	}
	return nil
}
