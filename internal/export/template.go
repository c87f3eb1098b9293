package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cleared-dev/gastos/internal/model"
	"github.com/cleared-dev/gastos/internal/normalize"
)

// Template sheet and file names.
const (
	SheetTemplate     = "Plantilla"
	SheetInstructions = "Instrucciones"
	TemplateFileName  = "plantilla_importacion.xlsx"
)

// templateExamples holds one example row per type, in model.ImportColumns order.
var templateExamples = [][]string{
	{"Ingreso", "1,500.00", "2024-01-15", "Danli", "Venta del día", "", "", "", ""},
	{"Egreso", "250.50", "2024-01-15", "El Paraiso", "Compra de insumos", "", "", "", ""},
	{"Cierre", "2,500.00", "2024-01-16", "Danli", "", "", "5", "2024-01-01", "2024-01-15"},
	{"Proveedor", "800.00", "2024-01-17", "El Paraiso", "", "Distribuidora XYZ", "", "", ""},
	{"Salario", "6,000.00", "2024-01-31", "Danli", "Pago quincenal", "", "", "", ""},
}

// CreateTemplate writes the import template. Failures are reported in the
// result.
func (e *Exporter) CreateTemplate(ctx context.Context) model.FileResult {
	data, err := e.TemplateWorkbook()
	if err != nil {
		e.log.Error().Err(err).Msg("building template workbook")
		return model.FileResult{Success: false, Message: fmt.Sprintf("Error al generar la plantilla: %v", err)}
	}
	return e.deliver(ctx, TemplateFileName, data, "Plantilla creada")
}

// TemplateWorkbook renders the template as xlsx bytes.
func (e *Exporter) TemplateWorkbook() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, SheetTemplate); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}
	if err := writeHeader(f, SheetTemplate, model.ImportColumns); err != nil {
		return nil, err
	}
	for i, ex := range templateExamples {
		if err := setRow(f, SheetTemplate, i+2, ex); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(SheetTemplate, "A", "I", 16); err != nil {
		return nil, fmt.Errorf("setting widths: %w", err)
	}
	if err := f.SetColWidth(SheetTemplate, "E", "E", 30); err != nil {
		return nil, fmt.Errorf("setting widths: %w", err)
	}

	if _, err := f.NewSheet(SheetInstructions); err != nil {
		return nil, fmt.Errorf("adding instructions: %w", err)
	}
	for i, line := range e.instructions() {
		if err := setRow(f, SheetInstructions, i+1, line); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(SheetInstructions, "A", "A", 20); err != nil {
		return nil, fmt.Errorf("setting widths: %w", err)
	}
	if err := f.SetColWidth(SheetInstructions, "B", "B", 80); err != nil {
		return nil, fmt.Errorf("setting widths: %w", err)
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Exporter) instructions() [][]string {
	lines := [][]string{
		{"Columna", "Regla"},
		{model.ColTipo, "Requerido. Uno de: Ingreso, Egreso, Cierre, Proveedor, Salario"},
		{model.ColMonto, "Requerido. Número no negativo; la coma separa miles (1,500.00)"},
		{model.ColFecha, "Requerido. Fecha en formato AAAA-MM-DD"},
		{model.ColLocal, "Requerido. " + strings.Join(e.storeNames(), " o ")},
		{model.ColDescripcion, "Opcional. Se usa en Ingreso, Egreso y Salario"},
		{model.ColProveedor, "Opcional. Nombre del proveedor, solo para Proveedor"},
		{model.ColCierresCantidad, "Opcional. Entero no negativo, solo para Cierre"},
		{model.ColPeriodoInicio, "Opcional. AAAA-MM-DD, solo para Cierre"},
		{model.ColPeriodoFin, "Opcional. AAAA-MM-DD, solo para Cierre"},
		{},
		{"Tipo", "También se acepta"},
	}
	for _, t := range model.AllTypes {
		lines = append(lines, []string{t.Label(), strings.Join(normalize.TypeSynonyms(t), ", ")})
	}
	return lines
}

func (e *Exporter) storeNames() []string {
	names := make([]string, 0, 2)
	for _, id := range []model.StoreID{model.Store1, model.Store2} {
		if n := e.stores.DisplayName(id); n != "" {
			names = append(names, n)
		}
	}
	return names
}
