package importer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cleared-dev/gastos/internal/model"
)

var sampleGrid = [][]string{
	{"Tipo", "Monto", "Fecha", "Local", "Descripción", "Proveedor", "CierresCantidad", "PeriodoInicio", "PeriodoFin"},
	{"Ingreso", "1,500.00", "2024-01-15", "Danli", "Venta del día", "", "", "", ""},
	{"Cierre", "2500", "2024-01-16", "Denly", "", "", "5", "2024-01-01", "2024-01-15"},
	{"Proveedor", "800", "2024-01-17", "El Paraiso", "", "Distribuidora XYZ", "", "", ""},
}

func xlsxBytes(t *testing.T, grid [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, line := range grid {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		vals := make([]any, len(line))
		for j, v := range line {
			vals[j] = v
		}
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &vals))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func csvText(grid [][]string, sep string) string {
	var b strings.Builder
	for _, line := range grid {
		b.WriteString(strings.Join(quoteAll(line), sep))
		b.WriteString("\n")
	}
	return b.String()
}

func quoteAll(line []string) []string {
	out := make([]string, len(line))
	for i, v := range line {
		out[i] = `"` + v + `"`
	}
	return out
}

func TestXLSXParser_Parse(t *testing.T) {
	p := &XLSXParser{}
	got, err := p.Parse(bytes.NewReader(xlsxBytes(t, sampleGrid)))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Ingreso", got[0][model.ColTipo])
	assert.Equal(t, "1,500.00", got[0][model.ColMonto])
	assert.Equal(t, "Venta del día", got[0][model.ColDescripcion])
	assert.Equal(t, "5", got[1][model.ColCierresCantidad])
	assert.Equal(t, "Distribuidora XYZ", got[2][model.ColProveedor])

	for _, row := range got {
		for _, col := range model.ImportColumns {
			assert.True(t, row.Has(col), "row missing %s", col)
		}
	}
}

func TestXLSXParser_FirstSheetOnly(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Tipo", "Monto", "Fecha", "Local"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Egreso", "10", "2024-01-01", "Danli"}))
	_, err := f.NewSheet("Otra")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Otra", "A1", &[]any{"x"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	got, err := (&XLSXParser{}).Parse(buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Egreso", got[0][model.ColTipo])
}

func TestXLSXParser_Invalid(t *testing.T) {
	_, err := (&XLSXParser{}).Parse(strings.NewReader("not a workbook"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening workbook")
}

func TestXLSParser_Invalid(t *testing.T) {
	p := &XLSParser{}
	assert.Equal(t, "xls", p.Format())
	_, err := p.Parse(strings.NewReader("not a workbook"))
	assert.Error(t, err)
}

func TestCSVParser_MatchesXLSX(t *testing.T) {
	fromXLSX, err := (&XLSXParser{}).Parse(bytes.NewReader(xlsxBytes(t, sampleGrid)))
	require.NoError(t, err)

	for _, sep := range []string{",", ";"} {
		fromCSV, err := (&CSVParser{}).Parse(strings.NewReader(csvText(sampleGrid, sep)))
		require.NoError(t, err)
		assert.Equal(t, fromXLSX, fromCSV, "separator %q", sep)
	}
}

func TestCSVParser_BOMAndAliases(t *testing.T) {
	data := "\xEF\xBB\xBFtipo,MONTO,Fecha,local,Descripcion,Cantidad de Cierres,Periodo Desde,Periodo Hasta\n" +
		"Cierre,100,2024-01-02,Danli,,3,2024-01-01,2024-01-02\n\n\n"
	got, err := (&CSVParser{}).Parse(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, model.RawRow{
		model.ColTipo:            "Cierre",
		model.ColMonto:           "100",
		model.ColFecha:           "2024-01-02",
		model.ColLocal:           "Danli",
		model.ColDescripcion:     "",
		model.ColCierresCantidad: "3",
		model.ColPeriodoInicio:   "2024-01-01",
		model.ColPeriodoFin:      "2024-01-02",
	}, got[0])
}

func TestCSVParser_ShortRowsPadded(t *testing.T) {
	got, err := (&CSVParser{}).Parse(strings.NewReader("Tipo,Monto,Fecha,Local,Proveedor\nIngreso,5\n"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "", got[0][model.ColLocal])
	assert.True(t, got[0].Has(model.ColProveedor))
}

func TestCSVParser_HeaderOnly(t *testing.T) {
	got, err := (&CSVParser{}).Parse(strings.NewReader("Tipo,Monto,Fecha,Local\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCSVParser_Empty(t *testing.T) {
	got, err := (&CSVParser{}).Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("nonexistent"))
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(&CSVParser{})
	p := r.Get("csv")
	require.NotNil(t, p)
	assert.Equal(t, "csv", p.Format())
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	r := NewRegistry()
	r.Register(&XLSXParser{})
	assert.NotNil(t, r.Get("XLSX"))
	assert.NotNil(t, r.Get("Xlsx"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&CSVParser{})
	assert.Panics(t, func() { r.Register(&CSVParser{}) })
}

func TestRegistry_ForFile(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, "xlsx", r.ForFile("enero.XLSX").Format())
	assert.Equal(t, "xls", r.ForFile("viejo.xls").Format())
	assert.Equal(t, "csv", r.ForFile("datos.csv").Format())
	assert.Nil(t, r.ForFile("notas.txt"))
	assert.Nil(t, r.ForFile("sin_extension"))
}

func TestScan_FindsSpreadsheets(t *testing.T) {
	dir := t.TempDir()
	importDir := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(importDir, 0o755))

	for _, name := range []string{"enero.xlsx", "febrero.csv", "other.txt", "~$enero.xlsx"} {
		require.NoError(t, os.WriteFile(filepath.Join(importDir, name), []byte("data"), 0o644))
	}

	files, err := Scan(dir, DefaultRegistry())
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "enero.xlsx", files[0].Name)
	assert.Equal(t, "febrero.csv", files[1].Name)
	assert.Equal(t, int64(4), files[0].Size)
}

func TestScan_IgnoresProcessedDir(t *testing.T) {
	dir := t.TempDir()
	importDir := filepath.Join(dir, "import")
	processedDir := filepath.Join(importDir, "processed")
	require.NoError(t, os.MkdirAll(processedDir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(importDir, "new.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(processedDir, "old.csv"), []byte("data"), 0o644))

	files, err := Scan(dir, DefaultRegistry())
	require.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Equal(t, "new.csv", files[0].Name)
}

func TestScan_EmptyDir(t *testing.T) {
	dir := t.TempDir()
	files, err := Scan(dir, DefaultRegistry())
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestMarkProcessed(t *testing.T) {
	dir := t.TempDir()
	importDir := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(importDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(importDir, "enero.xlsx"), []byte("data"), 0o644))

	require.NoError(t, MarkProcessed(dir, "enero.xlsx"))

	_, err := os.Stat(filepath.Join(importDir, "enero.xlsx"))
	assert.True(t, os.IsNotExist(err))

	info, err := os.Stat(filepath.Join(dir, "import", "processed", "enero.xlsx"))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestMarkProcessed_Missing(t *testing.T) {
	err := MarkProcessed(t.TempDir(), "nope.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "moving nope.csv")
}
