package importer

import (
	"strings"

	"github.com/cleared-dev/gastos/internal/model"
	"github.com/cleared-dev/gastos/internal/normalize"
)

// headerAliases maps folded header labels to import column names. It covers
// the import names themselves and the labels the export sheet uses.
var headerAliases = func() map[string]string {
	m := make(map[string]string)
	for _, col := range model.ImportColumns {
		m[normalize.Fold(col)] = col
	}
	for label, col := range map[string]string{
		"Cantidad de Cierres": model.ColCierresCantidad,
		"Cierres":             model.ColCierresCantidad,
		"Periodo Desde":       model.ColPeriodoInicio,
		"Periodo Inicio":      model.ColPeriodoInicio,
		"Periodo Hasta":       model.ColPeriodoFin,
		"Periodo Fin":         model.ColPeriodoFin,
		"Tienda":              model.ColLocal,
		"Importe":             model.ColMonto,
	} {
		m[normalize.Fold(label)] = col
	}
	return m
}()

// canonicalHeader returns the import column name for a header label, or the
// trimmed label when it is not a known column.
func canonicalHeader(label string) string {
	if col, ok := headerAliases[normalize.Fold(label)]; ok {
		return col
	}
	return strings.TrimSpace(label)
}

// buildRows turns a grid whose first line is the header into raw rows.
// Every row carries every named header column. Trailing blank lines are
// dropped so row positions keep matching the sheet.
func buildRows(grid [][]string) []model.RawRow {
	if len(grid) == 0 {
		return nil
	}

	header := make([]string, len(grid[0]))
	for i, label := range grid[0] {
		header[i] = canonicalHeader(label)
	}

	body := grid[1:]
	for len(body) > 0 && blank(body[len(body)-1]) {
		body = body[:len(body)-1]
	}

	rows := make([]model.RawRow, 0, len(body))
	for _, line := range body {
		row := make(model.RawRow, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			if _, seen := row[col]; seen {
				continue
			}
			if i < len(line) {
				row[col] = strings.TrimSpace(line[i])
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func blank(line []string) bool {
	for _, cell := range line {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
