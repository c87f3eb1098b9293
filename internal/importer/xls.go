package importer

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/extrame/xls"

	"github.com/cleared-dev/gastos/internal/model"
)

// xlsCharset decodes legacy string cells.
const xlsCharset = "utf-8"

// XLSParser reads the first sheet of a legacy BIFF (.xls) workbook.
type XLSParser struct{}

// Format returns the parser name.
func (p *XLSParser) Format() string { return "xls" }

// Parse reads the workbook and returns one row per data line.
func (p *XLSParser) Parse(r io.Reader) ([]model.RawRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading workbook: %w", err)
	}

	wb, err := xls.OpenReader(bytes.NewReader(data), xlsCharset)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	if wb.NumSheets() == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("workbook has no sheets")
	}

	grid := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			grid = append(grid, nil)
			continue
		}
		line := make([]string, row.LastCol())
		for j := row.FirstCol(); j < row.LastCol(); j++ {
			line[j] = row.Col(j)
		}
		grid = append(grid, line)
	}
	return buildRows(grid), nil
}
