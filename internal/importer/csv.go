package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cleared-dev/gastos/internal/model"
)

// utf8BOM is stripped from the start of CSV files saved by spreadsheet tools.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVParser reads comma- or semicolon-separated text with a header line.
type CSVParser struct{}

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// Parse reads the file and returns one row per data line.
func (p *CSVParser) Parse(r io.Reader) ([]model.RawRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = detectDelimiter(data)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	grid, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	return buildRows(grid), nil
}

// detectDelimiter picks ';' when the header line has more semicolons than
// commas. Locales that use a decimal comma export that way.
func detectDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}
