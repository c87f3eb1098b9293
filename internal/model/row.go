package model

// Import column names. Parsers canonicalize header labels to these.
const (
	ColTipo            = "Tipo"
	ColMonto           = "Monto"
	ColFecha           = "Fecha"
	ColLocal           = "Local"
	ColDescripcion     = "Descripción"
	ColProveedor       = "Proveedor"
	ColCierresCantidad = "CierresCantidad"
	ColPeriodoInicio   = "PeriodoInicio"
	ColPeriodoFin      = "PeriodoFin"
)

// RequiredColumns must be present in every import header.
var RequiredColumns = []string{ColTipo, ColMonto, ColFecha, ColLocal}

// ImportColumns is the full import header in template order.
var ImportColumns = []string{
	ColTipo, ColMonto, ColFecha, ColLocal,
	ColDescripcion, ColProveedor, ColCierresCantidad, ColPeriodoInicio, ColPeriodoFin,
}

// RawRow is one spreadsheet row keyed by column label.
type RawRow map[string]string

// Has reports whether the row carries the column, even if empty.
func (r RawRow) Has(col string) bool {
	_, ok := r[col]
	return ok
}
