package rows

import "fmt"

// StructuralError reports a required column missing from the header. It
// aborts validation before any row is inspected.
type StructuralError struct {
	Column string
}

func (e StructuralError) Error() string {
	return fmt.Sprintf("Falta la columna requerida: %s", e.Column)
}

// FieldError reports a problem with a single cell. Row is the spreadsheet
// row number (the header is row 1).
type FieldError struct {
	Row    int
	Field  string
	Value  string
	Reason string
}

func (e FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("Fila %d: %s %s", e.Row, e.Field, e.Reason)
	}
	return fmt.Sprintf("Fila %d: %s %q %s", e.Row, e.Field, e.Value, e.Reason)
}

// ErrEmpty is reported when there is no data row at all.
const ErrEmpty = "El archivo está vacío o no tiene datos"

const (
	reasonRequired    = "es requerido"
	reasonBadType     = "no es un tipo válido (use Ingreso, Egreso, Cierre, Proveedor o Salario)"
	reasonBadNumber   = "tiene un formato numérico inválido"
	reasonNegative    = "no puede ser negativo"
	reasonBadDate     = "no es una fecha válida (use AAAA-MM-DD)"
	reasonBadCount    = "debe ser un número entero no negativo"
	reasonBadStoreFmt = "no es un local válido (use %s)"
)
