package dispatch

import (
	"fmt"

	"github.com/cleared-dev/gastos/internal/model"
)

// SubmissionError reports a record the backend did not accept. Index is
// 1-based in submission order.
type SubmissionError struct {
	Index   int
	Type    model.CanonicalType
	Message string
}

func (e SubmissionError) Error() string {
	return fmt.Sprintf("Registro %d (%s): %s", e.Index, e.Type.Label(), e.Message)
}

const (
	msgGenericFailure = "Error al guardar el registro"
	msgNoRecords      = "No hay registros para importar"
	msgNoneImported   = "No se pudo importar ningún registro"
)
