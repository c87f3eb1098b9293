package importer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/gastos/internal/dispatch"
	"github.com/cleared-dev/gastos/internal/model"
	"github.com/cleared-dev/gastos/internal/stores"
)

type fakeSubmitter struct {
	got []model.Record
}

func (f *fakeSubmitter) Submit(_ context.Context, records []model.Record) model.ImportOutcome {
	f.got = records
	return model.ImportOutcome{Success: true, Imported: len(records), Total: len(records)}
}

func newTestPipeline(sub Submitter) (*Pipeline, *[]Stage) {
	p := NewPipeline(DefaultRegistry(), stores.Default(), sub, zerolog.Nop())
	var stages []Stage
	p.OnStage = func(s Stage) { stages = append(stages, s) }
	return p, &stages
}

func TestPipeline_Import(t *testing.T) {
	sub := &fakeSubmitter{}
	p, stages := newTestPipeline(sub)

	out := p.Import(context.Background(), xlsxBytes(t, sampleGrid), "enero.xlsx")
	assert.True(t, out.Success)
	assert.Equal(t, 3, out.Imported)

	require.Len(t, sub.got, 3)
	assert.Equal(t, model.TypeIncome, sub.got[0].Type())
	cl := sub.got[1].(model.ClosingRecord)
	assert.Equal(t, model.Store1, cl.Store)
	assert.Equal(t, 5, *cl.ClosingsCount)
	assert.Equal(t, "Distribuidora XYZ", sub.got[2].(model.SupplierRecord).Supplier)

	assert.Equal(t, []Stage{
		StageIdle, StageParsed, StageValidated, StageTransformed, StageSubmitting, StageCompleted,
	}, *stages)
}

func TestPipeline_ValidationFailure(t *testing.T) {
	sub := &fakeSubmitter{}
	p, stages := newTestPipeline(sub)

	data := "Tipo,Monto,Fecha,Local\nIngreso,10,2024-01-01,Danli\nIngreso,abc,2024-01-01,Tegucigalpa\n"
	out := p.Import(context.Background(), []byte(data), "datos.csv")

	assert.False(t, out.Success)
	assert.Equal(t, MsgValidationFailed, out.Message)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, 0, out.Imported)
	assert.Len(t, out.Errors, 2)
	assert.Nil(t, sub.got, "nothing may be submitted")
	assert.Equal(t, []Stage{StageIdle, StageParsed, StageValidationFailed}, *stages)
}

func TestPipeline_MissingColumns(t *testing.T) {
	p, _ := newTestPipeline(&fakeSubmitter{})
	out := p.Import(context.Background(), []byte("Tipo,Monto\nIngreso,5\n"), "datos.csv")
	assert.False(t, out.Success)
	assert.Equal(t, []string{
		"Falta la columna requerida: Fecha",
		"Falta la columna requerida: Local",
	}, out.Errors)
}

func TestPipeline_UnsupportedFormat(t *testing.T) {
	p, _ := newTestPipeline(&fakeSubmitter{})
	out := p.Import(context.Background(), []byte("x"), "notas.txt")
	assert.False(t, out.Success)
	assert.Equal(t, "Formato de archivo no soportado: notas.txt", out.Message)
}

func TestPipeline_Unreadable(t *testing.T) {
	p, _ := newTestPipeline(&fakeSubmitter{})
	out := p.Import(context.Background(), []byte("garbage"), "enero.xlsx")
	assert.False(t, out.Success)
	assert.True(t, strings.HasPrefix(out.Message, "No se pudo leer el archivo"), out.Message)
}

func TestPipeline_Check(t *testing.T) {
	p, _ := newTestPipeline(nil)
	res, err := p.Check(xlsxBytes(t, sampleGrid), "enero.xlsx")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.True(t, res.Validation.Valid)
	assert.Len(t, res.Records, 3)
}

func TestPipeline_PartialSubmission(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		if n == 2 || n == 4 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"Registro rechazado"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := dispatch.New(dispatch.Config{BaseURL: srv.URL}, zerolog.Nop())
	p, _ := newTestPipeline(d)

	data := "Tipo,Monto,Fecha,Local\n" +
		"Ingreso,1,2024-01-01,Danli\n" +
		"Egreso,2,2024-01-01,Danli\n" +
		"Salario,3,2024-01-01,Danli\n" +
		"Proveedor,4,2024-01-01,El Paraiso\n" +
		"Cierre,5,2024-01-01,El Paraiso\n"
	out := p.Import(context.Background(), []byte(data), "datos.csv")

	assert.True(t, out.Success)
	assert.Equal(t, 3, out.Imported)
	assert.Equal(t, 5, out.Total)
	assert.Len(t, out.Errors, 2)
	assert.Equal(t, int32(5), calls.Load())
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "validation_failed", StageValidationFailed.String())
	assert.Equal(t, "completed", StageCompleted.String())
	assert.Equal(t, "stage(42)", Stage(42).String())
}
