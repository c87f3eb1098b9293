package importlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/gastos/internal/model"
)

var testTime = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func testEntry() Entry {
	return FromOutcome(testTime, "enero.xlsx", model.ImportOutcome{
		Success:  true,
		Message:  "Se importaron 3 de 5 registros. Algunos registros fallaron.",
		Imported: 3,
		Total:    5,
	})
}

func TestAppend_NewFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, testEntry()))

	data, err := os.ReadFile(filepath.Join(dir, "logs", "import-log.csv"))
	require.NoError(t, err)
	assert.Equal(t,
		Header+"\n2024-01-15T10:30:00Z,enero.xlsx,3,5,true,Se importaron 3 de 5 registros. Algunos registros fallaron.\n",
		string(data))
}

func TestAppend_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, testEntry()))

	e2 := testEntry()
	e2.File = "febrero.csv"
	e2.Success = false
	e2.Message = "El archivo contiene errores de validación"
	require.NoError(t, Append(dir, e2))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "enero.xlsx", entries[0].File)
	assert.Equal(t, "febrero.csv", entries[1].File)
	assert.False(t, entries[1].Success)
}

func TestRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := testEntry()
	original.Message = "mensaje, con \"comillas\""
	require.NoError(t, Append(dir, original))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, original, entries[0])
}

func TestRead_NotFound(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRead_HeaderOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "logs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logs", "import-log.csv"), []byte(Header+"\n"), 0o644))

	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_Errors(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want string
	}{
		{"field count", []string{"one", "two"}, "expected 6 fields"},
		{"timestamp", []string{"ayer", "a.csv", "1", "1", "true", ""}, "parsing timestamp"},
		{"imported", []string{"2024-01-15T10:30:00Z", "a.csv", "x", "1", "true", ""}, "parsing imported"},
		{"total", []string{"2024-01-15T10:30:00Z", "a.csv", "1", "x", "true", ""}, "parsing total"},
		{"success", []string{"2024-01-15T10:30:00Z", "a.csv", "1", "1", "yes", ""}, "parsing success"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalEntry(tt.row)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFromOutcome_UTC(t *testing.T) {
	local := time.Date(2024, 1, 15, 4, 30, 0, 0, time.FixedZone("CST", -6*3600))
	e := FromOutcome(local, "a.csv", model.ImportOutcome{})
	assert.Equal(t, "2024-01-15T10:30:00Z", MarshalEntry(e)[colTime])
}
