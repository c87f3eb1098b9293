package share

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSink_Deliver(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	s := DirSink{Dir: dir}

	loc, err := s.Deliver(context.Background(), "enero.xlsx", []byte("data"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "enero.xlsx"), loc)

	got, err := os.ReadFile(loc)
	require.NoError(t, err)
	assert.Equal(t, "data", string(got))
}

func TestDirSink_RejectsPaths(t *testing.T) {
	s := DirSink{Dir: t.TempDir()}
	for _, name := range []string{"", "../x.xlsx", "a/b.xlsx", `a\b.xlsx`} {
		_, err := s.Deliver(context.Background(), name, nil)
		assert.Error(t, err, "name %q", name)
	}
}

func TestGCSSink_RequiresBucket(t *testing.T) {
	_, err := GCSSink{}.Deliver(context.Background(), "a.xlsx", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no GCS bucket")
}

func TestParseGCSURI(t *testing.T) {
	bucket, object, err := ParseGCSURI("gs://gastos-docs/imports/enero.xlsx")
	require.NoError(t, err)
	assert.Equal(t, "gastos-docs", bucket)
	assert.Equal(t, "imports/enero.xlsx", object)

	for _, bad := range []string{"s3://b/o", "gs://bucket", "gs://bucket/", "gs:///obj"} {
		_, _, err := ParseGCSURI(bad)
		assert.Error(t, err, bad)
	}
}

func TestOpen_Local(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datos.csv")
	require.NoError(t, os.WriteFile(path, []byte("Tipo\n"), 0o644))

	got, err := Open(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Tipo\n", string(got))

	_, err = Open(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "enero.xlsx", BaseName("gs://b/imports/enero.xlsx"))
	assert.Equal(t, "datos.csv", BaseName("/tmp/x/datos.csv"))
	assert.Equal(t, "datos.csv", BaseName("datos.csv"))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/csv", contentType("a.CSV"))
	assert.Equal(t, "application/octet-stream", contentType("a.bin"))
}
