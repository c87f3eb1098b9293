// Package share delivers generated workbooks and fetches import files from
// local disk or Google Cloud Storage.
package share

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sink is a destination for generated files.
type Sink interface {
	// Deliver stores data under name and returns where it ended up.
	Deliver(ctx context.Context, name string, data []byte) (string, error)
}

// DirSink saves files into a local directory, creating it on demand.
type DirSink struct {
	Dir string
}

// Deliver writes data to Dir/name.
func (s DirSink) Deliver(_ context.Context, name string, data []byte) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return path, nil
}

// checkName rejects names that would escape the destination.
func checkName(name string) error {
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid file name %q", name)
	}
	return nil
}

// Open reads a local file or a gs://bucket/object URI.
func Open(ctx context.Context, uri string) ([]byte, error) {
	if IsGCSURI(uri) {
		return FetchGCS(ctx, uri)
	}
	data, err := os.ReadFile(uri)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", uri, err)
	}
	return data, nil
}

// BaseName returns the file name part of a local path or gs:// URI.
func BaseName(uri string) string {
	if IsGCSURI(uri) {
		if _, object, err := ParseGCSURI(uri); err == nil {
			return filepath.Base(object)
		}
	}
	return filepath.Base(uri)
}
