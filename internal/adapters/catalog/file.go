package catalog

import (
	"context"
	"os"
	"time"

	"butler/internal/adapters/observability"
	"butler/internal/domain"
)

// FileSource reads a snapshot document from a static JSON file. Same shape
// contract as the HTTP backend.
type FileSource struct{ path string }

func NewFileSource(path string) *FileSource { return &FileSource{path: path} }

func (f *FileSource) Fetch(ctx context.Context) (domain.CatalogSnapshot, error) {
	start := time.Now()
	b, err := os.ReadFile(f.path)
	if err != nil {
		observability.ObserveCatalogFetch("file", err, time.Since(start))
		return domain.CatalogSnapshot{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.CatalogSnapshot{}, err
	}
	snap, err := Parse(b)
	observability.ObserveCatalogFetch("file", err, time.Since(start))
	return snap, err
}
