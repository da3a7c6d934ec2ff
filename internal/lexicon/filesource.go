package lexicon

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Source supplies the raw definitions a catalog is built from.
type Source interface {
	Load(ctx context.Context) ([]Definition, error)
}

// FileSource loads definitions from a JSON document, or from every *.json
// file in a directory (lexicographic order, so ids collide deterministically).
type FileSource struct {
	Path string
}

// Load reads and decodes the configured path.
func (s FileSource) Load(ctx context.Context) ([]Definition, error) {
	info, err := os.Stat(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat definitions path: %w", err)
	}

	paths := []string{s.Path}
	if info.IsDir() {
		paths, err = filepath.Glob(filepath.Join(s.Path, "*.json"))
		if err != nil {
			return nil, fmt.Errorf("failed to list definitions directory: %w", err)
		}
		if len(paths) == 0 {
			return nil, fmt.Errorf("no *.json definitions found in %q", s.Path)
		}
		sort.Strings(paths)
	}

	var defs []Definition
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open definitions file: %w", err)
		}
		doc, err := DecodeDocument(f)
		closeErr := f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if closeErr != nil {
			return nil, closeErr
		}

		defs = append(defs, doc.Entities...)
	}
	return defs, nil
}
