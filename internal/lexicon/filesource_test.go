package lexicon

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, filename, content string) string {
	t.Helper()
	path := filepath.Join(dir, filename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSourceSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "creatures.json", `{
		"entities": [
			{"id": "wolf", "kind": "creature", "name": {"singular": "Wolf", "plural": "Wolves"}},
			{"id": "bear", "kind": "creature", "name": {"singular": "Bear"}}
		]
	}`)

	defs, err := FileSource{Path: path}.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "wolf", defs[0].ID)
	require.NotNil(t, defs[0].Name.Plural)
	assert.Equal(t, "Wolves", *defs[0].Name.Plural)
	assert.Nil(t, defs[1].Name.Plural)
}

func TestFileSourceDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "creatures.json", `{"entities": [{"id": "wolf", "kind": "creature", "name": {"singular": "Wolf"}}]}`)
	writeFile(t, dir, "items.json", `{"entities": [{"id": "apple", "kind": "item", "name": {"singular": "Apple"}}]}`)
	writeFile(t, dir, "notes.txt", "ignored")

	defs, err := FileSource{Path: dir}.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, defs, 2)
	// Files are read in lexicographic order.
	assert.Equal(t, "wolf", defs[0].ID)
	assert.Equal(t, "apple", defs[1].ID)
}

func TestFileSourceEmptyDirectory(t *testing.T) {
	_, err := FileSource{Path: t.TempDir()}.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no *.json definitions")
}

func TestFileSourceMissingPath(t *testing.T) {
	_, err := FileSource{Path: filepath.Join(t.TempDir(), "absent.json")}.Load(context.Background())
	assert.Error(t, err)
}

func TestFileSourceMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.json", `{"entities": [{"id": }`)

	_, err := FileSource{Path: path}.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode definitions document")
}

func TestFileSourceUnknownField(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "typo.json", `{"entitles": []}`)

	_, err := FileSource{Path: path}.Load(context.Background())
	assert.Error(t, err)
}

func TestDecodeDocumentPreservesAbsence(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty_plural.json", `{
		"entities": [{"id": "blob", "kind": "creature", "name": {"singular": "Blob", "plural": ""}}]
	}`)

	defs, err := FileSource{Path: path}.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, defs, 1)
	// An explicitly empty plural is present, not absent.
	require.NotNil(t, defs[0].Name.Plural)
	assert.Equal(t, "", *defs[0].Name.Plural)
}
