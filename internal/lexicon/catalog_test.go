package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namesmith/internal/name"
)

func strPtr(s string) *string {
	return &s
}

func testDefinitions() []Definition {
	return []Definition{
		{ID: "wolf", Kind: "creature", Name: name.Record{Singular: strPtr("Wolf"), Plural: strPtr("Wolves")}},
		{ID: "apple", Kind: "item", Name: name.Record{Singular: strPtr("Apple")}},
		{ID: "bear", Kind: "creature", Name: name.Record{Singular: strPtr("Bear")}},
	}
}

func TestBuildCatalog(t *testing.T) {
	catalog, err := BuildCatalog(testDefinitions(), name.NopReporter)
	require.NoError(t, err)
	assert.Equal(t, 3, catalog.Len())

	wolf, ok := catalog.Lookup("wolf")
	require.True(t, ok)
	assert.Equal(t, "creature", wolf.Kind)
	assert.True(t, wolf.Name.Equal(name.NewWithPlural("Wolf", "Wolves")))

	apple, ok := catalog.Lookup("apple")
	require.True(t, ok)
	assert.Equal(t, "Apples", apple.Name.Plural())

	_, ok = catalog.Lookup("dragon")
	assert.False(t, ok)
}

func TestBuildCatalogReportsRedundantPlurals(t *testing.T) {
	defs := []Definition{
		{ID: "cat", Kind: "creature", Name: name.Record{Singular: strPtr("cat"), Plural: strPtr("cats")}},
	}

	reporter := &countingReporter{next: name.NopReporter}
	catalog, err := BuildCatalog(defs, reporter)

	require.NoError(t, err)
	assert.Equal(t, 1, catalog.Len())
	assert.Equal(t, 1, reporter.count)
}

func TestBuildCatalogDuplicateID(t *testing.T) {
	defs := []Definition{
		{ID: "wolf", Name: name.Record{Singular: strPtr("Wolf")}},
		{ID: "wolf", Name: name.Record{Singular: strPtr("Dire Wolf")}},
	}

	_, err := BuildCatalog(defs, name.NopReporter)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate definition id "wolf"`)
}

func TestBuildCatalogMissingSingular(t *testing.T) {
	defs := []Definition{
		{ID: "ghost", Name: name.Record{Plural: strPtr("Ghosts")}},
	}

	_, err := BuildCatalog(defs, name.NopReporter)
	require.Error(t, err)

	var missing *name.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "singular", missing.Field)
	assert.Contains(t, err.Error(), `definition "ghost"`)
}

func TestBuildCatalogEmptyID(t *testing.T) {
	defs := []Definition{{Name: name.Record{Singular: strPtr("Wolf")}}}

	_, err := BuildCatalog(defs, name.NopReporter)
	assert.Error(t, err)
}

func TestCatalogEntries(t *testing.T) {
	catalog, err := BuildCatalog(testDefinitions(), name.NopReporter)
	require.NoError(t, err)

	tests := []struct {
		name     string
		kind     string
		expected []string
	}{
		{"all kinds", "", []string{"apple", "bear", "wolf"}},
		{"creatures", "creature", []string{"bear", "wolf"}},
		{"items", "item", []string{"apple"}},
		{"unknown kind", "spell", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := catalog.Entries(tt.kind)
			ids := make([]string, 0, len(entries))
			for _, e := range entries {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}
