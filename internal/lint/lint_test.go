package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namesmith/internal/lexicon"
	"namesmith/internal/name"
)

func strPtr(s string) *string {
	return &s
}

func TestAudit(t *testing.T) {
	tests := []struct {
		name     string
		def      lexicon.Definition
		code     string
		contains string
	}{
		{
			name: "missing singular",
			def:  lexicon.Definition{ID: "ghost", Name: name.Record{Plural: strPtr("Ghosts")}},
			code: CodeMissingSingular,
		},
		{
			name:     "redundant plural",
			def:      lexicon.Definition{ID: "cat", Name: name.Record{Singular: strPtr("cat"), Plural: strPtr("cats")}},
			code:     CodeRedundantPlural,
			contains: "cats can be rendered from cat",
		},
		{
			name:     "suspect plural",
			def:      lexicon.Definition{ID: "wolf", Name: name.Record{Singular: strPtr("Wolf"), Plural: strPtr("Wolfz")}},
			code:     CodeSuspectPlural,
			contains: `"Wolves"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := Audit([]lexicon.Definition{tt.def})
			require.Len(t, findings, 1)
			assert.Equal(t, tt.def.ID, findings[0].DefinitionID)
			assert.Equal(t, tt.code, findings[0].Code)
			if tt.contains != "" {
				assert.Contains(t, findings[0].Message, tt.contains)
			}
		})
	}
}

func TestAuditCleanDefinitions(t *testing.T) {
	defs := []lexicon.Definition{
		{ID: "bear", Name: name.Record{Singular: strPtr("Bear")}},
		// Dictionary irregular: an override the inflector agrees with.
		{ID: "goose", Name: name.Record{Singular: strPtr("Goose"), Plural: strPtr("Geese")}},
	}

	assert.Empty(t, Audit(defs))
}

func TestAuditPreservesDefinitionOrder(t *testing.T) {
	defs := []lexicon.Definition{
		{ID: "b", Name: name.Record{Singular: strPtr("cat"), Plural: strPtr("cats")}},
		{ID: "a", Name: name.Record{Plural: strPtr("Ghosts")}},
	}

	findings := Audit(defs)
	require.Len(t, findings, 2)
	assert.Equal(t, "b", findings[0].DefinitionID)
	assert.Equal(t, "a", findings[1].DefinitionID)
}
