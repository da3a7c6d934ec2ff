package name

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithSuffix(t *testing.T) {
	tests := []struct {
		name     string
		base     Name
		suffix   string
		singular string
		plural   string
	}{
		{"default base", New("wolf"), "Corpse", "wolf Corpse", "wolf Corpses"},
		{"spaced suffix", New("Frost Giant"), "Skull", "Frost Giant Skull", "Frost Giant Skulls"},
		// A custom plural on the base is discarded: the derived plural is
		// always mechanical. "Wolves Corpses" would arguably read better,
		// but this matches the established behavior.
		{"custom plural discarded", NewWithPlural("Wolf", "Wolves"), "Corpse", "Wolf Corpse", "Wolf Corpses"},
		{"irregular base", NewWithPlural("Goose", "Geese"), "Feather", "Goose Feather", "Goose Feathers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			derived := WithSuffix(tt.base, tt.suffix)
			assert.Equal(t, tt.singular, derived.Singular())
			assert.Equal(t, tt.plural, derived.Plural())
		})
	}
}

func TestCorpseOf(t *testing.T) {
	corpse := CorpseOf(NewWithPlural("Wolf", "Wolves"))
	assert.True(t, corpse.Equal(NewWithPlural("Wolf Corpse", "Wolf Corpses")))
}
