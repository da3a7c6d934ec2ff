package name

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Name
		expected bool
	}{
		{"identical", NewWithPlural("goose", "geese"), NewWithPlural("goose", "geese"), true},
		{"same singular different plural", NewWithPlural("goose", "geese"), New("goose"), false},
		{"different singular", New("cat"), New("dog"), false},
		{"zero values", Name{}, Name{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Equal(tt.b))
		})
	}
}

func TestNameString(t *testing.T) {
	assert.Equal(t, "Wolf", NewWithPlural("Wolf", "Wolves").String())
}
