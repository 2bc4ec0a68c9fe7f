package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name", "Jean Dupont", "Jean Dupont"},
		{"diacritics stripped", "François Müller", "Francois Muller"},
		{"whitespace collapsed", "  Jean   Dupont ", "Jean Dupont"},
		{"tabs and newlines", "Jean\t\nDupont", "Jean Dupont"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Fold(tt.input))
		})
	}
}

func TestNormalizeAliases(t *testing.T) {
	n := New(AliasMap{
		"Jean Dupont":     {"DUPONT Jean", "J. Dupont"},
		"François Muller": {"MULLER Francois"},
	})

	tests := []struct {
		input    string
		expected string
	}{
		{"DUPONT Jean", "Jean Dupont"},
		{"J. Dupont", "Jean Dupont"},
		{"MULLER Francois", "François Muller"},
		{"Unknown Player", "Unknown Player"},
		{"  DUPONT   Jean ", "Jean Dupont"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := New(AliasMap{
		"François Muller": {"MULLER Francois", "Francois Muller"},
	})

	inputs := []string{"MULLER Francois", "François Muller", "Sömé Plàyer", "plain", ""}
	for _, input := range inputs {
		once := n.Normalize(input)
		assert.Equal(t, once, n.Normalize(once), "normalize must be idempotent for %q", input)
	}
}

func TestNormalizeNoAliases(t *testing.T) {
	n := New(AliasMap{})
	assert.Equal(t, "Jose Perez", n.Normalize("José Pérez"))
}
