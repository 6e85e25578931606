package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Lima", "lima"},
		{"  San Juan de Lurigancho ", "san-juan-de-lurigancho"},
		{"TRUJILLO", "trujillo"},
		{"a  b", "a-b"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 1, CountWords("ropa"))
	assert.Equal(t, 3, CountWords("  ropa  de  bebé "))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Café Orgánico", "orgánico"))
	assert.True(t, ContainsFold("Zapatería", ""))
	assert.False(t, ContainsFold("Zapatería", "panadería"))
}
