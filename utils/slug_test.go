package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Rex", "rex"},
		{"punctuation stripped", "Rex!!", "rex"},
		{"diacritics folded", "São Paulo", "sao-paulo"},
		{"spaces to hyphen", "Hello World", "hello-world"},
		{"runs collapsed", "a  --  b", "a-b"},
		{"leading trailing trimmed", "  Bolinha!  ", "bolinha"},
		{"digits kept", "App 2.0", "app-2-0"},
		{"portuguese accents", "Cão é ótimo", "cao-e-otimo"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"São Paulo", "Rex!!", "Bolinha", "Cão Feliz 123"}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "slugify should be stable on its own output: %q", in)
	}
}

func TestSlugifyCharset(t *testing.T) {
	out := Slugify("Rex!! São Paulo ÀÇÃO")
	for _, r := range out {
		valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
		assert.True(t, valid, "unexpected rune %q in slug %q", r, out)
	}
	assert.NotEmpty(t, out)
	assert.NotEqual(t, byte('-'), out[0])
	assert.NotEqual(t, byte('-'), out[len(out)-1])
}
