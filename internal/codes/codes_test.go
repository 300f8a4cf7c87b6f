package codes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"already normalized", "AB12CD34EF56GH78", "AB12CD34EF56GH78"},
		{"dashed", "AB12-CD34-EF56-GH78", "AB12CD34EF56GH78"},
		{"spaces", "AB12 CD34 EF56 GH78", "AB12CD34EF56GH78"},
		{"lowercase with separators", " ab12-cd34 ef56-gh78 ", "AB12CD34EF56GH78"},
		{"mixed separators", "ab-12 CD--34", "AB12CD34"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"", "ab-cd ef", "AB12-CD34-EF56-GH78", "  x y z  ", "1234"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestGenerate(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		code, err := Generate()
		assert.NoError(t, err)

		// Display format: four groups of four, dash separated.
		parts := strings.Split(code, "-")
		assert.Len(t, parts, 4)
		for _, p := range parts {
			assert.Len(t, p, 4)
			for _, r := range p {
				assert.Contains(t, charset, string(r))
			}
		}

		// Normalized form round-trips through Normalize.
		normalized := Normalize(code)
		assert.Len(t, normalized, 16)
		assert.Equal(t, normalized, Normalize(normalized))

		seen[normalized] = struct{}{}
	}

	// 32^16 keyspace: 100 draws must not collide.
	assert.Len(t, seen, 100)
}
