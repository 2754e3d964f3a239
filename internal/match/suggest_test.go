package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairTypos(t *testing.T) {
	tests := []struct {
		name       string
		missing    []string
		unexpected []string
		expected   []Suggestion
	}{
		{
			name:       "classic trailing letter typo",
			missing:    []string{"age"},
			unexpected: []string{"agee"},
			expected:   []Suggestion{{Unexpected: "agee", Missing: "age"}},
		},
		{
			name:       "dissimilar keys produce no pair",
			missing:    []string{"expected"},
			unexpected: []string{"z"},
			expected:   nil,
		},
		{
			name:       "picks the closest missing key",
			missing:    []string{"expected", "exported"},
			unexpected: []string{"expcted"},
			expected:   []Suggestion{{Unexpected: "expcted", Missing: "expected"}},
		},
		{
			name:       "multiple typo pairs keep unexpected order",
			missing:    []string{"name", "age"},
			unexpected: []string{"agee", "naame"},
			expected: []Suggestion{
				{Unexpected: "agee", Missing: "age"},
				{Unexpected: "naame", Missing: "name"},
			},
		},
		{
			name:       "no missing keys",
			missing:    nil,
			unexpected: []string{"agee"},
			expected:   nil,
		},
		{
			name:       "similarity at the threshold is rejected",
			missing:    []string{"abcde"},
			unexpected: []string{"abcxy"}, // distance 2 of 5, similarity exactly 0.6
			expected:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PairTypos(tt.missing, tt.unexpected))
		})
	}
}
