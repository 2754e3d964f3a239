package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eachcase/internal/diagnostic"
)

func TestNormalize_RoundTrip(t *testing.T) {
	list := []any{
		[]any{"a", "b", "expected"},
		[]any{1, 2, 3},
		[]any{4, 5, 9},
	}

	records, err := Normalize(list)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{"a", "b", "expected"}, records[0].Keys())

	v, _ := records[0].Get("expected")
	assert.Equal(t, 3, v)

	v, _ = records[1].Get("a")
	assert.Equal(t, 4, v)
}

func TestNormalize_ZeroDataRows(t *testing.T) {
	records, err := Normalize([]any{[]any{"a", "b"}})

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestNormalize_DuplicateHeaderLastWins(t *testing.T) {
	records, err := Normalize([]any{
		[]any{"a", "a"},
		[]any{1, 2},
	})

	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, []string{"a"}, records[0].Keys())

	v, _ := records[0].Get("a")
	assert.Equal(t, 2, v)
}

func TestNormalize_Errors(t *testing.T) {
	tests := []struct {
		name         string
		list         []any
		expectedCode string
		contains     []string
	}{
		{
			name:         "no header row",
			list:         nil,
			expectedCode: "missing_header",
		},
		{
			name:         "non-sequence header row",
			list:         []any{map[string]any{"a": 1}},
			expectedCode: "missing_header",
		},
		{
			name:         "empty header row",
			list:         []any{[]any{}},
			expectedCode: "empty_header",
		},
		{
			name:         "non-string header entries are named",
			list:         []any{[]any{"a", 7, true}},
			expectedCode: "invalid_header",
			contains:     []string{"7 (int)", "true (bool)"},
		},
		{
			name:         "non-sequence row",
			list:         []any{[]any{"a"}, "not a row"},
			expectedCode: "invalid_row",
			contains:     []string{"row 1", "string"},
		},
		{
			name:         "row length mismatch echoes both sides",
			list:         []any{[]any{"a", "b"}, []any{1}},
			expectedCode: "row_length_mismatch",
			contains:     []string{"row 1", "1 values for 2 headers", "[a b]", "[1]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.list)

			require.Error(t, err)
			assert.Equal(t, tt.expectedCode, diagnostic.CodeOf(err))

			for _, want := range tt.contains {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
