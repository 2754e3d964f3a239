package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eachcase/internal/diagnostic"
	"eachcase/record"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		list     []any
		expected Format
	}{
		{
			name:     "empty list defaults to object",
			list:     nil,
			expected: Object,
		},
		{
			name:     "all-string first row is a table header",
			list:     []any{[]any{"a", "b"}, []any{1, 2}},
			expected: Table,
		},
		{
			name:     "single header row is still a table",
			list:     []any{[]any{"a"}},
			expected: Table,
		},
		{
			name:     "mapping first element is object",
			list:     []any{map[string]any{"a": 1}},
			expected: Object,
		},
		{
			name:     "record first element is object",
			list:     []any{record.New().Set("a", 1)},
			expected: Object,
		},
		{
			name:     "non-string sequence entries degrade to object",
			list:     []any{[]any{1, 2}},
			expected: Object,
		},
		{
			name:     "mixed sequence entries degrade to object",
			list:     []any{[]any{"a", 2}},
			expected: Object,
		},
		{
			name:     "scalar first element is object",
			list:     []any{42},
			expected: Object,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.list)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetect_EmptyFirstRowIsAmbiguous(t *testing.T) {
	_, err := Detect([]any{[]any{}})

	require.Error(t, err)
	assert.Equal(t, "ambiguous_format", diagnostic.CodeOf(err))
}

func TestRecords(t *testing.T) {
	list := []any{
		map[string]any{"a": 1},
		record.New().Set("a", 2),
	}

	records, err := Records(list)
	require.NoError(t, err)
	require.Len(t, records, 2)

	v, _ := records[0].Get("a")
	assert.Equal(t, 1, v)

	v, _ = records[1].Get("a")
	assert.Equal(t, 2, v)
}

func TestRecords_NonRecordElement(t *testing.T) {
	_, err := Records([]any{map[string]any{"a": 1}, "oops"})

	require.Error(t, err)
	assert.Equal(t, "invalid_record", diagnostic.CodeOf(err))
	assert.Contains(t, err.Error(), "string")
	assert.Contains(t, err.Error(), "record 1")
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "Object", Object.String())
	assert.Equal(t, "Table", Table.String())
}
