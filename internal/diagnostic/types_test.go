package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnostic_Error(t *testing.T) {
	err := New("row_length_mismatch", "row has %d values for %d headers", 2, 3)

	assert.Equal(t, "[row_length_mismatch] row has 2 values for 3 headers", err.Error())
}

func TestDiagnostic_ErrorWithContext(t *testing.T) {
	err := New("inconsistent_record", "key sets differ").
		WithRecord(1).
		WithTemplate("$a + $b").
		WithSuggestions("Did you mean 'age' instead of 'agee'?")

	got := err.Error()

	assert.Contains(t, got, "[inconsistent_record]")
	assert.Contains(t, got, "record 1:")
	assert.Contains(t, got, `(template: "$a + $b")`)
	assert.Contains(t, got, "\n  Did you mean 'age' instead of 'agee'?")
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, "empty_template", CodeOf(New("empty_template", "boom")))
	assert.Equal(t, "", CodeOf(assert.AnError))
	assert.Equal(t, "", CodeOf(nil))
}
