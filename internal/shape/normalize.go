package shape

import (
	"fmt"
	"strings"

	"eachcase/internal/diagnostic"
	"eachcase/record"
)

// Normalize converts a table-shaped list into one record per data row by
// zipping header names to row values positionally. A repeated header
// name keeps its first position and takes the later column's value,
// matching ordinary map-literal semantics. Zero data rows is valid and
// yields an empty record list.
func Normalize(list []any) ([]*record.Record, error) {
	if len(list) == 0 {
		return nil, diagnostic.New("missing_header", "table input has no header row")
	}

	headerRow, ok := list[0].([]any)
	if !ok {
		return nil, diagnostic.New("missing_header",
			"table input must start with a header row, got %T", list[0])
	}

	if len(headerRow) == 0 {
		return nil, diagnostic.New("empty_header", "table header row is empty")
	}

	headers := make([]string, len(headerRow))

	var badEntries []string

	for i, h := range headerRow {
		s, ok := h.(string)
		if !ok {
			badEntries = append(badEntries, fmt.Sprintf("%v (%T)", h, h))
			continue
		}

		headers[i] = s
	}

	if len(badEntries) > 0 {
		return nil, diagnostic.New("invalid_header",
			"table header entries must all be strings, got: %s", strings.Join(badEntries, ", "))
	}

	records := make([]*record.Record, 0, len(list)-1)

	for i, rowValue := range list[1:] {
		row, ok := rowValue.([]any)
		if !ok {
			return nil, diagnostic.New("invalid_row",
				"table row %d is not a sequence: got %T", i+1, rowValue)
		}

		if len(row) != len(headers) {
			return nil, diagnostic.New("row_length_mismatch",
				"table row %d has %d values for %d headers (headers: %v, row: %v)",
				i+1, len(row), len(headers), headers, row)
		}

		rec := record.New()
		for j, h := range headers {
			rec.Set(h, row[j])
		}

		records = append(records, rec)
	}

	return records, nil
}
