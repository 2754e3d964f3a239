package shape

import (
	"eachcase/internal/diagnostic"
	"eachcase/record"
)

// Detect classifies a case list by inspecting its first element.
//
// A first element that is a sequence of strings is a table header row.
// An empty first sequence is ambiguous: it could be an empty header row
// or an empty data row, so it is rejected. Any other first element,
// including a non-empty sequence of non-strings, classifies the list as
// object shaped; record conversion reports the concrete problem later.
// An empty list is object shaped by convention (nothing downstream will
// use the answer).
func Detect(list []any) (Format, error) {
	if len(list) == 0 {
		return Object, nil
	}

	first, ok := list[0].([]any)
	if !ok {
		return Object, nil
	}

	if len(first) == 0 {
		return 0, diagnostic.New("ambiguous_format",
			"cannot infer case list format: the first element is an empty sequence, which could be an empty header row or an empty data row")
	}

	for _, entry := range first {
		if _, ok := entry.(string); !ok {
			return Object, nil
		}
	}

	return Table, nil
}

// Records converts an object-shaped list into records. Elements may be
// *record.Record or map[string]any; anything else is a shape error
// naming the element's type.
func Records(list []any) ([]*record.Record, error) {
	records := make([]*record.Record, 0, len(list))

	for i, v := range list {
		switch t := v.(type) {
		case *record.Record:
			records = append(records, t)
		case map[string]any:
			records = append(records, record.FromMap(t))
		default:
			return nil, diagnostic.New("invalid_record",
				"case list element is not a record: expected a string-keyed mapping, got %T", v).
				WithRecord(i)
		}
	}

	return records, nil
}
