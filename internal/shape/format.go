package shape

//go:generate go tool stringer -type=Format -output=format_string.go

// Format classifies how a case list encodes its records.
type Format int

const (
	_ Format = iota // skip zero value, use it as a default (invalid) value for Format

	// Object means every list element is already a record.
	Object
	// Table means the first element is a header-name row and subsequent
	// elements are positional value rows.
	Table
)
