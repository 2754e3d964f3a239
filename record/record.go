// Package record defines the test-case record: an insertion-ordered
// string-keyed mapping of arbitrary values, plus display stringification
// for resolved placeholder values.
//
// Key capabilities:
//   - Ordered keys, so validation diagnostics list keys the way the
//     author wrote them
//   - An explicit Undefined sentinel, distinct from nil and from an
//     absent key
//   - Safe stringification with a fallback that tolerates circular and
//     otherwise non-serializable values
package record

import "sort"

// Record is one test case's data. Keys keep insertion order; setting an
// existing key overwrites its value but keeps its original position.
type Record struct {
	keys []string
	vals map[string]any
}

// New creates an empty record.
func New() *Record {
	return &Record{vals: map[string]any{}}
}

// FromMap builds a record from a plain map. Go maps carry no order, so
// keys are sorted for deterministic diagnostics and formatting.
func FromMap(m map[string]any) *Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	r := New()
	for _, k := range keys {
		r.Set(k, m[k])
	}

	return r
}

// FromPairs builds a record from alternating key, value arguments.
// A trailing key without a value is dropped.
func FromPairs(pairs ...any) *Record {
	r := New()

	for i := 0; i+1 < len(pairs); i += 2 {
		k, ok := pairs[i].(string)
		if !ok {
			continue
		}

		r.Set(k, pairs[i+1])
	}

	return r
}

// Set stores a value under key. Last write wins; the key keeps the
// position of its first occurrence.
func (r *Record) Set(key string, value any) *Record {
	if _, ok := r.vals[key]; !ok {
		r.keys = append(r.keys, key)
	}

	r.vals[key] = value

	return r
}

// Get returns the value stored under key and whether the key is present.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.vals[key]
	return ok
}

// Keys returns the record's keys in insertion order. The returned slice
// is a copy.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)

	return keys
}

// Len returns the number of keys.
func (r *Record) Len() int {
	return len(r.keys)
}

// undefinedValue is the type of the Undefined sentinel.
type undefinedValue struct{}

// Undefined marks a value that is present but undefined. A resolved path
// ending at Undefined renders as the literal text "undefined"; an absent
// path leaves its placeholder untouched.
var Undefined undefinedValue

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefinedValue)
	return ok
}
