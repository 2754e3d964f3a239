package format

import (
	"strconv"

	"eachcase/record"
)

// segment is one step of a property path. An indexed segment came from
// bracket notation and carries the parsed index alongside the raw text,
// so it can address both sequences and string-keyed mappings.
type segment struct {
	name    string
	index   int
	indexed bool
}

// resolve walks the record along the path. The second result
// distinguishes "path found" (value may still be Undefined) from "path
// not found"; callers render Undefined as text but leave not-found
// placeholders untouched.
func resolve(rec *record.Record, path []segment) (any, bool) {
	var current any = rec

	for _, seg := range path {
		next, ok := step(current, seg)
		if !ok {
			return nil, false
		}

		current = next
	}

	return current, true
}

// step descends one segment into the current value. nil, Undefined, and
// scalar or opaque values have nothing to descend into.
func step(current any, seg segment) (any, bool) {
	switch c := current.(type) {
	case *record.Record:
		return c.Get(seg.name)
	case map[string]any:
		v, ok := c[seg.name]
		return v, ok
	case []any:
		if !seg.indexed || seg.index < 0 || seg.index >= len(c) {
			return nil, false
		}

		return c[seg.index], true
	default:
		return nil, false
	}
}

// parsePath scans a property path starting at template[start], which
// must be an identifier start character. It returns the parsed segments
// and the offset just past the path.
func parsePath(template string, start int) ([]segment, int) {
	name, pos := scanIdent(template, start)
	segments := []segment{{name: name}}

	for pos < len(template) {
		switch template[pos] {
		case '.':
			if pos+1 >= len(template) || !isIdentStart(template[pos+1]) {
				return segments, pos
			}

			var next string
			next, pos = scanIdent(template, pos+1)
			segments = append(segments, segment{name: next})
		case '[':
			digits, after, ok := scanIndex(template, pos)
			if !ok {
				return segments, pos
			}

			idx, _ := strconv.Atoi(digits)
			segments = append(segments, segment{name: digits, index: idx, indexed: true})
			pos = after
		default:
			return segments, pos
		}
	}

	return segments, pos
}

// scanIdent consumes an identifier starting at start and returns it with
// the offset just past it.
func scanIdent(template string, start int) (string, int) {
	pos := start
	for pos < len(template) && isIdentChar(template[pos]) {
		pos++
	}

	return template[start:pos], pos
}

// scanIndex consumes a "[digits]" group starting at the opening bracket.
func scanIndex(template string, start int) (digits string, after int, ok bool) {
	pos := start + 1

	begin := pos
	for pos < len(template) && isDigit(template[pos]) {
		pos++
	}

	if pos == begin || pos >= len(template) || template[pos] != ']' {
		return "", start, false
	}

	return template[begin:pos], pos + 1, true
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
