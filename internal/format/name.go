package format

import (
	"strconv"
	"strings"

	"eachcase/record"
)

// indexMarker is the reserved placeholder for the record's position in
// the case list. It is substituted before property paths are scanned, so
// a record key literally named "index" can never capture it.
const indexMarker = "$index"

// Name resolves a name template against one record and its zero-based
// position in the case list.
func Name(template string, rec *record.Record, index int) string {
	return substitutePaths(substituteIndex(template, index), rec)
}

// substituteIndex replaces word-boundary-delimited $index occurrences
// with the decimal index. "$indexOf" and similar longer identifiers are
// left alone. Single pass; substituted digits are never rescanned.
func substituteIndex(template string, index int) string {
	if !strings.Contains(template, indexMarker) {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	pos := 0
	for pos < len(template) {
		if template[pos] == '$' && strings.HasPrefix(template[pos:], indexMarker) {
			after := pos + len(indexMarker)
			if after >= len(template) || !isIdentChar(template[after]) {
				b.WriteString(strconv.Itoa(index))
				pos = after

				continue
			}
		}

		b.WriteByte(template[pos])
		pos++
	}

	return b.String()
}

// substitutePaths scans the template once for $path placeholders and
// replaces each resolved one with its value's display form. A
// placeholder whose path does not resolve is left untouched; a path that
// resolves to the Undefined sentinel renders as "undefined".
func substitutePaths(template string, rec *record.Record) string {
	var b strings.Builder
	b.Grow(len(template))

	pos := 0
	for pos < len(template) {
		c := template[pos]

		if c != '$' || pos+1 >= len(template) || !isIdentStart(template[pos+1]) {
			b.WriteByte(c)
			pos++

			continue
		}

		path, after := parsePath(template, pos+1)

		if value, found := resolve(rec, path); found {
			b.WriteString(record.Stringify(value))
		} else {
			b.WriteString(template[pos:after])
		}

		pos = after
	}

	return b.String()
}
