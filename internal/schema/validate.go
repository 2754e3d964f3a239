// Package schema validates that every record in a case list shares the
// first record's key set, failing fast at the first divergent record
// with typo suggestions for likely misspellings.
package schema

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"eachcase/internal/diagnostic"
	"eachcase/internal/match"
	"eachcase/record"
)

// Validate compares each record's key set against the first record's.
// The template argument is only diagnostic context. Lists of length 0 or
// 1 always pass. Key order does not matter; only set membership does.
func Validate(records []*record.Record, template string) error {
	if len(records) < 2 {
		return nil
	}

	reference := records[0].Keys()

	referenceSet := make(map[string]struct{}, len(reference))
	for _, k := range reference {
		referenceSet[k] = struct{}{}
	}

	for i := 1; i < len(records); i++ {
		actual := records[i].Keys()

		var missing, unexpected []string

		for _, k := range reference {
			if !records[i].Has(k) {
				missing = append(missing, k)
			}
		}

		for _, k := range actual {
			if _, ok := referenceSet[k]; !ok {
				unexpected = append(unexpected, k)
			}
		}

		if len(missing) > 0 || len(unexpected) > 0 {
			return inconsistency(i, reference, actual, missing, unexpected, template)
		}
	}

	return nil
}

// inconsistency builds the fail-fast consistency error for one divergent
// record.
func inconsistency(index int, expected, actual, missing, unexpected []string, template string) error {
	var parts []string

	if len(missing) > 0 {
		parts = append(parts, "missing "+quoteJoin(missing))
	}

	if len(unexpected) > 0 {
		parts = append(parts, "unexpected "+quoteJoin(unexpected))
	}

	msg := fmt.Sprintf("key set differs from the first record's: %s\nexpected keys: %s\nactual keys:   %s",
		strings.Join(parts, "; "), quoteJoin(expected), quoteJoin(actual))

	if diff := keyDiff(expected, actual); diff != "" {
		msg += "\n" + diff
	}

	return diagnostic.New("inconsistent_record", "%s", msg).
		WithRecord(index).
		WithTemplate(template).
		WithSuggestions(suggestions(missing, unexpected)...)
}

// suggestions prefers typo pairings; generic add/remove hints only
// appear when no key pair looks like a misspelling.
func suggestions(missing, unexpected []string) []string {
	if pairs := match.PairTypos(missing, unexpected); len(pairs) > 0 {
		hints := make([]string, len(pairs))
		for i, p := range pairs {
			hints[i] = fmt.Sprintf("Did you mean '%s' instead of '%s'?", p.Missing, p.Unexpected)
		}

		return hints
	}

	var hints []string

	if len(missing) > 0 {
		hints = append(hints, fmt.Sprintf("Add %s %s to the record.", property(missing), quoteJoin(missing)))
	}

	if len(unexpected) > 0 {
		hints = append(hints, fmt.Sprintf("Remove %s %s from the record.", property(unexpected), quoteJoin(unexpected)))
	}

	return hints
}

// keyDiff renders a unified diff of the two key lists, one key per line.
func keyDiff(expected, actual []string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(strings.Join(expected, "\n") + "\n"),
		B:        difflib.SplitLines(strings.Join(actual, "\n") + "\n"),
		FromFile: "expected keys",
		ToFile:   "actual keys",
		Context:  2,
	})
	if err != nil {
		return ""
	}

	return strings.TrimRight(diff, "\n")
}

func quoteJoin(keys []string) string {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = "'" + k + "'"
	}

	return strings.Join(quoted, ", ")
}

func property(keys []string) string {
	if len(keys) == 1 {
		return "property"
	}

	return "properties"
}
