package eachcase

import "testing"

// For binds a runner to t: every expanded case becomes a subtest
// registered with t.Run, and any expansion error fails t immediately.
func For(t *testing.T) *T {
	return &T{t: t, runner: New(subtestRegister(t))}
}

// Skipped binds a runner whose expanded cases register as subtests that
// skip instead of running their bodies. The case list still goes through
// the full detection and validation pipeline, so malformed data fails
// even a skipped block.
func Skipped(t *testing.T) *T {
	return &T{t: t, runner: New(func(name string, _ func(host any) any) {
		t.Run(name, func(t *testing.T) {
			t.Skip("case skipped")
		})
	})}
}

func subtestRegister(t *testing.T) Register {
	return func(name string, run func(host any) any) {
		t.Run(name, func(t *testing.T) {
			run(t)
		})
	}
}

// T is a runner bound to a *testing.T. It trades the error returns of
// Runner and CaseSet for immediate fatal failures, which is what a test
// suite wants from malformed case data.
type T struct {
	t      *testing.T
	runner *Runner
}

// Case validates the template and body, failing t on the spot when
// either is invalid.
func (b *T) Case(template string, body Body) *BoundSet {
	b.t.Helper()

	set, err := b.runner.Case(template, body)
	if err != nil {
		b.t.Fatal(err)
	}

	return &BoundSet{t: b.t, set: set}
}

// BoundSet is a CaseSet whose Where failures are fatal to the bound test.
type BoundSet struct {
	t   *testing.T
	set *CaseSet
}

// Where expands records into subtests. Any structural error aborts the
// whole batch before a single subtest is registered.
func (s *BoundSet) Where(records any) {
	s.t.Helper()

	if err := s.set.Where(records); err != nil {
		s.t.Fatal(err)
	}
}
