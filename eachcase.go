// Package eachcase expands one test definition into many: a name
// template plus a list of test-case records registers one independently
// named test per record with the host test framework.
//
// The construction surface is a small family of entry points built from
// New, parameterized only by the registration primitive they close over.
// For the standard library host, see For and Skipped.
//
// Case lists come in two shapes. Object shape is a list of records:
//
//	runner.Case("$a + $b = $expected", body)
//	set.Where([]any{
//		map[string]any{"a": 2, "b": 3, "expected": 5},
//	})
//
// Table shape starts with a header row followed by positional rows:
//
//	set.Where([]any{
//		[]any{"a", "b", "expected"},
//		[]any{2, 3, 5},
//	})
package eachcase

import (
	"reflect"

	"eachcase/internal/diagnostic"
	"eachcase/internal/format"
	"eachcase/internal/schema"
	"eachcase/internal/shape"
	"eachcase/record"
)

// Body is a user test body. It receives the host framework's invocation
// context (for the standard library binding, the subtest's *testing.T)
// and the one record this case was expanded from. The returned value is
// forwarded to the host unchanged, preserving whatever asynchronous
// completion convention the host uses.
type Body func(host any, rec *record.Record) any

// Register declares one test with the host framework. The core calls it
// once per expanded record; focus and skip semantics belong entirely to
// the primitive.
type Register func(name string, run func(host any) any)

// Runner builds case sets against one registration primitive.
type Runner struct {
	register Register
}

// New returns a runner that registers expanded cases through register.
func New(register Register) *Runner {
	return &Runner{register: register}
}

// CaseSet is one validated (template, body) pair awaiting its records.
type CaseSet struct {
	runner   *Runner
	template string
	body     Body
}

// Case validates the template and body eagerly and returns the case set.
// An empty template or nil body is an immediate error, not one deferred
// to Where.
func (r *Runner) Case(template string, body Body) (*CaseSet, error) {
	if template == "" {
		return nil, diagnostic.New("empty_template", "name template must be a non-empty string")
	}

	if body == nil {
		return nil, diagnostic.New("missing_body", "test body must be a function, got nil").
			WithTemplate(template)
	}

	if r.register == nil {
		return nil, diagnostic.New("missing_register", "runner has no registration primitive").
			WithTemplate(template)
	}

	return &CaseSet{runner: r, template: template, body: body}, nil
}

// Where expands the case list and registers one test per record, in
// list order. An empty list registers nothing and is not an error. Any
// structural problem aborts before the first registration; there is no
// partial registration of a valid prefix.
func (c *CaseSet) Where(records any) error {
	list, err := c.caseList(records)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		return nil
	}

	recs, err := c.expand(list)
	if err != nil {
		return err
	}

	if err := schema.Validate(recs, c.template); err != nil {
		return err
	}

	for i, rec := range recs {
		name := format.Name(c.template, rec, i)
		body, bound := c.body, rec

		c.runner.register(name, func(host any) any {
			return body(host, bound)
		})
	}

	return nil
}

// expand runs shape detection and, for table input, normalization.
func (c *CaseSet) expand(list []any) ([]*record.Record, error) {
	detected, err := shape.Detect(list)
	if err != nil {
		return nil, c.withTemplate(err)
	}

	var recs []*record.Record

	if detected == shape.Table {
		recs, err = shape.Normalize(list)
	} else {
		recs, err = shape.Records(list)
	}

	if err != nil {
		return nil, c.withTemplate(err)
	}

	return recs, nil
}

// caseList coerces the Where argument into a []any, accepting the
// common concrete slice types directly and any other slice kind through
// reflection. Everything else is a shape error naming the received type.
func (c *CaseSet) caseList(records any) ([]any, error) {
	switch t := records.(type) {
	case nil:
		return nil, diagnostic.New("invalid_case_list", "case list must be a slice, got nil").
			WithTemplate(c.template)
	case []any:
		return t, nil
	case []map[string]any:
		list := make([]any, len(t))
		for i, m := range t {
			list[i] = m
		}

		return list, nil
	case []*record.Record:
		list := make([]any, len(t))
		for i, r := range t {
			list[i] = r
		}

		return list, nil
	case [][]any:
		list := make([]any, len(t))
		for i, row := range t {
			list[i] = row
		}

		return list, nil
	}

	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, diagnostic.New("invalid_case_list", "case list must be a slice, got %T", records).
			WithTemplate(c.template)
	}

	list := make([]any, v.Len())
	for i := range list {
		list[i] = v.Index(i).Interface()
	}

	return list, nil
}

func (c *CaseSet) withTemplate(err error) error {
	if d, ok := err.(*diagnostic.Diagnostic); ok && d.Template == "" {
		return d.WithTemplate(c.template)
	}

	return err
}
