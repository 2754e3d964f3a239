// Command eachcase previews data-driven test expansion: it loads a case
// fixture, runs the same detect, normalize, validate, and format
// pipeline the library runs at registration time, and prints the test
// names a template would generate. Nothing is executed; this is a
// dry run for checking fixtures and templates before wiring them into a
// suite.
//
// Usage:
//
//	eachcase -f cases.yaml -t '$a + $b = $expected'
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"eachcase"
	"eachcase/fixture"
	"eachcase/record"
)

var (
	indexStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	countStyle = lipgloss.NewStyle().Bold(true)
)

func main() {
	var (
		file  = flag.String("f", "", "fixture file (.yaml, .yml, or .json)")
		tpl   = flag.String("t", "", "name template, e.g. '$a + $b = $expected'")
		plain = flag.Bool("plain", false, "disable styled output")
	)

	flag.Parse()

	if *file == "" || *tpl == "" {
		fmt.Fprintln(os.Stderr, "usage: eachcase -f <fixture> -t <template> [-plain]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(os.Stdout, *file, *tpl, *plain); err != nil {
		fmt.Fprintln(os.Stderr, "eachcase:", err)
		os.Exit(1)
	}
}

func run(out *os.File, file, tpl string, plain bool) error {
	list, err := fixture.Load(file)
	if err != nil {
		return err
	}

	names, err := expandNames(tpl, list)
	if err != nil {
		return err
	}

	for i, name := range names {
		if plain {
			fmt.Fprintf(out, "%4d  %s\n", i, name)
			continue
		}

		fmt.Fprintf(out, "%s  %s\n", indexStyle.Render(fmt.Sprintf("%4d", i)), nameStyle.Render(name))
	}

	summary := fmt.Sprintf("%d test case(s)", len(names))
	if !plain {
		summary = countStyle.Render(summary)
	}

	fmt.Fprintln(out, summary)

	return nil
}

// expandNames drives the core with a register primitive that only
// collects names; bodies never run in a preview.
func expandNames(tpl string, list []any) ([]string, error) {
	var names []string

	runner := eachcase.New(func(name string, _ func(host any) any) {
		names = append(names, name)
	})

	set, err := runner.Case(tpl, func(any, *record.Record) any { return nil })
	if err != nil {
		return nil, err
	}

	if err := set.Where(list); err != nil {
		return nil, err
	}

	return names, nil
}
