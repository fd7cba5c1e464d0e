package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/toon-format/toon-go/encode"
	"github.com/toon-format/toon-go/format"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diffDocs(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := canonicalDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := canonicalDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if a == b {
		return nil
	}
	if err := printDiff(cfg.MainConfig, cc.Out, a, b); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// canonicalDoc loads one document in any input format and renders it
// as plain toon, so the diff ignores formatting and input-format
// differences. The result always ends with a newline.
func canonicalDoc(cfg *MainConfig, cc *cli.Context, path string) (string, error) {
	y, err := loadNode(cfg, cc, path, format.ToonFormat)
	if err != nil {
		return "", fmt.Errorf("error decoding %s: %w", path, err)
	}
	s, err := encode.String(y, cfg.plainEncOpts()...)
	if err != nil {
		return "", fmt.Errorf("error encoding %s: %w", path, err)
	}
	return s + "\n", nil
}

func printDiff(cfg *MainConfig, w io.Writer, a, b string) error {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	add, del := diffPainters(cfg.colorOn(w))
	for _, d := range diffs {
		prefix := "  "
		paint := func(s string) string { return s }
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix, paint = "+ ", add
		case diffpatch.DiffDelete:
			prefix, paint = "- ", del
		}
		for _, line := range splitLines(d.Text) {
			if _, err := io.WriteString(w, paint(prefix+line)+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// splitLines splits line-mode diff text, whose segments always end
// with a newline because canonicalDoc terminates both inputs.
func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func diffPainters(on bool) (add, del func(string) string) {
	if !on {
		id := func(s string) string { return s }
		return id, id
	}
	g := color.New(color.FgGreen)
	g.EnableColor()
	r := color.New(color.FgRed)
	r.EnableColor()
	return func(s string) string { return g.Sprint(s) },
		func(s string) string { return r.Sprint(s) }
}
