package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/toon-format/toon-go/encode"
	"github.com/toon-format/toon-go/format"
	"github.com/toon-format/toon-go/parse"

	"github.com/scott-cotton/cli"
)

func fmtDocs(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if !cfg.Write && !cfg.List {
		return convertFiles(cfg.MainConfig, cc, args, format.ToonFormat, format.ToonFormat)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: -l and -w need file arguments", cli.ErrUsage)
	}
	for _, file := range args {
		if err := fmtFile(cfg, cc, file); err != nil {
			return err
		}
	}
	return nil
}

func fmtFile(cfg *FmtConfig, cc *cli.Context, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", file, err)
	}
	out, err := fmtDoc(cfg.MainConfig, data)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	if bytes.Equal(data, out) {
		return nil
	}
	if cfg.List {
		fmt.Fprintln(cc.Out, file)
	}
	if !cfg.Write {
		return nil
	}
	st, err := os.Stat(file)
	if err != nil {
		return err
	}
	if err := os.WriteFile(file, out, st.Mode().Perm()); err != nil {
		return fmt.Errorf("could not rewrite %q: %w", file, err)
	}
	theLog.Info("rewrote", "file", file)
	return nil
}

// fmtDoc canonicalizes a toon file: each "---"-separated document is
// decoded and re-encoded, and non-empty output gets a trailing
// newline.
func fmtDoc(cfg *MainConfig, data []byte) ([]byte, error) {
	docs := bytes.Split(data, []byte("\n---\n"))
	outDocs := make([][]byte, 0, len(docs))
	for i, doc := range docs {
		y, err := parse.Parse(doc, cfg.parseOpts()...)
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, err)
		}
		s, err := encode.String(y, cfg.plainEncOpts()...)
		if err != nil {
			return nil, fmt.Errorf("error encoding document %d: %w", i, err)
		}
		outDocs = append(outDocs, []byte(s))
	}
	out := bytes.Join(outDocs, []byte("\n---\n"))
	if len(out) > 0 {
		out = append(out, '\n')
	}
	return out, nil
}
