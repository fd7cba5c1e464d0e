package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/toon-format/toon-go/encode"
	"github.com/toon-format/toon-go/format"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return convertFiles(cfg.MainConfig, cc, args, format.ToonFormat, format.ToonFormat)
}

// convertFiles reads each file (stdin when files is empty), decodes it
// in the resolved input format, and writes it back out in the resolved
// output format. Documents inside a file are separated by "---" lines
// and converted independently.
func convertFiles(cfg *MainConfig, cc *cli.Context, files []string, natIn, natOut format.Format) error {
	out := cfg.outputFormat(natOut)
	if len(files) == 0 {
		return convertReader(cfg, cc.Out, cc.In, cfg.inputFormat("-", natIn), out)
	}
	for _, file := range files {
		if err := convertFile(cfg, cc, file, cfg.inputFormat(file, natIn), out); err != nil {
			return err
		}
	}
	return nil
}

func convertFile(cfg *MainConfig, cc *cli.Context, file string, in, out format.Format) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := convertReader(cfg, cc.Out, f, in, out); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func convertReader(cfg *MainConfig, w io.Writer, r io.Reader, in, out format.Format) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	docs := bytes.Split(data, []byte("\n---\n"))
	n := len(docs)
	for i, doc := range docs {
		y, err := format.Decode(in, doc, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		var encOpts []encode.EncodeOption
		if out.IsToon() {
			encOpts = cfg.encOpts(w)
		}
		res, err := format.Encode(out, y, encOpts...)
		if err != nil {
			return fmt.Errorf("error encoding document %d: %w", i, err)
		}
		if err := writeDoc(w, res); err != nil {
			return fmt.Errorf("error writing document %d: %w", i, err)
		}
		if i < n-1 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return fmt.Errorf("error writing document %d: %w", i, err)
			}
		}
	}
	return nil
}

// writeDoc writes a rendered document and terminates its last line.
// Toon and indented JSON end without a newline, yaml with one, and an
// empty document stays empty.
func writeDoc(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) == 0 || data[len(data)-1] == '\n' {
		return nil
	}
	_, err := w.Write([]byte("\n"))
	return err
}
