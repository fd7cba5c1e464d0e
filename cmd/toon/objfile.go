package main

import (
	"fmt"
	"io"
	"os"

	"github.com/toon-format/toon-go/format"
	"github.com/toon-format/toon-go/ir"

	"github.com/scott-cotton/cli"
)

func loadNode(cfg *MainConfig, cc *cli.Context, path string, natural format.Format) (*ir.Node, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return format.Decode(cfg.inputFormat(path, natural), d, cfg.parseOpts()...)
}
