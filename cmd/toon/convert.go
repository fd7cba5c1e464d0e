package main

import (
	"github.com/toon-format/toon-go/format"

	"github.com/scott-cotton/cli"
)

func encodeDocs(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	return convertFiles(cfg.MainConfig, cc, args, format.JSONFormat, format.ToonFormat)
}

func decodeDocs(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decode.Parse(cc, args)
	if err != nil {
		return err
	}
	return convertFiles(cfg.MainConfig, cc, args, format.ToonFormat, format.JSONFormat)
}
