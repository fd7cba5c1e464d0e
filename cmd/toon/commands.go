package main

import (
	"github.com/toon-format/toon-go/token"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Indent: 2, Delim: token.Comma}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"from", "ifmt"},
			Description: "input format: toon/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"to", "ofmt"},
			Description: "output format: toon/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "d",
			Aliases:     []string{"delim"},
			Description: "array delimiter: comma, tab, pipe",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.delimOpt), "(delim)"),
		},
		&cli.Opt{
			Name:        "expand",
			Description: "dotted-key expansion when decoding: off, safe, always",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.expandOpt), "(mode)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "toon").
		WithSynopsis("toon [opts] command [opts] [files]").
		WithDescription("toon is a tool for working with token-oriented object notation.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return toonMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			EncodeCommand(cfg),
			DecodeCommand(cfg),
			FmtCommand(cfg),
			DiffCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view documents as colorized toon").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("encode").
		WithAliases("e", "en").
		WithSynopsis("encode [files]").
		WithDescription("encode json or yaml documents as toon").
		WithRun(func(cc *cli.Context, args []string) error {
			return encodeDocs(cfg, cc, args)
		})
	cfg.Encode = cmd
	return cmd
}

func DecodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DecodeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("decode").
		WithAliases("de").
		WithSynopsis("decode [files]").
		WithDescription("decode toon documents to json or yaml").
		WithRun(func(cc *cli.Context, args []string) error {
			return decodeDocs(cfg, cc, args)
		})
	cfg.Decode = cmd
	return cmd
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [-l] [-w] [files]").
		WithDescription("canonically format toon documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtDocs(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("di").
		WithSynopsis("diff a b").
		WithDescription("compare two documents by canonical toon form").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffDocs(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
