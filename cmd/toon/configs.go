package main

import (
	"fmt"
	"io"
	"os"

	"github.com/toon-format/toon-go/encode"
	"github.com/toon-format/toon-go/format"
	"github.com/toon-format/toon-go/parse"
	"github.com/toon-format/toon-go/token"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Strict bool `cli:"name=strict desc='reject count mismatches, duplicate keys, and loose indentation'"`
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent int  `cli:"name=indent desc='spaces per nesting level when encoding'"`
	Marker bool `cli:"name=marker desc='write array headers with a length marker, as in [#3]'"`
	Fold   bool `cli:"name=fold desc='fold single-field object chains into dotted keys'"`

	FoldDepth int `cli:"name=foldDepth desc='longest key chain -fold may produce, 0 for no cap'"`

	Delim  token.Delim
	Expand parse.ExpandMode

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) delimOpt(_ *cli.Context, v string) (any, error) {
	d, err := token.ParseDelim(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Delim = d
	return d, nil
}

func (cfg *MainConfig) expandOpt(_ *cli.Context, v string) (any, error) {
	m, err := parse.ParseExpandMode(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Expand = m
	return m, nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseStrict(cfg.Strict),
		parse.ParseExpandPaths(cfg.Expand),
	}
}

// plainEncOpts are the encode options shared by every output path,
// colorized or not. Rewriting files in place must use these directly
// so ANSI sequences never land on disk.
func (cfg *MainConfig) plainEncOpts() []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.EncodeIndent(cfg.Indent),
		encode.EncodeDelim(cfg.Delim),
		encode.LengthMarker(cfg.Marker),
		encode.FoldKeys(cfg.Fold),
		encode.FoldDepth(cfg.FoldDepth),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := cfg.plainEncOpts()
	if cfg.colorOn(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) colorOn(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	// cli has no tri-state bools, so an explicit -color=false has to
	// be recovered from the raw opt to win over terminal detection.
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// inputFormat resolves the format of an input: an explicit -I wins,
// then the path suffix, then the subcommand's natural input format.
func (cfg *MainConfig) inputFormat(path string, natural format.Format) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := format.DetectPath(path); ok {
		return f
	}
	return natural
}

func (cfg *MainConfig) outputFormat(natural format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return natural
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type EncodeConfig struct {
	*MainConfig

	Encode *cli.Command
}

type DecodeConfig struct {
	*MainConfig

	Decode *cli.Command
}

type FmtConfig struct {
	*MainConfig

	List  bool `cli:"name=l desc='list files whose formatting differs'"`
	Write bool `cli:"name=w desc='rewrite files in place instead of printing'"`

	Fmt *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
