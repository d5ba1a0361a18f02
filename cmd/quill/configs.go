package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/quill-lang/go-quill/render"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='render trees with color'"`
	Indent  int  `cli:"name=indent desc='spaces per tree level, 0 renders one line'"`
	J       bool `cli:"name=j aliases=json desc='output trees as JSON'"`
	Y       bool `cli:"name=y aliases=yaml desc='output trees as YAML'"`
	Resolve bool `cli:"name=resolve desc='resolve identifiers before output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) renderOpts(w io.Writer) []render.RenderOption {
	res := []render.RenderOption{render.Indent(cfg.Indent)}
	if cfg.Color {
		return append(res, render.WithColors(render.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, render.WithColors(render.NewColors()))
	}
	return res
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type TokensConfig struct {
	*MainConfig
	Tokens *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig
	File bool `cli:"name=f desc='patch arg is a file path'"`

	Patch *cli.Command
}

type ResolveConfig struct {
	*MainConfig
	Res *cli.Command
}
