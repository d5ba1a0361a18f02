package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/goccy/go-yaml"

	"github.com/quill-lang/go-quill/ast"
	"github.com/quill-lang/go-quill/parse"
	"github.com/quill-lang/go-quill/render"
	"github.com/quill-lang/go-quill/resolve"
)

func quillMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(arg)
}

// loadTree parses a source argument, resolving identifiers when the
// -resolve flag is set.
func (cfg *MainConfig) loadTree(arg string) (*ast.Node, error) {
	d, err := readArg(arg)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	root, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", arg, err)
	}
	if cfg.Resolve {
		if err := resolve.Resolve(root); err != nil {
			return nil, fmt.Errorf("error resolving %s: %w", arg, err)
		}
	}
	return root, nil
}

func (cfg *MainConfig) writeTree(w io.Writer, n *ast.Node) error {
	switch {
	case cfg.J:
		d, err := json.MarshalIndent(n, "", "  ")
		if err != nil {
			return err
		}
		d = append(d, '\n')
		_, err = w.Write(d)
		return err
	case cfg.Y:
		d, err := json.Marshal(n)
		if err != nil {
			return err
		}
		var v any
		if err := json.Unmarshal(d, &v); err != nil {
			return err
		}
		yd, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(yd)
		return err
	default:
		if err := render.Render(n, w, cfg.renderOpts(w)...); err != nil {
			return err
		}
		_, err := w.Write([]byte("\n"))
		return err
	}
}
