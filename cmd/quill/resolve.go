package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/quill-lang/go-quill/debug"
	"github.com/quill-lang/go-quill/parse"
	"github.com/quill-lang/go-quill/resolve"
)

func resolveRun(cfg *ResolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Res.Parse(cc, args)
	if err != nil {
		cfg.Res.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		root, err := parse.Parse(d)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		if err := resolve.Resolve(root); err != nil {
			return fmt.Errorf("error resolving %s: %w", arg, err)
		}
		if debug.Resolve() {
			debug.Logf("resolve %s:\n%v\n", arg, root)
		}
		if err := cfg.writeTree(cc.Out, root); err != nil {
			return fmt.Errorf("error writing tree of %s: %w", arg, err)
		}
	}
	return nil
}
