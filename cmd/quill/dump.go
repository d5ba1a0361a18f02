package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/quill-lang/go-quill/debug"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		root, err := cfg.loadTree(arg)
		if err != nil {
			return err
		}
		if debug.Parse() {
			debug.Logf("dump %s:\n%v\n", arg, root)
		}
		if err := cfg.writeTree(cc.Out, root); err != nil {
			return fmt.Errorf("error writing tree of %s: %w", arg, err)
		}
	}
	return nil
}
