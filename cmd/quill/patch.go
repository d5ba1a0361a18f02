package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/quill-lang/go-quill/astpatch"
	"github.com/quill-lang/go-quill/debug"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	patchData := []byte(args[0])
	if cfg.File {
		patchData, err = readArg(args[0])
		if err != nil {
			return fmt.Errorf("error reading patch %s: %w", args[0], err)
		}
	}
	p, err := astpatch.Decode(patchData)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		root, err := cfg.loadTree(arg)
		if err != nil {
			return err
		}
		if debug.Patch() {
			debug.Logf("patching %s:\n%v\n", arg, root)
		}
		res, err := p.Apply(root)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := cfg.writeTree(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
