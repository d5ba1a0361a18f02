package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/quill-lang/go-quill/treediff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := cfg.loadTree(args[0])
	if err != nil {
		return err
	}
	to, err := cfg.loadTree(args[1])
	if err != nil {
		return err
	}
	edits := treediff.Diff(from, to)
	if _, err := fmt.Fprint(cc.Out, treediff.Format(edits)); err != nil {
		return err
	}
	if !treediff.Equal(from, to) {
		return cli.ExitCodeErr(1)
	}
	return nil
}
