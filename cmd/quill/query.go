package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/quill-lang/go-quill/debug"
	"github.com/quill-lang/go-quill/query"
)

func queryRun(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires a predicate argument", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
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
		matches, err := q.Select(root)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, q, err)
		}
		if debug.Query() {
			debug.Logf("query %s on %s: %d matches\n", q, arg, len(matches))
		}
		for _, m := range matches {
			if err := cfg.writeTree(cc.Out, m); err != nil {
				return err
			}
		}
	}
	return nil
}
