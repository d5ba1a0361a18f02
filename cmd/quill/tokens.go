package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/quill-lang/go-quill/token"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		cfg.Tokens.Usage(cc, err)
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
		toks, err := token.Tokenize(d)
		if err != nil {
			return fmt.Errorf("error scanning %s: %w", arg, err)
		}
		for i := range toks {
			t := &toks[i]
			if _, err := fmt.Fprintf(cc.Out, "%s\t%s\t%q\n", t.Pos, t.Type, t.Text); err != nil {
				return err
			}
		}
	}
	return nil
}
