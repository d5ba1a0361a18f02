package parse

import (
	"github.com/quill-lang/go-quill/ast"
	"github.com/quill-lang/go-quill/ident"
	"github.com/quill-lang/go-quill/token"
)

type parseOpts struct {
	idents    *ident.Table
	positions map[*ast.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// ParseIdents interns identifier names in the given table instead of a
// parse-local one. Pass the same table to every file of a compilation
// unit so name equality stays pointer equality across files.
func ParseIdents(t *ident.Table) ParseOption {
	return func(o *parseOpts) { o.idents = t }
}

// ParsePositions records the source position of each produced node in
// m. The tree itself carries no position information.
func ParsePositions(m map[*ast.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ast.Node]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.idents == nil {
		pOpts.idents = ident.NewTable()
	}
	return pOpts
}
