// Package treediff computes line diffs between the rendered forms of
// two quill trees.
//
// Each tree is rendered with one node per line, every distinct line is
// mapped to a rune, and the rune strings are diffed. The rune mapping
// keeps the diff core working on small inputs no matter how long the
// rendered lines are.
package treediff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/quill-lang/go-quill/ast"
	"github.com/quill-lang/go-quill/render"
)

type Op int

const (
	EqualOp Op = iota
	DeleteOp
	InsertOp
)

// Edit is one line of diff output. Line is a rendered tree line; Op
// says whether it is common, only in the old tree, or only in the new.
type Edit struct {
	Op   Op
	Line string
}

// Diff renders from and to and returns the line edits transforming one
// rendering into the other.
func Diff(from, to *ast.Node) []Edit {
	lineMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapLinesTo(lineMap, runeMap, from)
	toRunes := mapLinesTo(lineMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	var res []Edit
	for i := range diffs {
		diff := &diffs[i]
		var op Op
		switch diff.Type {
		case diffpatch.DiffDelete:
			op = DeleteOp
		case diffpatch.DiffInsert:
			op = InsertOp
		case diffpatch.DiffEqual:
			op = EqualOp
		}
		for _, r := range diff.Text {
			res = append(res, Edit{Op: op, Line: runeMap[r]})
		}
	}
	return res
}

// Equal reports whether the two trees render identically.
func Equal(from, to *ast.Node) bool {
	for _, e := range Diff(from, to) {
		if e.Op != EqualOp {
			return false
		}
	}
	return true
}

// Format writes edits in the usual one-line-per-edit form with ' ',
// '-' and '+' markers.
func Format(edits []Edit) string {
	buf := &strings.Builder{}
	for _, e := range edits {
		switch e.Op {
		case DeleteOp:
			buf.WriteString("-")
		case InsertOp:
			buf.WriteString("+")
		default:
			buf.WriteString(" ")
		}
		buf.WriteString(e.Line)
		buf.WriteString("\n")
	}
	return buf.String()
}

func mapLinesTo(m map[string]rune, im map[rune]string, n *ast.Node) []rune {
	lines := strings.Split(render.MustString(n, render.Indent(2)), "\n")
	rs := make([]rune, len(lines))
	for i, ln := range lines {
		r, ok := m[ln]
		if !ok {
			r = rune(len(m))
			m[ln] = r
			im[r] = ln
		}
		rs[i] = r
	}
	return rs
}
