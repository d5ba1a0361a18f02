package ast

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two trees.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Nodes order first by kind, then by payload; child sequences compare
// elementwise, shorter first on a common prefix.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	switch a.kind.Shape() {
	case NoneShape:
		return 0
	case IntShape:
		return cmp.Compare(a.ival, b.ival)
	case FloatShape:
		return cmp.Compare(a.fval, b.fval)
	case TextShape:
		return strings.Compare(a.sval, b.sval)
	case IdentShape:
		return strings.Compare(a.name.Name(), b.name.Name())
	case SymbolShape:
		if c := strings.Compare(a.sym.Name().Name(), b.sym.Name().Name()); c != 0 {
			return c
		}
		return cmp.Compare(a.sym.Kind(), b.sym.Kind())
	case KidsShape:
		return compareKids(a, b)
	}
	return 0
}

func compareKids(a, b *Node) int {
	lenA := len(a.kids)
	lenB := len(b.kids)
	minLen := min(lenA, lenB)
	for i := 0; i < minLen; i++ {
		if c := Compare(a.kids[i], b.kids[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
