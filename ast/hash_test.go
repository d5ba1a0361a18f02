package ast

import (
	"testing"

	"github.com/quill-lang/go-quill/ident"
)

func TestHashEqualTrees(t *testing.T) {
	idents := ident.NewTable()
	mk := func() *Node {
		return mustNode(t)(New(InfixKind,
			mustNode(t)(FromIdent(IdentKind, idents.Intern("&"))),
			strLit(t, "abc"),
			strLit(t, "xyz"),
		))
	}
	a, b := mk(), mk()
	if a.Hash() != b.Hash() {
		t.Errorf("equal trees hash differently")
	}
	if a.Hash() != a.Hash() {
		t.Errorf("hash not stable across calls")
	}
}

func TestHashDistinguishes(t *testing.T) {
	pairs := []struct {
		name string
		a, b *Node
	}{
		{"payload", intLit(t, 1), intLit(t, 2)},
		{"kind only", intLit(t, 1), mustNode(t)(FromInt(Int8LitKind, 1))},
		{"child order", mustNode(t)(New(ArrayKind, intLit(t, 1), intLit(t, 2))),
			mustNode(t)(New(ArrayKind, intLit(t, 2), intLit(t, 1)))},
	}
	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			if tt.a.Hash() == tt.b.Hash() {
				t.Errorf("distinct trees share hash")
			}
		})
	}
}
