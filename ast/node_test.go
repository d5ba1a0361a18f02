package ast

import (
	"errors"
	"testing"

	"github.com/quill-lang/go-quill/ident"
	"github.com/quill-lang/go-quill/sym"
)

func mustNode(t *testing.T) func(n *Node, err error) *Node {
	return func(n *Node, err error) *Node {
		t.Helper()
		if err != nil {
			t.Fatalf("construction: %v", err)
		}
		return n
	}
}

func TestChildOrder(t *testing.T) {
	idents := ident.NewTable()
	kids := []*Node{
		mustNode(t)(FromIdent(IdentKind, idents.Intern("&"))),
		mustNode(t)(FromStr(StrLitKind, "abc")),
		mustNode(t)(FromStr(StrLitKind, "xyz")),
	}
	n := mustNode(t)(New(InfixKind, kids...))
	if n.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", n.Len())
	}
	for i, want := range kids {
		got, err := n.Child(i)
		if err != nil {
			t.Fatalf("Child(%d): %v", i, err)
		}
		if got != want {
			t.Errorf("Child(%d) = %v, want %v", i, got, want)
		}
		if got.Parent() != n || got.ParentIndex() != i {
			t.Errorf("child %d parent bookkeeping = (%v, %d)", i, got.Parent(), got.ParentIndex())
		}
	}
	if _, err := n.Child(3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Child(3) err = %v, want ErrOutOfRange", err)
	}
	if _, err := n.Child(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Child(-1) err = %v, want ErrOutOfRange", err)
	}
}

func TestScalarPayloadsExact(t *testing.T) {
	n := mustNode(t)(FromInt(Int64LitKind, -1<<63))
	if v, err := n.Int(); err != nil || v != -1<<63 {
		t.Errorf("Int() = %d, %v", v, err)
	}
	f := mustNode(t)(FromFloat(Float64LitKind, 0.1))
	if v, err := f.Float(); err != nil || v != 0.1 {
		t.Errorf("Float() = %v, %v", v, err)
	}
	s := mustNode(t)(FromStr(TripleStrLitKind, "a\nb"))
	if v, err := s.Str(); err != nil || v != "a\nb" {
		t.Errorf("Str() = %q, %v", v, err)
	}
	c := mustNode(t)(FromInt(CharLitKind, 32))
	if v, err := c.Int(); err != nil || v != 32 {
		t.Errorf("char Int() = %d, %v", v, err)
	}
}

func TestKindMismatch(t *testing.T) {
	idents := ident.NewTable()
	lit := mustNode(t)(FromInt(IntLitKind, 42))
	id := mustNode(t)(FromIdent(IdentKind, idents.Intern("x")))
	symNode := mustNode(t)(FromSym(SymbolKind, sym.New(idents.Intern("x"), sym.VarKind)))

	tests := []struct {
		name string
		err  error
	}{
		{"index literal", func() error { _, err := lit.Child(0); return err }()},
		{"index ident", func() error { _, err := id.Child(0); return err }()},
		{"index symbol", func() error { _, err := symNode.Child(0); return err }()},
		{"index empty", func() error { _, err := Empty().Child(0); return err }()},
		{"kids from literal kind", func() error { _, err := New(IntLitKind); return err }()},
		{"int from kids kind", func() error { _, err := FromInt(CallKind, 1); return err }()},
		{"float from int kind", func() error { _, err := FromFloat(IntLitKind, 1); return err }()},
		{"text from int kind", func() error { _, err := FromStr(IntLitKind, "x"); return err }()},
		{"ident from symbol kind", func() error { _, err := FromIdent(SymbolKind, idents.Intern("x")); return err }()},
		{"sym from ident kind", func() error { _, err := FromSym(IdentKind, sym.New(idents.Intern("x"), sym.VarKind)); return err }()},
		{"int payload of string node", func() error {
			n := mustNode(t)(FromStr(StrLitKind, "x"))
			_, err := n.Int()
			return err
		}()},
		{"name payload of symbol node", func() error { _, err := symNode.Name(); return err }()},
		{"sym payload of ident node", func() error { _, err := id.Sym(); return err }()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrKindMismatch) {
				t.Errorf("err = %v, want ErrKindMismatch", tt.err)
			}
		})
	}
}

func TestNilChildRejected(t *testing.T) {
	if _, err := New(CallKind, nil); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("nil child err = %v, want ErrKindMismatch", err)
	}
}

func TestLenZeroForLeaves(t *testing.T) {
	idents := ident.NewTable()
	leaves := []*Node{
		Empty(),
		NilLit(),
		mustNode(t)(FromInt(IntLitKind, 1)),
		mustNode(t)(FromFloat(FloatLitKind, 1)),
		mustNode(t)(FromStr(StrLitKind, "s")),
		mustNode(t)(FromIdent(IdentKind, idents.Intern("x"))),
	}
	for _, n := range leaves {
		if n.Len() != 0 {
			t.Errorf("%s Len() = %d, want 0", n.Kind(), n.Len())
		}
		if n.Kids() != nil {
			t.Errorf("%s Kids() = %v, want nil", n.Kind(), n.Kids())
		}
	}
}

func TestNewNamed(t *testing.T) {
	idents := ident.NewTable()
	field := mustNode(t)(FromIdent(IdentKind, idents.Intern("file")))
	val := mustNode(t)(FromIdent(IdentKind, idents.Intern("stdout")))
	named := mustNode(t)(NewNamed(FieldEqKind,
		Arg{Name: "field", Node: field},
		Arg{Name: "value", Node: val},
	))
	positional := mustNode(t)(New(FieldEqKind, field.Clone(), val.Clone()))
	if Compare(named, positional) != 0 {
		t.Errorf("named construction differs from positional")
	}
	if named.MustChild(0) != field || named.MustChild(1) != val {
		t.Errorf("named construction reordered children")
	}
}

func TestResolveIdent(t *testing.T) {
	idents := ident.NewTable()
	callee := mustNode(t)(FromIdent(IdentKind, idents.Intern("echo")))
	arg := mustNode(t)(FromStr(StrLitKind, "a"))
	call := mustNode(t)(New(CommandKind, callee, arg))

	s := sym.New(idents.Intern("echo"), sym.ProcKind)
	res, err := callee.ResolveIdent(s)
	if err != nil {
		t.Fatalf("ResolveIdent: %v", err)
	}
	if res.Kind() != SymbolKind {
		t.Errorf("resolved kind = %s", res.Kind())
	}
	if got := call.MustChild(0); got != res {
		t.Errorf("parent slot not replaced: %v", got)
	}
	if res.ParentIndex() != 0 || res.Parent() != call {
		t.Errorf("resolved node bookkeeping = (%v, %d)", res.Parent(), res.ParentIndex())
	}
	if got := call.MustChild(1); got != arg {
		t.Errorf("sibling affected by resolution: %v", got)
	}
	if sv, err := res.Sym(); err != nil || sv != s {
		t.Errorf("Sym() = %v, %v", sv, err)
	}
	// the detached ident still reads as an ident
	if nm, err := callee.Name(); err != nil || nm.Name() != "echo" {
		t.Errorf("detached ident = %v, %v", nm, err)
	}

	if _, err := arg.ResolveIdent(s); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("resolve of literal err = %v, want ErrKindMismatch", err)
	}
}

func TestCloneIndependent(t *testing.T) {
	idents := ident.NewTable()
	id := mustNode(t)(FromIdent(IdentKind, idents.Intern("x")))
	n := mustNode(t)(New(DiscardStmtKind, id))
	c := n.Clone()
	if Compare(n, c) != 0 {
		t.Fatalf("clone differs from original")
	}
	// resolving in the clone leaves the original untouched
	if _, err := c.MustChild(0).ResolveIdent(sym.New(idents.Intern("x"), sym.VarKind)); err != nil {
		t.Fatalf("ResolveIdent: %v", err)
	}
	if n.MustChild(0).Kind() != IdentKind {
		t.Errorf("original mutated through clone")
	}
	if c.MustChild(0).Kind() != SymbolKind {
		t.Errorf("clone not resolved")
	}
}

func TestRoot(t *testing.T) {
	leaf := mustNode(t)(FromInt(IntLitKind, 1))
	inner := mustNode(t)(New(ParKind, leaf))
	outer := mustNode(t)(New(StmtListKind, inner))
	if leaf.Root() != outer {
		t.Errorf("Root() = %v, want %v", leaf.Root(), outer)
	}
	if outer.Root() != outer {
		t.Errorf("root of root = %v", outer.Root())
	}
}
