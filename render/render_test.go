package render

import (
	"testing"

	"github.com/quill-lang/go-quill/ast"
	"github.com/quill-lang/go-quill/ident"
	"github.com/quill-lang/go-quill/sym"
)

func mustNode(t *testing.T) func(n *ast.Node, err error) *ast.Node {
	return func(n *ast.Node, err error) *ast.Node {
		t.Helper()
		if err != nil {
			t.Fatalf("building node: %v", err)
		}
		return n
	}
}

func TestRenderLeaves(t *testing.T) {
	table := ident.NewTable()
	symbol := sym.New(table.Intern("x"), sym.VarKind)
	tests := []struct {
		name string
		node *ast.Node
		want string
	}{
		{"empty", ast.Empty(), "Empty"},
		{"nil", ast.NilLit(), "NilLit"},
		{"int", mustNode(t)(ast.FromInt(ast.IntLitKind, 42)), "IntLit 42"},
		{"int8", mustNode(t)(ast.FromInt(ast.Int8LitKind, -1)), "Int8Lit -1"},
		{"char", mustNode(t)(ast.FromInt(ast.CharLitKind, 97)), "CharLit 97"},
		{"float", mustNode(t)(ast.FromFloat(ast.FloatLitKind, 1.5)), "FloatLit 1.5"},
		{"float whole", mustNode(t)(ast.FromFloat(ast.Float64LitKind, 2)), "Float64Lit 2.0"},
		{"str", mustNode(t)(ast.FromStr(ast.StrLitKind, "a\nb")), `StrLit "a\nb"`},
		{"ident", mustNode(t)(ast.FromIdent(ast.IdentKind, table.Intern("echo"))), `Ident "echo"`},
		{"symbol", mustNode(t)(ast.FromSym(ast.SymbolKind, symbol)), `Symbol Var "x"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := String(tt.node)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderTree(t *testing.T) {
	table := ident.NewTable()
	callee := mustNode(t)(ast.FromIdent(ast.IdentKind, table.Intern("echo")))
	arg := mustNode(t)(ast.FromStr(ast.StrLitKind, "hi"))
	call := mustNode(t)(ast.New(ast.CallKind, callee, arg))

	got, err := String(call)
	if err != nil {
		t.Fatal(err)
	}
	want := `Call(Ident "echo", StrLit "hi")`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderEmptyKids(t *testing.T) {
	set := mustNode(t)(ast.New(ast.SetKind))
	got := MustString(set)
	if got != "Set()" {
		t.Errorf("got %q, want %q", got, "Set()")
	}
}

func TestRenderIndent(t *testing.T) {
	table := ident.NewTable()
	callee := mustNode(t)(ast.FromIdent(ast.IdentKind, table.Intern("f")))
	arg := mustNode(t)(ast.FromInt(ast.IntLitKind, 1))
	call := mustNode(t)(ast.New(ast.CallKind, callee, arg))

	got := MustString(call, Indent(2))
	want := "Call(\n  Ident \"f\",\n  IntLit 1\n)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
