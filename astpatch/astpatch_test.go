package astpatch

import (
	"errors"
	"testing"

	"github.com/quill-lang/go-quill/ast"
	"github.com/quill-lang/go-quill/parse"
	"github.com/quill-lang/go-quill/render"
)

func mustParse(t *testing.T, src string) *ast.Node {
	t.Helper()
	n, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return n
}

func TestApplyReplace(t *testing.T) {
	root := mustParse(t, "x = 1")
	before := render.MustString(root)
	patch := []byte(`[{"op": "replace", "path": "/kids/0/kids/1/int", "value": 42}]`)
	got, err := Apply(root, patch)
	if err != nil {
		t.Fatal(err)
	}
	want := `StmtList(Asgn(Ident "x", IntLit 42))`
	if s := render.MustString(got); s != want {
		t.Errorf("got %s, want %s", s, want)
	}
	if render.MustString(root) != before {
		t.Error("input tree modified by patch")
	}
}

func TestApplyAddStatement(t *testing.T) {
	root := mustParse(t, `echo "hi"`)
	patch := []byte(`[{"op": "add", "path": "/kids/-", "value":
		{"kind": "ReturnStmt", "kids": [{"kind": "Empty"}]}}]`)
	got, err := Apply(root, patch)
	if err != nil {
		t.Fatal(err)
	}
	want := `StmtList(Command(Ident "echo", StrLit "hi"), ReturnStmt(Empty))`
	if s := render.MustString(got); s != want {
		t.Errorf("got %s, want %s", s, want)
	}
	// parent links are rebuilt on decode
	last, err := got.Child(1)
	if err != nil {
		t.Fatal(err)
	}
	if last.Parent() != got || last.ParentIndex() != 1 {
		t.Error("patched tree has broken parent links")
	}
}

func TestApplyRemove(t *testing.T) {
	root := mustParse(t, "a = 1\nb = 2")
	patch := []byte(`[{"op": "remove", "path": "/kids/0"}]`)
	got, err := Apply(root, patch)
	if err != nil {
		t.Fatal(err)
	}
	want := `StmtList(Asgn(Ident "b", IntLit 2))`
	if s := render.MustString(got); s != want {
		t.Errorf("got %s, want %s", s, want)
	}
}

func TestApplyErrors(t *testing.T) {
	root := mustParse(t, "x = 1")

	if _, err := Decode([]byte(`{"op": "replace"}`)); err == nil {
		t.Error("non-array patch decoded")
	}

	if _, err := Apply(root, []byte(`[{"op": "replace", "path": "/kids/9/int", "value": 1}]`)); err == nil {
		t.Error("patch with dangling path applied")
	}

	// a literal cannot be given children
	bad := []byte(`[{"op": "replace", "path": "/kids/0/kids/1", "value":
		{"kind": "IntLit", "int": 1, "kids": [{"kind": "Empty"}]}}]`)
	_, err := Apply(root, bad)
	if !errors.Is(err, ast.ErrKindMismatch) {
		t.Errorf("err = %v, want ErrKindMismatch", err)
	}
}
