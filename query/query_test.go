package query

import (
	"testing"

	"github.com/quill-lang/go-quill/ast"
	"github.com/quill-lang/go-quill/parse"
	"github.com/quill-lang/go-quill/resolve"
)

func mustParse(t *testing.T, src string) *ast.Node {
	t.Helper()
	n, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return n
}

func TestSelect(t *testing.T) {
	root := mustParse(t, "x = 1 + 2\necho x")
	tests := []struct {
		query string
		want  int
	}{
		{`Kind == "IntLit"`, 2},
		{`Kind == "IntLit" && Int > 1`, 1},
		{`Kind == "Ident" && Name == "x"`, 2},
		{`Shape == "Kids" && Len >= 3`, 1},
		{`Kind == "StmtList"`, 1},
		{`Depth == 0`, 1},
		{`Kind == "FloatLit"`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := Select(root, tt.query)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != tt.want {
				t.Errorf("matched %d nodes, want %d", len(got), tt.want)
			}
		})
	}
}

func TestSelectSymbols(t *testing.T) {
	root := mustParse(t, "x = 1\ny = x")
	if err := resolve.Resolve(root); err != nil {
		t.Fatal(err)
	}
	got, err := Select(root, `Kind == "Symbol" && SymKind == "Var" && Name == "x"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("matched %d nodes, want 2", len(got))
	}
}

func TestCompileOnceRunTwice(t *testing.T) {
	q, err := Compile(`Kind == "StrLit"`)
	if err != nil {
		t.Fatal(err)
	}
	for _, src := range []string{`echo "a"`, `x = 1`} {
		root := mustParse(t, src)
		res, err := q.Select(root)
		if err != nil {
			t.Fatal(err)
		}
		want := 0
		if src == `echo "a"` {
			want = 1
		}
		if len(res) != want {
			t.Errorf("%q: matched %d, want %d", src, len(res), want)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	if _, err := Compile(`Kind +`); err == nil {
		t.Error("malformed predicate compiled")
	}
	if _, err := Compile(`1 + 2`); err == nil {
		t.Error("non-boolean predicate compiled")
	}
}
