package treediff

import (
	"strings"
	"testing"

	"github.com/quill-lang/go-quill/ast"
	"github.com/quill-lang/go-quill/parse"
)

func mustParse(t *testing.T, src string) *ast.Node {
	t.Helper()
	n, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return n
}

func TestDiffEqualTrees(t *testing.T) {
	a := mustParse(t, "x = 1\necho x")
	b := mustParse(t, "x = 1\necho x")
	if !Equal(a, b) {
		t.Error("identical sources diff as unequal")
	}
	for _, e := range Diff(a, b) {
		if e.Op != EqualOp {
			t.Errorf("unexpected edit %v %q", e.Op, e.Line)
		}
	}
}

func TestDiffChangedLiteral(t *testing.T) {
	a := mustParse(t, "x = 1")
	b := mustParse(t, "x = 2")
	edits := Diff(a, b)
	var dels, ins []string
	for _, e := range edits {
		switch e.Op {
		case DeleteOp:
			dels = append(dels, strings.TrimSpace(e.Line))
		case InsertOp:
			ins = append(ins, strings.TrimSpace(e.Line))
		}
	}
	if len(dels) == 0 || len(ins) == 0 {
		t.Fatalf("edits = %v", edits)
	}
	foundDel, foundIns := false, false
	for _, d := range dels {
		if strings.HasPrefix(d, "IntLit 1") {
			foundDel = true
		}
	}
	for _, i := range ins {
		if strings.HasPrefix(i, "IntLit 2") {
			foundIns = true
		}
	}
	if !foundDel || !foundIns {
		t.Errorf("dels = %v, ins = %v", dels, ins)
	}
}

func TestDiffAddedStatement(t *testing.T) {
	a := mustParse(t, "echo \"hi\"")
	b := mustParse(t, "echo \"hi\"\nx = 1")
	if Equal(a, b) {
		t.Fatal("trees with different statements compare equal")
	}
	got := Format(Diff(a, b))
	if !strings.Contains(got, "+") {
		t.Errorf("no insert lines in:\n%s", got)
	}
	if strings.Contains(got, "-Ident \"echo\"") {
		t.Errorf("common line reported as delete in:\n%s", got)
	}
}
