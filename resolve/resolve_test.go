package resolve

import (
	"errors"
	"strings"
	"testing"

	"github.com/quill-lang/go-quill/ast"
	"github.com/quill-lang/go-quill/parse"
	"github.com/quill-lang/go-quill/render"
	"github.com/quill-lang/go-quill/sym"
	"github.com/quill-lang/go-quill/token"
)

func mustParse(t *testing.T, src string, opts ...parse.ParseOption) *ast.Node {
	t.Helper()
	n, err := parse.Parse([]byte(src), opts...)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return n
}

func TestResolveRewrites(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"builtin proc",
			`echo "hi"`,
			`StmtList(Command(Symbol Proc "echo", StrLit "hi"))`,
		},
		{
			"assignment declares",
			"x = 1\ny = x",
			`StmtList(Asgn(Symbol Var "x", IntLit 1), Asgn(Symbol Var "y", Symbol Var "x"))`,
		},
		{
			"operator is builtin",
			`x = 1 + 2`,
			`StmtList(Asgn(Symbol Var "x", Infix(Symbol Builtin "+", IntLit 1, IntLit 2)))`,
		},
		{
			"field name stays ident",
			`writeln(file=stdout, "h")`,
			`StmtList(Call(Symbol Proc "writeln", FieldEq(Ident "file", Symbol Var "stdout"), StrLit "h"))`,
		},
		{
			"member name stays ident",
			"a = 1\necho a.b",
			`StmtList(Asgn(Symbol Var "a", IntLit 1), Command(Symbol Proc "echo", DotExpr(Symbol Var "a", Ident "b")))`,
		},
		{
			"for binds loop names",
			"for i in 1..3:\n  echo i",
			`StmtList(ForStmt(Symbol Var "i", Range(IntLit 1, IntLit 3), Command(Symbol Proc "echo", Symbol Var "i")))`,
		},
		{
			"except matches error types",
			"try: discard f\nexcept IOError: echo \"io\"",
			`StmtList(TryStmt(DiscardStmt(Ident "f"), ExceptBranch(Symbol Type "IOError", Command(Symbol Proc "echo", StrLit "io"))))`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := mustParse(t, tt.src)
			err := Resolve(root)
			if tt.name == "except matches error types" {
				// f is deliberately unresolved in this source
				if !errors.Is(err, ErrUnresolved) {
					t.Fatalf("err = %v, want ErrUnresolved", err)
				}
			} else if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if got := render.MustString(root); got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestResolveSharesSymbols(t *testing.T) {
	root := mustParse(t, "x = 1\ny = x")
	if err := Resolve(root); err != nil {
		t.Fatal(err)
	}
	lhs := root.MustChild(0).MustChild(0)
	use := root.MustChild(1).MustChild(1)
	lhsSym, err := lhs.Sym()
	if err != nil {
		t.Fatal(err)
	}
	useSym, err := use.Sym()
	if err != nil {
		t.Fatal(err)
	}
	if lhsSym != useSym {
		t.Error("declaration and use resolved to distinct symbols")
	}
	if lhsSym.Kind() != sym.VarKind {
		t.Errorf("kind = %s, want Var", lhsSym.Kind())
	}
}

func TestResolveLoopNameScoped(t *testing.T) {
	sc := sym.NewScope(Universe(nil))
	root := mustParse(t, "for i in 1..3:\n  echo i")
	if err := Resolve(root, WithScope(sc)); err != nil {
		t.Fatal(err)
	}
	if sc.Lookup("i") != nil {
		t.Error("loop name leaked into the enclosing scope")
	}
}

func TestResolveUnresolved(t *testing.T) {
	positions := map[*ast.Node]*token.Pos{}
	root := mustParse(t, `echo zzz`, parse.ParsePositions(positions))
	err := Resolve(root, WithPositions(positions))
	if !errors.Is(err, ErrUnresolved) {
		t.Fatalf("err = %v, want ErrUnresolved", err)
	}
	if !strings.Contains(err.Error(), "zzz") {
		t.Errorf("error does not name the identifier: %v", err)
	}
	if !strings.Contains(err.Error(), "line=0, col=5") {
		t.Errorf("error does not carry the position: %v", err)
	}
}
