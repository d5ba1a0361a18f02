package resolve

import (
	"github.com/quill-lang/go-quill/ident"
	"github.com/quill-lang/go-quill/sym"
)

// Universe returns the outermost scope holding the built-in operators,
// procedures, values and types. Names are interned in t; pass nil for a
// private table.
func Universe(t *ident.Table) *sym.Scope {
	if t == nil {
		t = ident.NewTable()
	}
	sc := sym.NewScope(nil)
	def := func(name string, k sym.Kind) {
		// names are distinct per group, Insert cannot fail here
		_ = sc.Insert(sym.New(t.Intern(name), k))
	}
	for _, op := range []string{
		"+", "-", "*", "/", "%",
		"<", "<=", ">", ">=", "==", "!=",
		"&", "and", "or", "not", "@", "~", "!",
	} {
		def(op, sym.BuiltinKind)
	}
	for _, proc := range []string{"echo", "writeln", "readLine", "len", "ord", "chr"} {
		def(proc, sym.ProcKind)
	}
	for _, v := range []string{"stdin", "stdout", "stderr", "true", "false"} {
		def(v, sym.VarKind)
	}
	for _, typ := range []string{
		"int", "int8", "int16", "int32", "int64",
		"float", "float32", "float64",
		"bool", "char", "string",
		"IOError", "OSError", "ValueError",
	} {
		def(typ, sym.TypeKind)
	}
	return sc
}
