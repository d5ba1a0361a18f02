package sym

import (
	"errors"
	"testing"

	"github.com/quill-lang/go-quill/ident"
)

func TestScopeInsertLookup(t *testing.T) {
	idents := ident.NewTable()
	outer := NewScope(nil)
	inner := NewScope(outer)

	x := New(idents.Intern("x"), VarKind)
	if err := outer.Insert(x); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got := inner.Lookup("x"); got != x {
		t.Errorf("Lookup through parent = %v, want %v", got, x)
	}
	if got := inner.LookupLocal("x"); got != nil {
		t.Errorf("LookupLocal crossed scope boundary: %v", got)
	}
}

func TestScopeShadowing(t *testing.T) {
	idents := ident.NewTable()
	outer := NewScope(nil)
	inner := NewScope(outer)

	a := New(idents.Intern("x"), ProcKind)
	b := New(idents.Intern("x"), VarKind)
	if err := outer.Insert(a); err != nil {
		t.Fatalf("Insert outer: %v", err)
	}
	if err := inner.Insert(b); err != nil {
		t.Fatalf("Insert inner: %v", err)
	}
	if got := inner.Lookup("x"); got != b {
		t.Errorf("inner Lookup = %v, want shadowing %v", got, b)
	}
	if got := outer.Lookup("x"); got != a {
		t.Errorf("outer Lookup = %v, want %v", got, a)
	}
}

func TestScopeRedefine(t *testing.T) {
	idents := ident.NewTable()
	sc := NewScope(nil)
	if err := sc.Insert(New(idents.Intern("x"), VarKind)); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	err := sc.Insert(New(idents.Intern("x"), VarKind))
	if !errors.Is(err, ErrAlreadyDefined) {
		t.Errorf("redefine err = %v, want ErrAlreadyDefined", err)
	}
}

func TestKindText(t *testing.T) {
	for _, k := range []Kind{UnknownKind, VarKind, ParamKind, ProcKind, TypeKind, BuiltinKind} {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", k, err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", d, err)
		}
		if back != k {
			t.Errorf("round trip %v -> %q -> %v", k, d, back)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("bogus")); err == nil {
		t.Errorf("UnmarshalText accepted bogus kind")
	}
}
