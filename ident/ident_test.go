package ident

import "testing"

func TestInternShares(t *testing.T) {
	tbl := NewTable()
	a := tbl.Intern("echo")
	b := tbl.Intern("echo")
	if a != b {
		t.Errorf("Intern returned distinct values for one name")
	}
	if a.Name() != "echo" {
		t.Errorf("Name() = %q, want %q", a.Name(), "echo")
	}
}

func TestInternDistinct(t *testing.T) {
	tbl := NewTable()
	a := tbl.Intern("x")
	b := tbl.Intern("y")
	if a == b {
		t.Errorf("distinct names interned to one value")
	}
	if a.ID() == b.ID() {
		t.Errorf("distinct names share id %d", a.ID())
	}
	if tbl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tbl.Len())
	}
}

func TestLookup(t *testing.T) {
	tbl := NewTable()
	if got := tbl.Lookup("missing"); got != nil {
		t.Errorf("Lookup of missing name = %v, want nil", got)
	}
	want := tbl.Intern("present")
	if got := tbl.Lookup("present"); got != want {
		t.Errorf("Lookup = %v, want %v", got, want)
	}
}
