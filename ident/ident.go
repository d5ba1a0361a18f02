// Package ident provides interned identifier values.
//
// An Ident is an immutable canonical name. Nodes reference idents by
// lookup, never by ownership: two occurrences of the same name in a
// table share one Ident, so name equality is pointer equality.
package ident

import "sync"

type Ident struct {
	name string
	id   uint32
}

func (id *Ident) Name() string { return id.name }

// ID is the intern ordinal within the owning table.
func (id *Ident) ID() uint32 { return id.id }

func (id *Ident) String() string { return id.name }

// Table interns names for one compilation unit.
type Table struct {
	mu     sync.RWMutex
	byName map[string]*Ident
}

func NewTable() *Table {
	return &Table{byName: map[string]*Ident{}}
}

// Intern returns the canonical Ident for name, creating it on first use.
func (t *Table) Intern(name string) *Ident {
	t.mu.RLock()
	res, ok := t.byName[name]
	t.mu.RUnlock()
	if ok {
		return res
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if res, ok = t.byName[name]; ok {
		return res
	}
	res = &Ident{name: name, id: uint32(len(t.byName))}
	t.byName[name] = res
	return res
}

// Lookup returns the canonical Ident for name, or nil if name was never
// interned.
func (t *Table) Lookup(name string) *Ident {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.byName[name]
}

func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byName)
}

var global = NewTable()

// Intern interns name in the process-wide table. Code working on a
// single compilation unit should prefer an explicit Table.
func Intern(name string) *Ident {
	return global.Intern(name)
}
