// Package sym provides resolved-symbol values and lexical scopes.
//
// A Symbol is the post-resolution counterpart of an identifier: the
// name resolution pass rewrites identifier nodes into symbol nodes
// once a name's target entity is known. Symbols are immutable once
// created and shared by lookup, like interned idents.
package sym

import (
	"fmt"

	"github.com/quill-lang/go-quill/ident"
)

type Kind int

const (
	UnknownKind Kind = iota
	VarKind
	ParamKind
	ProcKind
	TypeKind
	BuiltinKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		UnknownKind: "Unknown",
		VarKind:     "Var",
		ParamKind:   "Param",
		ProcKind:    "Proc",
		TypeKind:    "Type",
		BuiltinKind: "Builtin",
	}[k]
	if ok {
		return s
	}
	return "<unknown symbol kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Unknown": UnknownKind,
		"Var":     VarKind,
		"Param":   ParamKind,
		"Proc":    ProcKind,
		"Type":    TypeKind,
		"Builtin": BuiltinKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized symbol kind %q", d)
	}
	*k = kk
	return nil
}

type Symbol struct {
	name *ident.Ident
	kind Kind
}

func New(name *ident.Ident, kind Kind) *Symbol {
	return &Symbol{name: name, kind: kind}
}

func (s *Symbol) Name() *ident.Ident { return s.name }
func (s *Symbol) Kind() Kind         { return s.kind }

func (s *Symbol) String() string {
	return fmt.Sprintf("%s %s", s.kind, s.name)
}
