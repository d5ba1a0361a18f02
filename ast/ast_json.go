package ast

import (
	"encoding/json"
	"fmt"

	"github.com/quill-lang/go-quill/ident"
	"github.com/quill-lang/go-quill/sym"
)

type nodeBase struct {
	Kind Kind    `json:"kind"`
	Kids []*Node `json:"kids,omitempty"`
}

// MarshalJSON encodes the tree in a self-describing form usable by
// tools without quill parsing support. Ident payloads encode as their
// name; symbol payloads as name plus symbol kind.
func (n *Node) MarshalJSON() ([]byte, error) {
	base := &nodeBase{Kind: n.kind, Kids: n.kids}
	switch n.kind.Shape() {
	case IntShape:
		type C struct {
			nodeBase
			Int int64 `json:"int"`
		}
		return json.Marshal(C{nodeBase: *base, Int: n.ival})
	case FloatShape:
		type C struct {
			nodeBase
			Float float64 `json:"float"`
		}
		return json.Marshal(C{nodeBase: *base, Float: n.fval})
	case TextShape:
		type C struct {
			nodeBase
			Str string `json:"str"`
		}
		return json.Marshal(C{nodeBase: *base, Str: n.sval})
	case IdentShape:
		type C struct {
			nodeBase
			Name string `json:"name"`
		}
		return json.Marshal(C{nodeBase: *base, Name: n.name.Name()})
	case SymbolShape:
		type C struct {
			nodeBase
			Name    string   `json:"name"`
			SymKind sym.Kind `json:"symKind"`
		}
		return json.Marshal(C{nodeBase: *base, Name: n.sym.Name().Name(), SymKind: n.sym.Kind()})
	default:
		return json.Marshal(base)
	}
}

// UnmarshalJSON decodes a tree encoded by MarshalJSON. Names are
// re-interned in the process-wide ident table; symbols are rebuilt
// from name and symbol kind.
func (n *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		nodeBase
		Int     int64    `json:"int"`
		Float   float64  `json:"float"`
		Str     string   `json:"str"`
		Name    string   `json:"name"`
		SymKind sym.Kind `json:"symKind"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	n.kind = tmp.Kind
	n.kids = nil
	n.ival = 0
	n.fval = 0
	n.sval = ""
	n.name = nil
	n.sym = nil
	shape := tmp.Kind.Shape()
	if shape != KidsShape && len(tmp.Kids) > 0 {
		return fmt.Errorf("%w: %s node with children", ErrKindMismatch, tmp.Kind)
	}
	switch shape {
	case IntShape:
		n.ival = tmp.Int
	case FloatShape:
		n.fval = tmp.Float
	case TextShape:
		n.sval = tmp.Str
	case IdentShape:
		if tmp.Name == "" {
			return fmt.Errorf("%w: %s node without name", ErrKindMismatch, tmp.Kind)
		}
		n.name = ident.Intern(tmp.Name)
	case SymbolShape:
		if tmp.Name == "" {
			return fmt.Errorf("%w: %s node without name", ErrKindMismatch, tmp.Kind)
		}
		n.sym = sym.New(ident.Intern(tmp.Name), tmp.SymKind)
	case KidsShape:
		n.kids = tmp.Kids
		for i, kid := range n.kids {
			if kid == nil {
				return fmt.Errorf("%w: null child at index %d of %s", ErrKindMismatch, i, tmp.Kind)
			}
			kid.parent = n
			kid.parentIndex = i
		}
	}
	return nil
}
