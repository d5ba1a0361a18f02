package sym

import "errors"

var (
	ErrAlreadyDefined = errors.New("symbol already defined in scope")
	ErrNotFound       = errors.New("symbol not found in scope")
)

// Scope is a chained lexical scope mapping names to symbols.
type Scope struct {
	parent *Scope
	elems  map[string]*Symbol
}

func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent, elems: map[string]*Symbol{}}
}

func (sc *Scope) Parent() *Scope { return sc.parent }

// Insert defines s in this scope. Shadowing an outer-scope symbol is
// allowed; redefining within the same scope is not.
func (sc *Scope) Insert(s *Symbol) error {
	name := s.Name().Name()
	if _, ok := sc.elems[name]; ok {
		return ErrAlreadyDefined
	}
	sc.elems[name] = s
	return nil
}

// Lookup finds name in this scope or any enclosing scope.
func (sc *Scope) Lookup(name string) *Symbol {
	for s := sc; s != nil; s = s.parent {
		if res, ok := s.elems[name]; ok {
			return res
		}
	}
	return nil
}

// LookupLocal finds name in this scope only.
func (sc *Scope) LookupLocal(name string) *Symbol {
	return sc.elems[name]
}
