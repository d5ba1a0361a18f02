// Package resolve rewrites identifier nodes into symbol nodes.
//
// Resolution walks a tree, looks each name up in a chained scope, and
// splices the symbol node into the identifier's slot. Name-position
// children that are not references, like the field name of a FieldEq
// or the member name of a DotExpr, are left as identifiers. Assigning
// to an unknown name declares it as a variable in the current scope.
package resolve

import (
	"errors"
	"fmt"

	"github.com/quill-lang/go-quill/ast"
	"github.com/quill-lang/go-quill/sym"
	"github.com/quill-lang/go-quill/token"
)

type Option func(*resolver)

// WithScope resolves against sc instead of a fresh scope over the
// universe. Implicitly declared variables land in sc.
func WithScope(sc *sym.Scope) Option {
	return func(r *resolver) { r.scope = sc }
}

// WithPositions adds source positions from m to unresolved-name errors.
func WithPositions(m map[*ast.Node]*token.Pos) Option {
	return func(r *resolver) { r.positions = m }
}

type resolver struct {
	scope     *sym.Scope
	positions map[*ast.Node]*token.Pos
	errs      []error
}

// Resolve resolves every reference identifier under root. The tree is
// rewritten in place; all unresolved names are collected and returned
// as a joined error.
func Resolve(root *ast.Node, opts ...Option) error {
	r := &resolver{}
	for _, opt := range opts {
		opt(r)
	}
	if r.scope == nil {
		r.scope = sym.NewScope(Universe(nil))
	}
	r.walk(root, r.scope)
	return errors.Join(r.errs...)
}

// kid resolves or recurses into the i-th child of n.
func (r *resolver) kid(n *ast.Node, i int, sc *sym.Scope) {
	c := n.MustChild(i)
	if c.Kind() == ast.IdentKind {
		r.resolveRef(c, sc)
		return
	}
	r.walk(c, sc)
}

func (r *resolver) resolveRef(c *ast.Node, sc *sym.Scope) {
	name, err := c.Name()
	if err != nil {
		r.errs = append(r.errs, err)
		return
	}
	s := sc.Lookup(name.Name())
	if s == nil {
		r.unresolved(c, name.Name())
		return
	}
	if _, err := c.ResolveIdent(s); err != nil {
		r.errs = append(r.errs, err)
	}
}

func (r *resolver) unresolved(c *ast.Node, name string) {
	if pos := r.positions[c]; pos != nil {
		r.errs = append(r.errs, fmt.Errorf("%w: %s at %s", ErrUnresolved, name, pos))
		return
	}
	r.errs = append(r.errs, fmt.Errorf("%w: %s", ErrUnresolved, name))
}

func (r *resolver) walk(n *ast.Node, sc *sym.Scope) {
	switch n.Kind() {
	case ast.AsgnKind:
		r.kid(n, 1, sc)
		r.asgnTarget(n, sc)
	case ast.FieldEqKind:
		// child 0 is the field name, not a reference
		r.kid(n, 1, sc)
	case ast.DotExprKind:
		// child 1 is the member name, not a reference
		r.kid(n, 0, sc)
	case ast.ForStmtKind:
		r.forStmt(n, sc)
	case ast.ExceptBranchKind:
		last := n.Len() - 1
		for i := 0; i < last; i++ {
			r.kid(n, i, sc)
		}
		r.kid(n, last, sym.NewScope(sc))
	case ast.WhileStmtKind, ast.ElifBranchKind:
		r.kid(n, 0, sc)
		r.kid(n, 1, sym.NewScope(sc))
	case ast.ElseKind, ast.FinallyKind:
		r.kid(n, 0, sym.NewScope(sc))
	case ast.OfBranchKind:
		last := n.Len() - 1
		for i := 0; i < last; i++ {
			r.kid(n, i, sc)
		}
		r.kid(n, last, sym.NewScope(sc))
	case ast.TryStmtKind:
		r.kid(n, 0, sym.NewScope(sc))
		for i := 1; i < n.Len(); i++ {
			r.kid(n, i, sc)
		}
	default:
		for i := 0; i < n.Len(); i++ {
			r.kid(n, i, sc)
		}
	}
}

// asgnTarget resolves the left side of an assignment. An identifier
// target not yet in scope declares a new variable.
func (r *resolver) asgnTarget(n *ast.Node, sc *sym.Scope) {
	c := n.MustChild(0)
	if c.Kind() != ast.IdentKind {
		r.walk(c, sc)
		return
	}
	name, err := c.Name()
	if err != nil {
		r.errs = append(r.errs, err)
		return
	}
	s := sc.Lookup(name.Name())
	if s == nil {
		s = sym.New(name, sym.VarKind)
		if err := sc.Insert(s); err != nil {
			r.errs = append(r.errs, err)
			return
		}
	}
	if _, err := c.ResolveIdent(s); err != nil {
		r.errs = append(r.errs, err)
	}
}

// forStmt binds the loop names in a fresh scope covering the body. The
// iterable is resolved in the enclosing scope.
func (r *resolver) forStmt(n *ast.Node, sc *sym.Scope) {
	nk := n.Len()
	if nk < 3 {
		r.errs = append(r.errs, fmt.Errorf("for node with %d children", nk))
		return
	}
	body := sym.NewScope(sc)
	for i := 0; i < nk-2; i++ {
		c := n.MustChild(i)
		name, err := c.Name()
		if err != nil {
			r.errs = append(r.errs, err)
			continue
		}
		s := sym.New(name, sym.VarKind)
		if err := body.Insert(s); err != nil {
			r.errs = append(r.errs, err)
			continue
		}
		if _, err := c.ResolveIdent(s); err != nil {
			r.errs = append(r.errs, err)
		}
	}
	r.kid(n, nk-2, sc)
	r.kid(n, nk-1, body)
}
