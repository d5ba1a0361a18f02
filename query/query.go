// Package query selects tree nodes matching a compiled predicate.
//
// Predicates are expr-lang expressions evaluated against a small
// per-node environment:
//
//	Kind == "IntLit" && Int > 10
//	Kind == "Ident" && Name == "x"
//	Shape == "Kids" && Len >= 3
//
// A predicate is compiled once and can be run over many trees.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/quill-lang/go-quill/ast"
)

// Env is the variable set visible to a predicate, rebuilt per node.
// Payload fields are zero-valued when the node's shape lacks them.
type Env struct {
	Kind    string
	Shape   string
	Depth   int
	Len     int
	Int     int64
	Float   float64
	Str     string
	Name    string
	SymKind string
}

type Query struct {
	src string
	prg *vm.Program
}

// Compile compiles a boolean predicate.
func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling query %q: %w", src, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string { return q.src }

// Select walks root in preorder and returns the nodes for which the
// predicate holds.
func (q *Query) Select(root *ast.Node) ([]*ast.Node, error) {
	var (
		res   []*ast.Node
		depth int
	)
	err := root.Visit(func(n *ast.Node, isPost bool) (bool, error) {
		if isPost {
			depth--
			return true, nil
		}
		match, err := q.Match(n, depth)
		if err != nil {
			return false, err
		}
		if match {
			res = append(res, n)
		}
		depth++
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Match runs the predicate against a single node at the given depth.
func (q *Query) Match(n *ast.Node, depth int) (bool, error) {
	env := Env{
		Kind:  n.Kind().String(),
		Shape: n.Shape().String(),
		Depth: depth,
		Len:   n.Len(),
	}
	switch n.Shape() {
	case ast.IntShape:
		env.Int, _ = n.Int()
	case ast.FloatShape:
		env.Float, _ = n.Float()
	case ast.TextShape:
		env.Str, _ = n.Str()
	case ast.IdentShape:
		id, _ := n.Name()
		env.Name = id.Name()
	case ast.SymbolShape:
		s, _ := n.Sym()
		env.Name = s.Name().Name()
		env.SymKind = s.Kind().String()
	}
	res, err := expr.Run(q.prg, env)
	if err != nil {
		return false, fmt.Errorf("running query %q: %w", q.src, err)
	}
	return res.(bool), nil
}

// Select compiles src and selects over root in one step.
func Select(root *ast.Node, src string) ([]*ast.Node, error) {
	q, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return q.Select(root)
}
