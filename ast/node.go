package ast

import (
	"fmt"
	"strconv"

	"github.com/quill-lang/go-quill/ident"
	"github.com/quill-lang/go-quill/sym"
)

// Node is a single tagged tree element: one kind, one payload. The
// payload fields are unexported; construction decides kind and payload
// together and all access goes through the checked accessors.
type Node struct {
	kind        Kind
	parent      *Node
	parentIndex int

	kids []*Node

	ival int64
	fval float64
	sval string
	name *ident.Ident
	sym  *sym.Symbol
}

// New builds a node of a child-sequence kind wrapping exactly the given
// children in order. The children are reparented to the new node; a
// subtree has one owner. Arity and per-construct child-kind rules are
// the producer's concern, not checked here.
func New(k Kind, kids ...*Node) (*Node, error) {
	if k.Shape() != KidsShape {
		return nil, fmt.Errorf("%w: %s node cannot hold children", ErrKindMismatch, k)
	}
	n := &Node{kind: k, kids: make([]*Node, len(kids))}
	for i, kid := range kids {
		if kid == nil {
			return nil, fmt.Errorf("%w: nil child at index %d of %s", ErrKindMismatch, i, k)
		}
		kid.parent = n
		kid.parentIndex = i
		n.kids[i] = kid
	}
	return n, nil
}

// Arg labels a child for named-field construction. The label is
// construction-time documentation only; it is not retained.
type Arg struct {
	Name string
	Node *Node
}

// NewNamed is New with labeled children. Runtime behavior is identical
// to positional construction.
func NewNamed(k Kind, args ...Arg) (*Node, error) {
	kids := make([]*Node, len(args))
	for i := range args {
		kids[i] = args[i].Node
	}
	return New(k, kids...)
}

func FromInt(k Kind, v int64) (*Node, error) {
	if k.Shape() != IntShape {
		return nil, fmt.Errorf("%w: %s node cannot hold an integer", ErrKindMismatch, k)
	}
	return &Node{kind: k, ival: v}, nil
}

func FromFloat(k Kind, v float64) (*Node, error) {
	if k.Shape() != FloatShape {
		return nil, fmt.Errorf("%w: %s node cannot hold a float", ErrKindMismatch, k)
	}
	return &Node{kind: k, fval: v}, nil
}

func FromStr(k Kind, v string) (*Node, error) {
	if k.Shape() != TextShape {
		return nil, fmt.Errorf("%w: %s node cannot hold text", ErrKindMismatch, k)
	}
	return &Node{kind: k, sval: v}, nil
}

func FromIdent(k Kind, id *ident.Ident) (*Node, error) {
	if k.Shape() != IdentShape {
		return nil, fmt.Errorf("%w: %s node cannot hold an identifier", ErrKindMismatch, k)
	}
	if id == nil {
		return nil, fmt.Errorf("%w: nil identifier for %s", ErrKindMismatch, k)
	}
	return &Node{kind: k, name: id}, nil
}

func FromSym(k Kind, s *sym.Symbol) (*Node, error) {
	if k.Shape() != SymbolShape {
		return nil, fmt.Errorf("%w: %s node cannot hold a symbol", ErrKindMismatch, k)
	}
	if s == nil {
		return nil, fmt.Errorf("%w: nil symbol for %s", ErrKindMismatch, k)
	}
	return &Node{kind: k, sym: s}, nil
}

// Empty returns a fresh absence marker.
func Empty() *Node {
	return &Node{kind: EmptyKind}
}

func NilLit() *Node {
	return &Node{kind: NilLitKind}
}

func (n *Node) Kind() Kind   { return n.kind }
func (n *Node) Shape() Shape { return n.kind.Shape() }

// Parent returns the owning node, nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// ParentIndex is n's index among its parent's children, 0 for a root.
func (n *Node) ParentIndex() int { return n.parentIndex }

// Len returns the child count. It is zero for every non-child-sequence
// kind.
func (n *Node) Len() int {
	if n.kind.Shape() != KidsShape {
		return 0
	}
	return len(n.kids)
}

// Child returns the i-th child. Indexing a node whose kind has no
// child sequence fails with ErrKindMismatch; indexing past the end
// fails with ErrOutOfRange. No bounds are clamped and no sentinel
// child is substituted.
func (n *Node) Child(i int) (*Node, error) {
	if n.kind.Shape() != KidsShape {
		return nil, fmt.Errorf("%w: cannot index %s node", ErrKindMismatch, n.kind)
	}
	if i < 0 || i >= len(n.kids) {
		return nil, fmt.Errorf("%w: index %d of %s with %d children", ErrOutOfRange, i, n.kind, len(n.kids))
	}
	return n.kids[i], nil
}

// MustChild is Child for callers that have already established the
// node's arity; it panics on either error condition.
func (n *Node) MustChild(i int) *Node {
	c, err := n.Child(i)
	if err != nil {
		panic(err)
	}
	return c
}

// Kids returns the child sequence for traversal, nil for non-child
// kinds. Callers must not modify the returned slice.
func (n *Node) Kids() []*Node {
	if n.kind.Shape() != KidsShape {
		return nil
	}
	return n.kids
}

func (n *Node) Int() (int64, error) {
	if n.kind.Shape() != IntShape {
		return 0, fmt.Errorf("%w: %s node has no integer payload", ErrKindMismatch, n.kind)
	}
	return n.ival, nil
}

func (n *Node) Float() (float64, error) {
	if n.kind.Shape() != FloatShape {
		return 0, fmt.Errorf("%w: %s node has no float payload", ErrKindMismatch, n.kind)
	}
	return n.fval, nil
}

func (n *Node) Str() (string, error) {
	if n.kind.Shape() != TextShape {
		return "", fmt.Errorf("%w: %s node has no text payload", ErrKindMismatch, n.kind)
	}
	return n.sval, nil
}

func (n *Node) Name() (*ident.Ident, error) {
	if n.kind.Shape() != IdentShape {
		return nil, fmt.Errorf("%w: %s node has no identifier payload", ErrKindMismatch, n.kind)
	}
	return n.name, nil
}

func (n *Node) Sym() (*sym.Symbol, error) {
	if n.kind.Shape() != SymbolShape {
		return nil, fmt.Errorf("%w: %s node has no symbol payload", ErrKindMismatch, n.kind)
	}
	return n.sym, nil
}

// Root walks parent links to the tree root.
func (n *Node) Root() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

// CloneTo deep-copies n into dst and returns dst. Ident and symbol
// payloads are shared, not copied: they are interned lookup values.
func (n *Node) CloneTo(dst *Node) *Node {
	dst.kind = n.kind
	dst.parent = n.parent
	dst.parentIndex = n.parentIndex
	dst.ival = n.ival
	dst.fval = n.fval
	dst.sval = n.sval
	dst.name = n.name
	dst.sym = n.sym
	if n.kids != nil {
		dst.kids = make([]*Node, len(n.kids))
		for i, kid := range n.kids {
			dstI := &Node{}
			kid.CloneTo(dstI)
			dstI.parent = dst
			dstI.parentIndex = i
			dst.kids[i] = dstI
		}
	}
	return dst
}

// ResolveIdent performs the one permitted identifier-to-symbol
// transition: it builds the symbol node for an identifier node and
// splices it into the parent at the same index. The replacement node
// is returned; the identifier node is detached unchanged, so readers
// holding it never observe a half-rewritten value. No other node is
// affected.
func (n *Node) ResolveIdent(s *sym.Symbol) (*Node, error) {
	if n.kind != IdentKind {
		return nil, fmt.Errorf("%w: cannot resolve %s node", ErrKindMismatch, n.kind)
	}
	if s == nil {
		return nil, fmt.Errorf("%w: nil symbol for resolution of %s", ErrKindMismatch, n.name)
	}
	res := &Node{kind: SymbolKind, sym: s, parent: n.parent, parentIndex: n.parentIndex}
	if n.parent != nil {
		n.parent.kids[n.parentIndex] = res
	}
	return res, nil
}

// String gives a one-line shallow description; render produces the
// full tree form.
func (n *Node) String() string {
	switch n.kind.Shape() {
	case NoneShape:
		return n.kind.String()
	case IntShape:
		return fmt.Sprintf("%s %d", n.kind, n.ival)
	case FloatShape:
		return fmt.Sprintf("%s %s", n.kind, strconv.FormatFloat(n.fval, 'g', -1, 64))
	case TextShape:
		return fmt.Sprintf("%s %q", n.kind, n.sval)
	case IdentShape:
		return fmt.Sprintf("%s %q", n.kind, n.name.Name())
	case SymbolShape:
		return fmt.Sprintf("%s %q", n.kind, n.sym.Name().Name())
	default:
		return fmt.Sprintf("%s(%d)", n.kind, len(n.kids))
	}
}
