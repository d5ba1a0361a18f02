// Package ast provides the syntax tree for quill source text.
//
// # Overview
//
// The tree is a single recursive tagged structure: every construct of
// the language is a Node with one Kind and one payload. Which payload
// a node carries is a pure function of its kind (see Shape); child
// order is significant and preserved exactly as constructed.
//
// # Node Structure
//
// A Node holds exactly one of:
//
//   - nothing (absence marker, nil literal)
//   - an integer (integer literals, chars as code points)
//   - a float (float literals)
//   - text (string literal variants)
//   - an interned identifier (pre-resolution)
//   - a resolved symbol (post-resolution)
//   - an ordered child sequence (every call, expression, statement and
//     branch form)
//
// Multiple literal kinds share one payload shape but stay distinct
// kinds, so a consumer reproducing the source (a pretty-printer
// keeping a width suffix or a raw-string prefix) does not lose the
// surface distinction.
//
// # Creating Nodes
//
// Use the constructor functions to create nodes:
//
//	n, err := ast.New(ast.InfixKind, op, lhs, rhs)
//	lit, err := ast.FromInt(ast.IntLitKind, 42)
//	s, err := ast.FromStr(ast.StrLitKind, "abc")
//	id, err := ast.FromIdent(ast.IdentKind, idents.Intern("x"))
//	e := ast.Empty()
//
// Constructors validate only the payload-shape contract. Construct
// arity ("a for statement has at least 4 children") is the producing
// parser's concern.
//
// # Optional parts
//
// A syntactically optional child is omitted from the sequence (an
// if statement without else has no else child). A mandatory slot with
// nothing to fill it holds an EmptyKind node (a bare return holds one
// Empty child). Which encoding applies is fixed per construct by the
// parse package.
//
// # Accessing Nodes
//
// Access is checked: Child(i) fails with ErrKindMismatch on a
// non-child-sequence node and with ErrOutOfRange past the end; the
// scalar accessors (Int, Float, Str, Name, Sym) fail with
// ErrKindMismatch on the wrong kind. Nothing is coerced or clamped.
// These are the package's only two error conditions; both are
// programmer errors surfaced synchronously, and neither leaves a tree
// partially modified.
//
// # Resolution
//
// The one permitted post-construction transition is ResolveIdent,
// which replaces an identifier node with a symbol node in its parent's
// child sequence at the same index. The tree is otherwise immutable
// after construction, so completed trees are safe for concurrent
// read-only traversal. Concurrent construction or resolution of the
// same tree is not supported.
//
// # Related Packages
//
//   - github.com/quill-lang/go-quill/parse - builds trees from source text
//   - github.com/quill-lang/go-quill/render - canonical tree descriptions
//   - github.com/quill-lang/go-quill/resolve - identifier-to-symbol rewriting
//   - github.com/quill-lang/go-quill/query - predicate matching over trees
package ast
