package ast

import "fmt"

// Kind identifies what syntactic construct a node represents. The set
// is closed at build time: every kind maps to exactly one payload
// shape, and the exhaustive switches in this package (Shape, Compare,
// Hash) must be extended together when a kind is added.
type Kind int

const (
	// EmptyKind marks a mandatory-but-unfilled slot in a fixed-arity
	// construct, e.g. the value of a bare return.
	EmptyKind Kind = iota

	IdentKind
	SymbolKind

	CharLitKind
	IntLitKind
	Int8LitKind
	Int16LitKind
	Int32LitKind
	Int64LitKind
	FloatLitKind
	Float32LitKind
	Float64LitKind
	StrLitKind
	RawStrLitKind
	TripleStrLitKind
	NilLitKind

	CommandKind
	CallKind
	InfixKind
	PrefixKind
	PostfixKind
	FieldEqKind

	DotExprKind
	IndexExprKind
	DerefKind
	AddrKind
	CastKind

	ParKind
	SetKind
	ArrayKind
	RangeKind

	IfExprKind
	IfStmtKind
	ElifBranchKind
	ElseKind
	CaseStmtKind
	OfBranchKind
	WhileStmtKind
	ForStmtKind
	TryStmtKind
	ExceptBranchKind
	FinallyKind

	ReturnStmtKind
	YieldStmtKind
	DiscardStmtKind
	BreakStmtKind
	ContinueStmtKind
	AsgnKind
	StmtListKind

	numKinds
)

var kindNames = map[Kind]string{
	EmptyKind:        "Empty",
	IdentKind:        "Ident",
	SymbolKind:       "Symbol",
	CharLitKind:      "CharLit",
	IntLitKind:       "IntLit",
	Int8LitKind:      "Int8Lit",
	Int16LitKind:     "Int16Lit",
	Int32LitKind:     "Int32Lit",
	Int64LitKind:     "Int64Lit",
	FloatLitKind:     "FloatLit",
	Float32LitKind:   "Float32Lit",
	Float64LitKind:   "Float64Lit",
	StrLitKind:       "StrLit",
	RawStrLitKind:    "RawStrLit",
	TripleStrLitKind: "TripleStrLit",
	NilLitKind:       "NilLit",
	CommandKind:      "Command",
	CallKind:         "Call",
	InfixKind:        "Infix",
	PrefixKind:       "Prefix",
	PostfixKind:      "Postfix",
	FieldEqKind:      "FieldEq",
	DotExprKind:      "DotExpr",
	IndexExprKind:    "IndexExpr",
	DerefKind:        "Deref",
	AddrKind:         "Addr",
	CastKind:         "Cast",
	ParKind:          "Par",
	SetKind:          "Set",
	ArrayKind:        "Array",
	RangeKind:        "Range",
	IfExprKind:       "IfExpr",
	IfStmtKind:       "IfStmt",
	ElifBranchKind:   "ElifBranch",
	ElseKind:         "Else",
	CaseStmtKind:     "CaseStmt",
	OfBranchKind:     "OfBranch",
	WhileStmtKind:    "WhileStmt",
	ForStmtKind:      "ForStmt",
	TryStmtKind:      "TryStmt",
	ExceptBranchKind: "ExceptBranch",
	FinallyKind:      "Finally",
	ReturnStmtKind:   "ReturnStmt",
	YieldStmtKind:    "YieldStmt",
	DiscardStmtKind:  "DiscardStmt",
	BreakStmtKind:    "BreakStmt",
	ContinueStmtKind: "ContinueStmt",
	AsgnKind:         "Asgn",
	StmtListKind:     "StmtList",
}

var kindValues = func() map[string]Kind {
	res := make(map[string]Kind, len(kindNames))
	for k, s := range kindNames {
		res[s] = k
	}
	return res
}()

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := kindValues[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	res := make([]Kind, 0, numKinds)
	for k := EmptyKind; k < numKinds; k++ {
		res = append(res, k)
	}
	return res
}

// Shape identifies which payload a node carries. It is a pure function
// of the node's kind.
type Shape int

const (
	NoneShape Shape = iota
	IntShape
	FloatShape
	TextShape
	IdentShape
	SymbolShape
	KidsShape
)

func (s Shape) String() string {
	ss, ok := map[Shape]string{
		NoneShape:   "None",
		IntShape:    "Int",
		FloatShape:  "Float",
		TextShape:   "Text",
		IdentShape:  "Ident",
		SymbolShape: "Symbol",
		KidsShape:   "Kids",
	}[s]
	if ok {
		return ss
	}
	return "<unknown shape>"
}

// Shape returns the payload shape of kind k.
//
// Char literals have integer shape: the payload is the character's
// code point, not its spelling.
func (k Kind) Shape() Shape {
	switch k {
	case EmptyKind, NilLitKind:
		return NoneShape
	case CharLitKind, IntLitKind, Int8LitKind, Int16LitKind, Int32LitKind, Int64LitKind:
		return IntShape
	case FloatLitKind, Float32LitKind, Float64LitKind:
		return FloatShape
	case StrLitKind, RawStrLitKind, TripleStrLitKind:
		return TextShape
	case IdentKind:
		return IdentShape
	case SymbolKind:
		return SymbolShape
	default:
		return KidsShape
	}
}

// IsLeaf reports whether nodes of kind k never carry children.
func (k Kind) IsLeaf() bool {
	return k.Shape() != KidsShape
}
