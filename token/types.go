package token

type Type int

const (
	TEOF Type = iota
	TNewline
	TIdent
	TKeyword
	TInt
	TFloat
	TChar
	TStr
	TRawStr
	TTripleStr
	TOp
	TComma
	TSemi
	TColon
	TLPar
	TRPar
	TLSquare
	TRSquare
	TLCurly
	TRCurly
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TEOF:       "TEOF",
		TNewline:   "TNewline",
		TIdent:     "TIdent",
		TKeyword:   "TKeyword",
		TInt:       "TInt",
		TFloat:     "TFloat",
		TChar:      "TChar",
		TStr:       "TStr",
		TRawStr:    "TRawStr",
		TTripleStr: "TTripleStr",
		TOp:        "TOp",
		TComma:     "TComma",
		TSemi:      "TSemi",
		TColon:     "TColon",
		TLPar:      "TLPar",
		TRPar:      "TRPar",
		TLSquare:   "TLSquare",
		TRSquare:   "TRSquare",
		TLCurly:    "TLCurly",
		TRCurly:    "TRCurly",
	}[t]
	if ok {
		return s
	}
	return "<unknown token type>"
}

// Token is one lexical element. Text is the raw lexeme; the decoded
// payload lives in Str, Int or Float depending on Type. Width carries
// the bit width of a suffix-tagged numeric literal (0 when untagged).
type Token struct {
	Type  Type
	Text  string
	Pos   Pos
	Str   string
	Int   int64
	Float float64
	Width int
}

// End is the byte offset one past the token's raw text.
func (t *Token) End() int {
	return t.Pos.Off + len(t.Text)
}

var keywords = map[string]bool{
	"if":       true,
	"elif":     true,
	"else":     true,
	"case":     true,
	"of":       true,
	"while":    true,
	"for":      true,
	"in":       true,
	"try":      true,
	"except":   true,
	"finally":  true,
	"return":   true,
	"yield":    true,
	"discard":  true,
	"break":    true,
	"continue": true,
	"nil":      true,
	"addr":     true,
	"cast":     true,
	"and":      true,
	"or":       true,
	"not":      true,
}

func Keyword(s string) bool {
	return keywords[s]
}

// IsKeyword reports whether t is the given keyword.
func (t *Token) IsKeyword(s string) bool {
	return t.Type == TKeyword && t.Text == s
}

// IsOp reports whether t is the given operator.
func (t *Token) IsOp(s string) bool {
	return t.Type == TOp && t.Text == s
}
