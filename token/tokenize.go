// Package token provides lexical analysis for quill source text.
package token

import (
	"fmt"
	"strings"
)

const opChars = "+-*/%<>=!&|@~^?$."

func opChar(c byte) bool {
	return strings.IndexByte(opChars, c) >= 0
}

func identStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func identChar(c byte) bool {
	return identStart(c) || asciiDigit(c)
}

// Tokenize scans d into a token sequence ending with a TEOF token.
// Newlines are significant and appear as TNewline tokens; comments run
// from '#' to end of line and are discarded.
func Tokenize(d []byte) ([]Token, error) {
	var (
		res  []Token
		i    int
		line int
		bol  int // offset of start of current line
	)
	pos := func() Pos {
		return Pos{Off: i, Line: line, Col: i - bol}
	}
	for i < len(d) {
		c := d[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '\n':
			res = append(res, Token{Type: TNewline, Text: "\n", Pos: pos()})
			i++
			line++
			bol = i
		case c == '#':
			for i < len(d) && d[i] != '\n' {
				i++
			}
		case asciiDigit(c):
			tok := Token{Pos: pos()}
			n, err := number(d[i:], &tok)
			if err != nil {
				return nil, fmt.Errorf("%w at %s", err, tok.Pos)
			}
			res = append(res, tok)
			i += n
		case c == '"':
			tok := Token{Pos: pos()}
			n, err := quoted(d[i:], &tok)
			if err != nil {
				return nil, fmt.Errorf("%w at %s", err, tok.Pos)
			}
			res = append(res, tok)
			i += n
			// triple-quoted strings may span lines
			if nl := strings.Count(tok.Text, "\n"); nl > 0 {
				line += nl
				bol = tok.Pos.Off + strings.LastIndexByte(tok.Text, '\n') + 1
			}
		case c == '\'':
			tok := Token{Pos: pos()}
			n, err := charLit(d[i:], &tok)
			if err != nil {
				return nil, fmt.Errorf("%w at %s", err, tok.Pos)
			}
			res = append(res, tok)
			i += n
		case c == 'r' && i+1 < len(d) && d[i+1] == '"':
			tok := Token{Pos: pos()}
			n, err := rawQuoted(d[i:], &tok)
			if err != nil {
				return nil, fmt.Errorf("%w at %s", err, tok.Pos)
			}
			res = append(res, tok)
			i += n
		case identStart(c):
			j := i
			for j < len(d) && identChar(d[j]) {
				j++
			}
			word := string(d[i:j])
			tt := TIdent
			if Keyword(word) {
				tt = TKeyword
			}
			res = append(res, Token{Type: tt, Text: word, Pos: pos()})
			i = j
		case opChar(c):
			j := i
			for j < len(d) && opChar(d[j]) {
				j++
			}
			res = append(res, Token{Type: TOp, Text: string(d[i:j]), Pos: pos()})
			i = j
		default:
			var tt Type
			switch c {
			case ',':
				tt = TComma
			case ';':
				tt = TSemi
			case ':':
				tt = TColon
			case '(':
				tt = TLPar
			case ')':
				tt = TRPar
			case '[':
				tt = TLSquare
			case ']':
				tt = TRSquare
			case '{':
				tt = TLCurly
			case '}':
				tt = TRCurly
			default:
				return nil, fmt.Errorf("%w: unexpected character %q at %s", ErrToken, c, pos())
			}
			res = append(res, Token{Type: tt, Text: string(c), Pos: pos()})
			i++
		}
	}
	res = append(res, Token{Type: TEOF, Pos: pos()})
	return res, nil
}
