package token

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// quoted scans a plain or triple-quoted string literal at d[0] == '"'.
func quoted(d []byte, tok *Token) (int, error) {
	if strings.HasPrefix(string(d), `"""`) {
		return tripleQuoted(d, tok)
	}
	var b strings.Builder
	i := 1
	for i < len(d) {
		c := d[i]
		switch c {
		case '"':
			tok.Type = TStr
			tok.Text = string(d[:i+1])
			tok.Str = b.String()
			return i + 1, nil
		case '\n':
			return 0, fmt.Errorf("%w: %w", ErrToken, errString)
		case '\\':
			r, n, err := escape(d[i:])
			if err != nil {
				return 0, err
			}
			b.WriteRune(r)
			i += n
		default:
			b.WriteByte(c)
			i++
		}
	}
	return 0, fmt.Errorf("%w: %w", ErrToken, errString)
}

// tripleQuoted scans """...""". No escapes; newlines are literal.
func tripleQuoted(d []byte, tok *Token) (int, error) {
	end := strings.Index(string(d[3:]), `"""`)
	if end < 0 {
		return 0, fmt.Errorf("%w: %w", ErrToken, errString)
	}
	i := 3 + end + 3
	tok.Type = TTripleStr
	tok.Text = string(d[:i])
	tok.Str = string(d[3 : 3+end])
	return i, nil
}

// rawQuoted scans r"...". The only escape is a doubled quote.
func rawQuoted(d []byte, tok *Token) (int, error) {
	// d[0] == 'r', d[1] == '"'
	var b strings.Builder
	i := 2
	for i < len(d) {
		c := d[i]
		switch c {
		case '"':
			if i+1 < len(d) && d[i+1] == '"' {
				b.WriteByte('"')
				i += 2
				continue
			}
			tok.Type = TRawStr
			tok.Text = string(d[:i+1])
			tok.Str = b.String()
			return i + 1, nil
		case '\n':
			return 0, fmt.Errorf("%w: %w", ErrToken, errString)
		default:
			b.WriteByte(c)
			i++
		}
	}
	return 0, fmt.Errorf("%w: %w", ErrToken, errString)
}

// charLit scans 'c'. The token's Int payload is the code point.
func charLit(d []byte, tok *Token) (int, error) {
	i := 1
	var r rune
	if i >= len(d) {
		return 0, fmt.Errorf("%w: %w", ErrToken, errChar)
	}
	if d[i] == '\\' {
		rr, n, err := escape(d[i:])
		if err != nil {
			return 0, err
		}
		r = rr
		i += n
	} else {
		rr, n := utf8.DecodeRune(d[i:])
		if rr == utf8.RuneError && n <= 1 {
			return 0, fmt.Errorf("%w: %w", ErrToken, errChar)
		}
		r = rr
		i += n
	}
	if i >= len(d) || d[i] != '\'' {
		return 0, fmt.Errorf("%w: %w", ErrToken, errChar)
	}
	i++
	tok.Type = TChar
	tok.Text = string(d[:i])
	tok.Int = int64(r)
	return i, nil
}

// escape decodes one backslash escape at d[0] == '\\' and returns the
// rune plus bytes consumed.
func escape(d []byte) (rune, int, error) {
	if len(d) < 2 {
		return 0, 0, fmt.Errorf("%w: %w", ErrToken, errEscape)
	}
	switch d[1] {
	case 'n':
		return '\n', 2, nil
	case 't':
		return '\t', 2, nil
	case 'r':
		return '\r', 2, nil
	case '0':
		return 0, 2, nil
	case '\\':
		return '\\', 2, nil
	case '"':
		return '"', 2, nil
	case '\'':
		return '\'', 2, nil
	case 'x':
		if len(d) < 4 {
			return 0, 0, fmt.Errorf("%w: %w", ErrToken, errEscape)
		}
		v, err := strconv.ParseUint(string(d[2:4]), 16, 8)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %w: %v", ErrToken, errEscape, err)
		}
		return rune(v), 4, nil
	}
	return 0, 0, fmt.Errorf("%w: %w \\%c", ErrToken, errEscape, d[1])
}
