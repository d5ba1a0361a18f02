package token

import (
	"fmt"
	"strconv"
	"strings"
)

// number scans a numeric literal at the start of d and fills tok.
// Quill numbers are decimal with optional fraction, exponent and a
// width suffix in the style 42'i8 or 1.5'f32. A suffixed integer stays
// an integer of the tagged kind; f-suffixes force a float literal.
func number(d []byte, tok *Token) (int, error) {
	i := asciiDigits(d, 0)
	if i == 0 {
		return 0, fmt.Errorf("%w: %w", ErrToken, errNumber)
	}
	isFloat := false
	if i < len(d) && d[i] == '.' && i+1 < len(d) && asciiDigit(d[i+1]) {
		isFloat = true
		i = asciiDigits(d, i+1)
	}
	if n := exp(d[i:]); n > 0 {
		isFloat = true
		i += n
	}
	mant := string(d[:i])

	width := 0
	floatSuffix := false
	if i < len(d) && d[i] == '\'' {
		n, w, isF, err := numberSuffix(d[i:])
		if err != nil {
			return 0, err
		}
		i += n
		width = w
		floatSuffix = isF
	}

	tok.Text = string(d[:i])
	tok.Width = width
	if isFloat || floatSuffix {
		f, err := strconv.ParseFloat(mant, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %w: %v", ErrToken, errNumber, err)
		}
		tok.Type = TFloat
		tok.Float = f
		return i, nil
	}
	v, err := strconv.ParseInt(mant, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w: %v", ErrToken, errNumber, err)
	}
	tok.Type = TInt
	tok.Int = v
	return i, nil
}

// numberSuffix scans 'i8 / 'i16 / 'i32 / 'i64 / 'f32 / 'f64.
func numberSuffix(d []byte) (int, int, bool, error) {
	// d[0] == '\''
	i := 1
	for i < len(d) && (asciiDigit(d[i]) || d[i] == 'i' || d[i] == 'f') {
		i++
	}
	s := string(d[1:i])
	isFloat := strings.HasPrefix(s, "f")
	widths := map[string]int{
		"i8": 8, "i16": 16, "i32": 32, "i64": 64,
		"f32": 32, "f64": 64,
	}
	w, ok := widths[s]
	if !ok {
		return 0, 0, false, fmt.Errorf("%w: %w %q", ErrToken, errNumberSuffix, s)
	}
	return i, w, isFloat, nil
}

func asciiDigits(d []byte, i int) int {
	for i < len(d) && asciiDigit(d[i]) {
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	if i >= len(d) || !asciiDigit(d[i]) {
		return 0
	}
	return asciiDigits(d, i)
}
