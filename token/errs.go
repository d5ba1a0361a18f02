package token

import "errors"

var (
	ErrToken = errors.New("tokenize error")

	errNumber       = errors.New("malformed number")
	errNumberSuffix = errors.New("malformed numeric suffix")
	errString       = errors.New("unterminated string")
	errChar         = errors.New("malformed character literal")
	errEscape       = errors.New("invalid escape")
)
