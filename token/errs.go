package token

import "errors"

var (
	ErrBadEscape    = errors.New("invalid escape sequence")
	ErrUnterminated = errors.New("unterminated quoted string")
	ErrBadHeader    = errors.New("malformed array header")
	ErrMissingColon = errors.New("missing ':' after array header")
	ErrBadDelim     = errors.New("unknown delimiter name")
)
