package parser

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedChar   = errors.New("unexpected character")
	ErrNumericOverflow  = errors.New("number out of range")
	ErrExpectedNumber   = errors.New("expected a number")
	ErrExpectedOperator = errors.New("expected '+' or '-'")
	ErrExpectedSymbol   = errors.New("expected symbol")
)

// LexError reports the character at which tokenization stopped.
type LexError struct {
	Err    error
	Offset int
	Char   rune
	Text   string
}

func (e *LexError) Error() string {
	if errors.Is(e.Err, ErrNumericOverflow) {
		return fmt.Sprintf("%s: %s", e.Err, e.Text)
	}
	return fmt.Sprintf("%s %q at offset %d", e.Err, e.Char, e.Offset)
}

func (e *LexError) Unwrap() error {
	return e.Err
}

func (e *LexError) Pos() int {
	return e.Offset
}

// ParseError reports the token that did not match what the grammar
// requires. Expected is only set for ErrExpectedSymbol.
type ParseError struct {
	Err      error
	Expected rune
	Found    Token
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrExpectedSymbol) {
		return fmt.Sprintf("expected '%c', found %s", e.Expected, e.Found)
	}
	return fmt.Sprintf("%s, found %s", e.Err, e.Found)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Pos() int {
	return e.Found.Offset
}
