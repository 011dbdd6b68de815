package parser

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

type TokenType int

const (
	TokenNumber TokenType = iota
	TokenOperator
	TokenEOF
)

// Token is a lexical unit of an expression. Offset is the character
// offset of its first character in the input.
type Token struct {
	Typ    TokenType
	Number uint64
	Op     rune
	Offset int
}

func number(n uint64, offset int) Token {
	return Token{
		Typ:    TokenNumber,
		Number: n,
		Offset: offset,
	}
}

func operator(op rune, offset int) Token {
	return Token{
		Typ:    TokenOperator,
		Op:     op,
		Offset: offset,
	}
}

func eof(offset int) Token {
	return Token{
		Typ:    TokenEOF,
		Offset: offset,
	}
}

func (t Token) String() string {
	switch t.Typ {
	case TokenNumber:
		return fmt.Sprintf("number %d", t.Number)
	case TokenOperator:
		return fmt.Sprintf("'%c'", t.Op)
	case TokenEOF:
		return "end of input"
	default:
		return "unknown token"
	}
}

// Tokens is an immutable token sequence. The last element is always
// the only TokenEOF in it.
type Tokens struct {
	tokens []Token
}

func (t *Tokens) append(tok Token) {
	t.tokens = append(t.tokens, tok)
}

func (t *Tokens) Len() int {
	return len(t.tokens)
}

// All returns a copy of the underlying tokens.
func (t *Tokens) All() []Token {
	out := make([]Token, len(t.tokens))
	copy(out, t.tokens)
	return out
}

// Cursor returns a cursor positioned at the first token.
func (t *Tokens) Cursor() Cursor {
	return Cursor{tokens: t.tokens}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Tokenize scans code once, left to right. It stops at the first
// character it cannot place in a token and returns no tokens in that
// case.
func Tokenize(code string) (*Tokens, error) {
	runes := []rune(code)

	tokens := Tokens{
		tokens: make([]Token, 0),
	}

	i := 0

	for i < len(runes) {
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}

		if i >= len(runes) {
			break
		}

		if runes[i] == '+' || runes[i] == '-' {
			tokens.append(operator(runes[i], i))
			i++
			continue
		}

		var start int

		for start = i; i < len(runes) && isDigit(runes[i]); i++ {
		}

		if start != i {
			// magnitudes must fit a signed 64-bit register
			n, err := strconv.ParseUint(string(runes[start:i]), 10, 63)
			if err != nil {
				if errors.Is(err, strconv.ErrRange) {
					return nil, &LexError{
						Err:    ErrNumericOverflow,
						Offset: start,
						Char:   runes[start],
						Text:   string(runes[start:i]),
					}
				}
				return nil, fmt.Errorf("error tokenizing number: %w", err)
			}

			tokens.append(number(n, start))
			continue
		}

		return nil, &LexError{
			Err:    ErrUnexpectedChar,
			Offset: i,
			Char:   runes[i],
			Text:   string(runes[i]),
		}
	}

	tokens.append(eof(len(runes)))

	return &tokens, nil
}
