package parser

import (
	"fmt"

	"github.com/brenoafb/addsub/pkg/expr"
)

// Parse turns a token sequence into terms following
//
//	expr := number (('+' | '-') number)*
//
// The first term is always positive. The first error aborts parsing.
func Parse(tokens *Tokens) ([]expr.Term, error) {
	if tokens == nil || tokens.Len() == 0 {
		return nil, fmt.Errorf("cannot parse empty token sequence")
	}

	c := tokens.Cursor()

	n, c, err := c.ExpectNumber()
	if err != nil {
		return nil, err
	}

	terms := []expr.Term{expr.Pos(n)}

	for !c.AtEnd() {
		var (
			ok   bool
			term expr.Term
		)

		if c, ok = c.Consume('+'); ok {
			n, c, err = c.ExpectNumber()
			if err != nil {
				return nil, err
			}
			term = expr.Pos(n)
		} else if c, ok = c.Consume('-'); ok {
			n, c, err = c.ExpectNumber()
			if err != nil {
				return nil, err
			}
			term = expr.Neg(n)
		} else {
			return nil, &ParseError{
				Err:   ErrExpectedOperator,
				Found: c.Peek(),
			}
		}

		terms = append(terms, term)
	}

	return terms, nil
}

// ParseString tokenizes and parses code.
func ParseString(code string) ([]expr.Term, error) {
	tokens, err := Tokenize(code)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}
