package parser

// Cursor is a forward-only position in a token sequence. Cursors are
// values: every method that advances returns a new Cursor and leaves the
// receiver untouched. Obtain one from Tokens.Cursor; the zero Cursor
// behaves as an empty sequence.
type Cursor struct {
	tokens []Token
	pos    int
}

// Peek returns the current token. It never fails because the sequence
// always ends with TokenEOF and no method advances past it.
func (c Cursor) Peek() Token {
	if c.pos >= len(c.tokens) {
		return eof(0)
	}
	return c.tokens[c.pos]
}

func (c Cursor) next() Cursor {
	if c.AtEnd() {
		return c
	}
	return Cursor{tokens: c.tokens, pos: c.pos + 1}
}

func (c Cursor) isOperator(op rune) bool {
	tok := c.Peek()
	return tok.Typ == TokenOperator && tok.Op == op
}

// Consume advances past the current token if it is the operator op.
func (c Cursor) Consume(op rune) (Cursor, bool) {
	if !c.isOperator(op) {
		return c, false
	}
	return c.next(), true
}

// Expect is like Consume but a mismatch is an error.
func (c Cursor) Expect(op rune) (Cursor, error) {
	if !c.isOperator(op) {
		return c, &ParseError{
			Err:      ErrExpectedSymbol,
			Expected: op,
			Found:    c.Peek(),
		}
	}
	return c.next(), nil
}

// ExpectNumber returns the magnitude of the current token and a cursor
// past it.
func (c Cursor) ExpectNumber() (uint64, Cursor, error) {
	tok := c.Peek()
	if tok.Typ != TokenNumber {
		return 0, c, &ParseError{
			Err:   ErrExpectedNumber,
			Found: tok,
		}
	}
	return tok.Number, c.next(), nil
}

func (c Cursor) AtEnd() bool {
	return c.Peek().Typ == TokenEOF
}
