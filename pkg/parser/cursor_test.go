package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func cursorFor(t *testing.T, code string) Cursor {
	t.Helper()
	tokens, err := Tokenize(code)
	require.NoError(t, err)
	return tokens.Cursor()
}

func TestCursorConsume(t *testing.T) {
	c := cursorFor(t, "+ 1")

	_, ok := c.Consume('-')
	require.False(t, ok)

	next, ok := c.Consume('+')
	require.True(t, ok)
	require.Equal(t, number(1, 2), next.Peek())

	// c itself did not move
	require.Equal(t, operator('+', 0), c.Peek())
}

func TestCursorExpect(t *testing.T) {
	c := cursorFor(t, "- 1")

	next, err := c.Expect('-')
	require.NoError(t, err)
	require.Equal(t, number(1, 2), next.Peek())

	_, err = c.Expect('+')
	require.ErrorIs(t, err, ErrExpectedSymbol)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, '+', pe.Expected)
	require.Equal(t, operator('-', 0), pe.Found)
	require.EqualError(t, err, "expected '+', found '-'")

	_, err = next.Expect('+')
	require.EqualError(t, err, "expected '+', found number 1")
}

func TestCursorExpectNumber(t *testing.T) {
	c := cursorFor(t, "12 +")

	n, next, err := c.ExpectNumber()
	require.NoError(t, err)
	require.Equal(t, uint64(12), n)
	require.Equal(t, operator('+', 3), next.Peek())

	_, same, err := next.ExpectNumber()
	require.ErrorIs(t, err, ErrExpectedNumber)
	require.Equal(t, next, same)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 3, pe.Pos())
}

func TestCursorAtEnd(t *testing.T) {
	c := cursorFor(t, "")
	require.True(t, c.AtEnd())
	require.Equal(t, eof(0), c.Peek())

	_, ok := c.Consume('+')
	require.False(t, ok)

	_, _, err := c.ExpectNumber()
	require.EqualError(t, err, "expected a number, found end of input")

	c = cursorFor(t, "5")
	require.False(t, c.AtEnd())
	_, c, err = c.ExpectNumber()
	require.NoError(t, err)
	require.True(t, c.AtEnd())
}

func TestCursorNeverPassesEOF(t *testing.T) {
	c := cursorFor(t, "1")
	_, c, err := c.ExpectNumber()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		c = c.next()
		require.True(t, c.AtEnd())
	}
}

func TestZeroCursor(t *testing.T) {
	var c Cursor
	require.True(t, c.AtEnd())
	require.Equal(t, eof(0), c.Peek())

	_, ok := c.Consume('+')
	require.False(t, ok)

	_, _, err := c.ExpectNumber()
	require.ErrorIs(t, err, ErrExpectedNumber)

	_, err = c.Expect('-')
	require.ErrorIs(t, err, ErrExpectedSymbol)
}
