// Package diag renders compiler errors for humans.
package diag

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Positioned is implemented by errors that know the character offset
// they refer to.
type Positioned interface {
	error
	Pos() int
}

// Report writes err to w. Errors that carry a position are shown under
// the input with a caret pointing at the offending character:
//
//	1 # 2
//	  ^ unexpected character '#' at offset 2
func Report(w io.Writer, input string, err error) {
	var pe Positioned
	if !errors.As(err, &pe) {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}

	fmt.Fprintln(w, input)
	fmt.Fprintf(w, "%s^ %v\n", indent(input, pe.Pos()), pe)
}

// indent pads up to rune offset loc, keeping tabs so the caret lines up
// with the echoed input.
func indent(input string, loc int) string {
	runes := []rune(input)
	if loc > len(runes) {
		loc = len(runes)
	}
	if loc < 0 {
		loc = 0
	}

	var sb strings.Builder
	for _, r := range runes[:loc] {
		if r == '\t' {
			sb.WriteRune('\t')
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}
