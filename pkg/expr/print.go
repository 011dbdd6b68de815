package expr

import (
	"fmt"
	"strings"
)

func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

func (t Term) String() string {
	return fmt.Sprintf("%s%d", t.Sign, t.Magnitude)
}

// Format renders terms back into expression text, e.g. "12 + 5 - 3".
func Format(terms []Term) string {
	var sb strings.Builder

	for i, t := range terms {
		if i == 0 {
			fmt.Fprintf(&sb, "%d", t.Magnitude)
			continue
		}
		fmt.Fprintf(&sb, " %s %d", t.Sign, t.Magnitude)
	}

	return sb.String()
}
