package expr

type Sign int

const (
	Positive Sign = iota
	Negative
)

// Term is one signed contribution to the running total.
type Term struct {
	Sign      Sign
	Magnitude uint64
}

func Pos(n uint64) Term {
	return Term{
		Sign:      Positive,
		Magnitude: n,
	}
}

func Neg(n uint64) Term {
	return Term{
		Sign:      Negative,
		Magnitude: n,
	}
}

func (t Term) IsNegative() bool {
	return t.Sign == Negative
}

// Value evaluates terms strictly left to right, wrapping on overflow.
func Value(terms []Term) int64 {
	var acc int64
	for _, t := range terms {
		if t.IsNegative() {
			acc -= int64(t.Magnitude)
		} else {
			acc += int64(t.Magnitude)
		}
	}
	return acc
}
