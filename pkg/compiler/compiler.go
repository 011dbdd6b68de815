package compiler

import (
	"fmt"
	"io"

	"github.com/brenoafb/addsub/pkg/expr"
	"github.com/brenoafb/addsub/pkg/parser"
)

type Op int

const (
	OpLoad Op = iota
	OpAdd
	OpSub
	OpRet
)

func (op Op) String() string {
	switch op {
	case OpLoad:
		return "load"
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpRet:
		return "ret"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

// Instruction is one step of the accumulator machine. Imm is unused
// for OpRet.
type Instruction struct {
	Op  Op
	Imm uint64
}

func (i Instruction) String() string {
	if i.Op == OpRet {
		return i.Op.String()
	}
	return fmt.Sprintf("%s %d", i.Op, i.Imm)
}

// Generate lowers terms to accumulator instructions in term order. terms
// must be non-empty and start with a positive term, which Parse
// guarantees; an empty slice yields no instructions.
func Generate(terms []expr.Term) []Instruction {
	if len(terms) == 0 {
		return nil
	}

	code := make([]Instruction, 0, len(terms)+1)
	code = append(code, Instruction{Op: OpLoad, Imm: terms[0].Magnitude})

	for _, t := range terms[1:] {
		op := OpAdd
		if t.IsNegative() {
			op = OpSub
		}
		code = append(code, Instruction{Op: op, Imm: t.Magnitude})
	}

	return append(code, Instruction{Op: OpRet})
}

type Compiler struct {
	W      io.Writer
	Target *Target
}

func NewCompiler(w io.Writer) *Compiler {
	return &Compiler{W: w, Target: X86_64}
}

// Compile translates one expression into a complete assembly listing.
// Nothing is written unless the expression is valid.
func (c *Compiler) Compile(code string) error {
	tokens, err := parser.Tokenize(code)
	if err != nil {
		return fmt.Errorf("tokenizer error: %w", err)
	}

	terms, err := parser.Parse(tokens)
	if err != nil {
		return fmt.Errorf("parser error: %w", err)
	}

	return c.CompileTerms(terms)
}

func (c *Compiler) CompileTerms(terms []expr.Term) error {
	if len(terms) == 0 {
		return fmt.Errorf("nothing to compile")
	}
	if terms[0].IsNegative() {
		return fmt.Errorf("first term must be positive, got %s", terms[0])
	}

	if err := c.preamble(); err != nil {
		return err
	}

	for _, ins := range Generate(terms) {
		if err := c.compileInstruction(ins); err != nil {
			return err
		}
	}

	return nil
}

func (c *Compiler) compileInstruction(ins Instruction) error {
	lower, ok := c.target().lower[ins.Op]
	if !ok {
		return fmt.Errorf("%s: unsupported instruction '%s'", c.target().Name, ins)
	}

	if err := lower(c, ins.Imm); err != nil {
		return fmt.Errorf("error compiling '%s': %w", ins, err)
	}

	return nil
}

func (c *Compiler) target() *Target {
	if c.Target == nil {
		return X86_64
	}
	return c.Target
}

// emit writes one instruction line with the usual two-space indent.
func (c *Compiler) emit(format string, args ...any) error {
	_, err := fmt.Fprintf(c.W, "  "+format+"\n", args...)
	return err
}

func (c *Compiler) preamble() error {
	for _, line := range c.target().Preamble {
		if _, err := fmt.Fprintln(c.W, line); err != nil {
			return err
		}
	}
	return nil
}
