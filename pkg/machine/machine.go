// Package machine executes the straight-line accumulator programs the
// compiler emits, either as abstract instructions or as assembly text
// for any of the supported targets.
package machine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/brenoafb/addsub/pkg/compiler"
)

// Eval runs abstract instructions and returns the accumulator at the
// first OpRet. Arithmetic wraps like a 64-bit register.
func Eval(code []compiler.Instruction) (int64, error) {
	var (
		acc    int64
		loaded bool
	)

	for i, ins := range code {
		switch ins.Op {
		case compiler.OpLoad:
			acc = int64(ins.Imm)
			loaded = true
		case compiler.OpAdd, compiler.OpSub:
			if !loaded {
				return 0, fmt.Errorf("instruction %d: '%s' before load", i, ins)
			}
			if ins.Op == compiler.OpAdd {
				acc += int64(ins.Imm)
			} else {
				acc -= int64(ins.Imm)
			}
		case compiler.OpRet:
			if !loaded {
				return 0, fmt.Errorf("instruction %d: return before load", i)
			}
			return acc, nil
		default:
			return 0, fmt.Errorf("instruction %d: unknown op %s", i, ins.Op)
		}
	}

	return 0, fmt.Errorf("program ended without return")
}

type Machine struct {
	regs map[string]int64
}

func New() *Machine {
	return &Machine{regs: make(map[string]int64)}
}

type parsedLine struct {
	lineNo   int
	mnemonic string
	operands []string
}

// Exec runs assembly text and returns the value of ret at the first
// "ret". Directives and labels are skipped.
func Exec(src string, ret string) (int64, error) {
	return New().Exec(src, ret)
}

func (m *Machine) Exec(src string, ret string) (int64, error) {
	for i, raw := range strings.Split(src, "\n") {
		p, ok, err := parseLine(raw, i+1)
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}

		done, err := m.step(p)
		if err != nil {
			return 0, err
		}
		if done {
			return m.read(ret, p.lineNo)
		}
	}

	return 0, fmt.Errorf("program ended without ret")
}

func (m *Machine) step(p parsedLine) (bool, error) {
	switch p.mnemonic {
	case "ret":
		if err := arity(p, 0); err != nil {
			return false, err
		}
		return true, nil

	case "mov", "li":
		if err := arity(p, 2); err != nil {
			return false, err
		}
		v, err := m.value(p.operands[1], p.lineNo)
		if err != nil {
			return false, err
		}
		return false, m.write(p.operands[0], v, p.lineNo)

	case "add", "sub":
		// x86 "add rd, src" or RISC-V "add rd, rs1, rs2"
		var a, b string
		switch len(p.operands) {
		case 2:
			a, b = p.operands[0], p.operands[1]
		case 3:
			if !isRegister(p.operands[2]) {
				return false, fmt.Errorf("line %d: %s expects register operands", p.lineNo, p.mnemonic)
			}
			a, b = p.operands[1], p.operands[2]
		default:
			return false, fmt.Errorf("line %d: %s expects 2 or 3 operands, got %d", p.lineNo, p.mnemonic, len(p.operands))
		}
		x, err := m.read(a, p.lineNo)
		if err != nil {
			return false, err
		}
		y, err := m.value(b, p.lineNo)
		if err != nil {
			return false, err
		}
		if p.mnemonic == "add" {
			return false, m.write(p.operands[0], x+y, p.lineNo)
		}
		return false, m.write(p.operands[0], x-y, p.lineNo)

	case "addi":
		if err := arity(p, 3); err != nil {
			return false, err
		}
		x, err := m.read(p.operands[1], p.lineNo)
		if err != nil {
			return false, err
		}
		imm, err := parseImmediate(p.operands[2], p.lineNo)
		if err != nil {
			return false, err
		}
		if imm < -2048 || imm > 2047 {
			return false, fmt.Errorf("line %d: addi immediate %d out of 12-bit range", p.lineNo, imm)
		}
		return false, m.write(p.operands[0], x+imm, p.lineNo)
	}

	return false, fmt.Errorf("line %d: unknown mnemonic '%s'", p.lineNo, p.mnemonic)
}

func arity(p parsedLine, n int) error {
	if len(p.operands) != n {
		return fmt.Errorf("line %d: %s expects %d operands, got %d", p.lineNo, p.mnemonic, n, len(p.operands))
	}
	return nil
}

func (m *Machine) read(reg string, lineNo int) (int64, error) {
	if !isRegister(reg) {
		return 0, fmt.Errorf("line %d: '%s' is not a register", lineNo, reg)
	}
	v, ok := m.regs[reg]
	if !ok {
		return 0, fmt.Errorf("line %d: read of uninitialized register %s", lineNo, reg)
	}
	return v, nil
}

func (m *Machine) write(reg string, v int64, lineNo int) error {
	if !isRegister(reg) {
		return fmt.Errorf("line %d: cannot write to '%s'", lineNo, reg)
	}
	m.regs[reg] = v
	return nil
}

// value resolves a register or immediate operand.
func (m *Machine) value(operand string, lineNo int) (int64, error) {
	if isRegister(operand) {
		return m.read(operand, lineNo)
	}
	return parseImmediate(operand, lineNo)
}

func parseImmediate(token string, lineNo int) (int64, error) {
	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid immediate '%s'", lineNo, token)
	}
	return v, nil
}

func isRegister(s string) bool {
	if s == "" || !unicode.IsLetter(rune(s[0])) {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func stripComments(line string) string {
	if idx := strings.IndexAny(line, "#;"); idx >= 0 {
		return line[:idx]
	}
	return line
}

// parseLine reports ok=false for blank lines, directives and labels.
func parseLine(raw string, lineNo int) (parsedLine, bool, error) {
	line := strings.TrimSpace(stripComments(raw))
	if line == "" || strings.HasPrefix(line, ".") || strings.HasSuffix(line, ":") {
		return parsedLine{}, false, nil
	}

	mnemonic, rest := line, ""
	if idx := strings.IndexFunc(line, unicode.IsSpace); idx >= 0 {
		mnemonic, rest = line[:idx], line[idx:]
	}
	p := parsedLine{
		lineNo:   lineNo,
		mnemonic: strings.ToLower(mnemonic),
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return p, true, nil
	}

	for _, op := range strings.Split(rest, ",") {
		op = strings.TrimSpace(op)
		if op == "" {
			return parsedLine{}, false, fmt.Errorf("line %d: empty operand", lineNo)
		}
		p.operands = append(p.operands, op)
	}

	return p, true, nil
}
