package compiler

import (
	"fmt"
	"math"
	"sort"
)

type lowering func(c *Compiler, imm uint64) error

// Target describes how the abstract instructions are spelled for one
// architecture.
type Target struct {
	Name           string
	Preamble       []string
	ReturnRegister string
	lower          map[Op]lowering
}

var (
	X86_64  *Target
	RISCV64 *Target
)

var targets map[string]*Target

func init() {
	X86_64 = &Target{
		Name: "x86-64",
		Preamble: []string{
			".intel_syntax noprefix",
			".globl main",
			"main:",
		},
		ReturnRegister: "rax",
		lower: map[Op]lowering{
			OpLoad: func(c *Compiler, imm uint64) error {
				// mov r64, imm64 takes any width
				return c.emit("mov rax, %d", imm)
			},
			OpAdd: func(c *Compiler, imm uint64) error {
				return x86Arith(c, "add", imm)
			},
			OpSub: func(c *Compiler, imm uint64) error {
				return x86Arith(c, "sub", imm)
			},
			OpRet: func(c *Compiler, _ uint64) error {
				return c.emit("ret")
			},
		},
	}

	RISCV64 = &Target{
		Name: "riscv64",
		Preamble: []string{
			"  .globl main",
			"main:",
		},
		ReturnRegister: "a0",
		lower: map[Op]lowering{
			OpLoad: func(c *Compiler, imm uint64) error {
				return c.emit("li a0, %d", imm)
			},
			OpAdd: func(c *Compiler, imm uint64) error {
				if imm <= 2047 {
					return c.emit("addi a0, a0, %d", imm)
				}
				if err := c.emit("li t0, %d", imm); err != nil {
					return err
				}
				return c.emit("add a0, a0, t0")
			},
			OpSub: func(c *Compiler, imm uint64) error {
				// addi takes a 12-bit signed immediate, so -2048 still fits
				if imm <= 2048 {
					return c.emit("addi a0, a0, -%d", imm)
				}
				if err := c.emit("li t0, %d", imm); err != nil {
					return err
				}
				return c.emit("sub a0, a0, t0")
			},
			OpRet: func(c *Compiler, _ uint64) error {
				return c.emit("ret")
			},
		},
	}

	targets = map[string]*Target{
		X86_64.Name:  X86_64,
		RISCV64.Name: RISCV64,
	}
}

// x86 arithmetic immediates are imm32 sign-extended; wider values go
// through rdi.
func x86Arith(c *Compiler, mnemonic string, imm uint64) error {
	if imm <= math.MaxInt32 {
		return c.emit("%s rax, %d", mnemonic, imm)
	}
	if err := c.emit("mov rdi, %d", imm); err != nil {
		return err
	}
	return c.emit("%s rax, rdi", mnemonic)
}

func LookupTarget(name string) (*Target, error) {
	t, ok := targets[name]
	if !ok {
		return nil, fmt.Errorf("unknown target '%s' (available: %v)", name, TargetNames())
	}
	return t, nil
}

func TargetNames() []string {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
