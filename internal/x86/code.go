package x86

import (
	"strings"

	"github.com/doctorn/slang/internal/diag"
)

// Code accumulates the instruction stream for a single function. A driver
// appends body instructions in the exact order they should appear, then
// calls Ret exactly once to finalize.
//
// The prologue cannot be emitted up front: locals are allocated lazily while
// the body is built, so the frame size is only known once the body is
// complete. Ret therefore synthesizes the prologue at finalization time and
// prepends it, leaving the appended body untouched in its original order.
type Code struct {
	entry Label
	env   *Environment
	asm   []instruction
	done  bool
}

// NewCode starts a fresh builder for the function entered at entry.
func NewCode(entry Label) *Code {
	return &Code{entry: entry, env: NewEnvironment()}
}

// Env exposes the function's variable environment for slot allocation and
// lookup while the body is being built.
func (c *Code) Env() *Environment {
	return c.env
}

func (c *Code) append(in instruction) {
	if c.done {
		diag.Violationf("instruction appended to finalized code for %s", c.entry)
	}
	c.asm = append(c.asm, in)
}

// Label marks a branch target at the current position.
func (c *Code) Label(label Label) {
	c.append(instruction{op: opLabel, label: label})
}

// Push pushes loc onto the stack.
func (c *Code) Push(loc Location) {
	c.append(instruction{op: opPush, dst: loc})
}

// Pop pops the top of the stack into loc.
func (c *Code) Pop(loc Location) {
	c.append(instruction{op: opPop, dst: loc})
}

// Mov moves source into target.
func (c *Code) Mov(source, target Location) {
	c.append(instruction{op: opMov, src: source, dst: target})
}

// Lea loads the effective address of source into target.
func (c *Code) Lea(source, target Location) {
	c.append(instruction{op: opLea, src: source, dst: target})
}

// Not inverts every bit of loc.
func (c *Code) Not(loc Location) {
	c.append(instruction{op: opNot, dst: loc})
}

// Neg arithmetically negates loc.
func (c *Code) Neg(loc Location) {
	c.append(instruction{op: opNeg, dst: loc})
}

// Add adds source into target.
func (c *Code) Add(source, target Location) {
	c.append(instruction{op: opAdd, src: source, dst: target})
}

// Sub subtracts source from target.
func (c *Code) Sub(source, target Location) {
	c.append(instruction{op: opSub, src: source, dst: target})
}

// Mul multiplies target by source (signed).
func (c *Code) Mul(source, target Location) {
	c.append(instruction{op: opMul, src: source, dst: target})
}

// Xor xors source into target.
func (c *Code) Xor(source, target Location) {
	c.append(instruction{op: opXor, src: source, dst: target})
}

// Cmp compares target against source, setting the flags for a later jump.
func (c *Code) Cmp(source, target Location) {
	c.append(instruction{op: opCmp, src: source, dst: target})
}

// Jmp jumps unconditionally to label.
func (c *Code) Jmp(label Label) {
	c.append(instruction{op: opJmp, label: label})
}

// Je jumps to label if the compared operands were equal.
func (c *Code) Je(label Label) {
	c.append(instruction{op: opJe, label: label})
}

// Jge jumps to label if the compared target was greater or equal.
func (c *Code) Jge(label Label) {
	c.append(instruction{op: opJge, label: label})
}

// Jne jumps to label if the compared operands differed.
func (c *Code) Jne(label Label) {
	c.append(instruction{op: opJne, label: label})
}

// Call calls the named symbol.
func (c *Code) Call(name string) {
	c.append(instruction{op: opCall, symbol: name})
}

// Ret finalizes the function and renders it to immutable text. It brackets
// the body with the calling convention:
//
//	entry:
//	        pushq %rbp
//	        movq %rsp,%rbp
//	        subq $N,%rsp        (only if N = allocated bytes > 0)
//	        ... body, in append order ...
//	        movq %rbp,%rsp
//	        popq %rbx
//	        ret
//
// Ret may be called once; the builder rejects any use afterwards.
func (c *Code) Ret() Assembly {
	if c.done {
		diag.Violationf("code for %s finalized twice", c.entry)
	}
	c.Mov(Rbp(), Rsp())
	c.Pop(Rbx())
	if n := c.env.allocated; n > 0 {
		c.asm = append([]instruction{{op: opSub, src: Constant(n), dst: Rsp()}}, c.asm...)
	}
	c.asm = append([]instruction{{op: opMov, src: Rsp(), dst: Rbp()}}, c.asm...)
	c.asm = append([]instruction{{op: opPush, dst: Rbp()}}, c.asm...)
	c.asm = append([]instruction{{op: opLabel, label: c.entry}}, c.asm...)
	c.asm = append(c.asm, instruction{op: opRet})
	c.done = true

	var out strings.Builder
	for _, in := range c.asm {
		out.WriteString(in.String())
	}
	return Assembly{text: out.String()}
}

// Assembly is the finished, immutable text of one function. It is the only
// artifact the backend hands to the external assembler.
type Assembly struct {
	text string
}

func (a Assembly) String() string {
	return a.text
}
