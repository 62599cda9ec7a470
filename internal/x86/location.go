package x86

import (
	"fmt"

	"github.com/doctorn/slang/internal/diag"
)

// Register is the closed set of physical registers the generator uses.
// There is no dynamic extension: the calling convention is fixed and locals
// live on the stack, so these are all the registers emitted code ever names.
type Register int

const (
	rax Register = iota
	rbx
	rcx
	rdx
	rsp
	rbp
	rsi
	rdi
	r8
	r9
	rip
)

func (r Register) String() string {
	switch r {
	case rax:
		return "%rax"
	case rbx:
		return "%rbx"
	case rcx:
		return "%rcx"
	case rdx:
		return "%rdx"
	case rsp:
		return "%rsp"
	case rbp:
		return "%rbp"
	case rsi:
		return "%rsi"
	case rdi:
		return "%rdi"
	case r8:
		return "%r8"
	case r9:
		return "%r9"
	case rip:
		return "%rip"
	default:
		diag.Violationf("unknown register %d", int(r))
		return ""
	}
}

type locationKind int

const (
	locConstant locationKind = iota
	locRegister
	locMemory
	locRelative
)

// Location is an operand addressing mode: an integer immediate, a register,
// a register-relative memory slot, or a label-relative memory slot.
// A Constant is only legal as a source operand; that rule is the driver's to
// uphold and is not checked here.
type Location struct {
	kind   locationKind
	imm    int64
	reg    Register
	offset int64
	label  Label
}

// Constant wraps an integer immediate.
func Constant(c int64) Location {
	return Location{kind: locConstant, imm: c}
}

func register(r Register) Location {
	return Location{kind: locRegister, reg: r}
}

// Register-wrapping location constructors, one per physical register.

func Rax() Location { return register(rax) }
func Rbx() Location { return register(rbx) }
func Rcx() Location { return register(rcx) }
func Rdx() Location { return register(rdx) }
func Rsp() Location { return register(rsp) }
func Rbp() Location { return register(rbp) }
func Rsi() Location { return register(rsi) }
func Rdi() Location { return register(rdi) }
func R8() Location  { return register(r8) }
func R9() Location  { return register(r9) }
func Rip() Location { return register(rip) }

// Deref builds a memory operand at loc plus a byte offset. The base must be
// a register location; anything else is a bug in operand construction and
// aborts the compilation.
func Deref(loc Location, offset int64) Location {
	if loc.kind != locRegister {
		diag.Violationf("non-register used as memory base: %s", loc)
	}
	return Location{kind: locMemory, reg: loc.reg, offset: offset}
}

// Relative builds a label-relative memory operand based on loc. Like Deref,
// the base must be a register location.
func Relative(loc Location, label Label) Location {
	if loc.kind != locRegister {
		diag.Violationf("non-register used as memory base: %s", loc)
	}
	return Location{kind: locRelative, reg: loc.reg, label: label}
}

// String renders the operand in AT&T syntax: "$c", "%reg", "off(%reg)" or
// "label(%reg)".
func (l Location) String() string {
	switch l.kind {
	case locConstant:
		return fmt.Sprintf("$%d", l.imm)
	case locRegister:
		return l.reg.String()
	case locMemory:
		return fmt.Sprintf("%d(%s)", l.offset, l.reg)
	case locRelative:
		return fmt.Sprintf("%s(%s)", l.label, l.reg)
	default:
		diag.Violationf("unknown location kind %d", int(l.kind))
		return ""
	}
}
