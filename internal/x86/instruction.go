package x86

import (
	"fmt"

	"github.com/doctorn/slang/internal/diag"
)

type opcode int

const (
	opLabel opcode = iota
	opPush
	opPop
	opNot
	opNeg
	opAdd
	opSub
	opMul
	opXor
	opCmp
	opJmp
	opJe
	opJge
	opJne
	opMov
	opLea
	opCall
	opRet
)

// instruction is one emittable operation together with its operands.
// Binary forms are ordered (source, destination), AT&T style. No legality
// checking happens here: an instruction with two memory operands renders
// just fine and it is the driver's job never to build one.
type instruction struct {
	op     opcode
	src    Location
	dst    Location
	label  Label
	symbol string
}

// String renders the instruction as a single newline-prefixed, tab-indented
// assembler line with the "q" operand-size suffix. A label marker renders as
// a bare "name:" line preceded by a blank line, which visually separates
// blocks and functions in the concatenated output.
func (in instruction) String() string {
	switch in.op {
	case opLabel:
		return fmt.Sprintf("\n\n%s:", in.label)
	case opPush:
		return fmt.Sprintf("\n\tpushq %s", in.dst)
	case opPop:
		return fmt.Sprintf("\n\tpopq %s", in.dst)
	case opNot:
		return fmt.Sprintf("\n\tnotq %s", in.dst)
	case opNeg:
		return fmt.Sprintf("\n\tnegq %s", in.dst)
	case opAdd:
		return fmt.Sprintf("\n\taddq %s,%s", in.src, in.dst)
	case opSub:
		return fmt.Sprintf("\n\tsubq %s,%s", in.src, in.dst)
	case opMul:
		return fmt.Sprintf("\n\timulq %s,%s", in.src, in.dst)
	case opXor:
		return fmt.Sprintf("\n\txorq %s,%s", in.src, in.dst)
	case opCmp:
		return fmt.Sprintf("\n\tcmpq %s,%s", in.src, in.dst)
	case opJmp:
		return fmt.Sprintf("\n\tjmp %s", in.label)
	case opJe:
		return fmt.Sprintf("\n\tje %s", in.label)
	case opJge:
		return fmt.Sprintf("\n\tjge %s", in.label)
	case opJne:
		return fmt.Sprintf("\n\tjne %s", in.label)
	case opMov:
		return fmt.Sprintf("\n\tmovq %s,%s", in.src, in.dst)
	case opLea:
		return fmt.Sprintf("\n\tleaq %s,%s", in.src, in.dst)
	case opCall:
		return fmt.Sprintf("\n\tcall %s", in.symbol)
	case opRet:
		return "\n\tret"
	default:
		diag.Violationf("unknown opcode %d", int(in.op))
		return ""
	}
}
