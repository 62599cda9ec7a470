package x86

import "testing"

func TestInstructionRendering(t *testing.T) {
	target := GivenLabel("done")

	tests := []struct {
		in   instruction
		want string
	}{
		{instruction{op: opLabel, label: GivenLabel("main")}, "\n\nmain:"},
		{instruction{op: opPush, dst: Rbp()}, "\n\tpushq %rbp"},
		{instruction{op: opPop, dst: Rbx()}, "\n\tpopq %rbx"},
		{instruction{op: opNot, dst: Rax()}, "\n\tnotq %rax"},
		{instruction{op: opNeg, dst: Rax()}, "\n\tnegq %rax"},
		{instruction{op: opAdd, src: Rcx(), dst: Rax()}, "\n\taddq %rcx,%rax"},
		{instruction{op: opSub, src: Constant(16), dst: Rsp()}, "\n\tsubq $16,%rsp"},
		{instruction{op: opMul, src: Rcx(), dst: Rax()}, "\n\timulq %rcx,%rax"},
		{instruction{op: opXor, src: Constant(1), dst: Rax()}, "\n\txorq $1,%rax"},
		{instruction{op: opCmp, src: Constant(0), dst: Rax()}, "\n\tcmpq $0,%rax"},
		{instruction{op: opJmp, label: target}, "\n\tjmp done"},
		{instruction{op: opJe, label: target}, "\n\tje done"},
		{instruction{op: opJge, label: target}, "\n\tjge done"},
		{instruction{op: opJne, label: target}, "\n\tjne done"},
		{instruction{op: opMov, src: Deref(Rbp(), -8), dst: Rax()}, "\n\tmovq -8(%rbp),%rax"},
		{instruction{op: opLea, src: Deref(Rbp(), -8), dst: Rax()}, "\n\tleaq -8(%rbp),%rax"},
		{instruction{op: opCall, symbol: "read_int"}, "\n\tcall read_int"},
		{instruction{op: opRet}, "\n\tret"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Fatalf("instruction rendered %q, want %q", got, tt.want)
		}
	}
}

// Operand combinations are never validated: an instruction with two memory
// operands is the driver's mistake, not the library's, and renders as-is.
func TestMalformedCombinationsAreNotRejected(t *testing.T) {
	in := instruction{op: opMov, src: Deref(Rbp(), -8), dst: Deref(Rbp(), -16)}
	if got := in.String(); got != "\n\tmovq -8(%rbp),-16(%rbp)" {
		t.Fatalf("unexpected rendering %q", got)
	}
}
