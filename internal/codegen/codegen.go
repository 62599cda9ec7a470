package codegen

import (
	"strings"

	"github.com/doctorn/slang/internal/past"
	"github.com/doctorn/slang/internal/x86"
)

// Compiler drives the x86 backend: it walks a typed expression tree and
// lowers each construct into builder calls on an x86.Code. One Compiler is
// one compilation session; every function it compiles draws generated labels
// from the same allocator, so label numbers stay unique across the whole
// emitted program.
type Compiler struct {
	labels *x86.LabelAllocator
	errors []CodegenError
	refs   int // counter naming the hidden slots backing ref cells
}

// New creates a compiler with its own label allocator.
func New() *Compiler {
	return NewWithLabels(x86.NewLabelAllocator())
}

// NewWithLabels creates a compiler drawing labels from the given allocator.
// Tests use this for deterministic label numbering; drivers compiling
// functions concurrently share one allocator between sessions.
func NewWithLabels(labels *x86.LabelAllocator) *Compiler {
	return &Compiler{labels: labels}
}

// Compile lowers a whole program (a single top-level expression) into
// assembly text ready for the system assembler. The program's value is left
// in %rax, which the C calling convention turns into main's return value.
func (c *Compiler) Compile(program past.Expr) string {
	main := c.Function(x86.GivenLabel("main"), program)

	var out strings.Builder
	out.WriteString(".text")
	out.WriteString("\n.global main")
	out.WriteString(main.String())
	out.WriteString("\n")
	return out.String()
}

// Function lowers one expression as the body of the function entered at
// entry and returns its finalized assembly.
func (c *Compiler) Function(entry x86.Label, body past.Expr) x86.Assembly {
	code := x86.NewCode(entry)
	c.compile(code, body)
	return code.Ret()
}
