package codegen

import (
	"fmt"

	"github.com/doctorn/slang/internal/past"
	"github.com/doctorn/slang/internal/x86"
)

// CodegenError is a user-facing diagnostic: the program asked for something
// the backend cannot express. These are collected, not thrown - unlike
// invariant violations, which abort the run (see internal/diag).
type CodegenError struct {
	Message string
	Context string
}

func (c *Compiler) addError(msg string, expr past.Expr) {
	ctx := ""
	if expr != nil {
		ctx = expr.String()
	}
	c.errors = append(c.errors, CodegenError{Message: msg, Context: ctx})
}

// failExpr records the diagnostic and emits a safe placeholder value so the
// surrounding code keeps a well-formed shape.
func (c *Compiler) failExpr(code *x86.Code, msg string, expr past.Expr) {
	c.addError(msg, expr)
	code.Mov(x86.Constant(0), x86.Rax())
}

// Errors returns the collected diagnostics formatted for display.
func (c *Compiler) Errors() []string {
	formatted := make([]string, 0, len(c.errors))
	for _, err := range c.errors {
		if err.Context == "" {
			formatted = append(formatted, err.Message)
			continue
		}
		formatted = append(formatted, fmt.Sprintf("%s (at `%s`)", err.Message, err.Context))
	}
	return formatted
}

// DetailedErrors returns the raw diagnostics.
func (c *Compiler) DetailedErrors() []CodegenError {
	out := make([]CodegenError, len(c.errors))
	copy(out, c.errors)
	return out
}
