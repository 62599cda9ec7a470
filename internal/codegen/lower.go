package codegen

import (
	"fmt"

	"github.com/doctorn/slang/internal/past"
	"github.com/doctorn/slang/internal/x86"
)

// compile lowers one expression. The contract throughout is that every
// expression leaves its value in %rax; unit-valued forms leave 0.
func (c *Compiler) compile(code *x86.Code, expr past.Expr) {
	switch e := expr.(type) {
	case *past.Unit:
		code.Mov(x86.Constant(0), x86.Rax())
	case *past.What:
		// Input is read by the runtime; the helper returns the integer
		// in %rax per the C convention.
		code.Call("read_int")
	case *past.Int:
		code.Mov(x86.Constant(e.Value), x86.Rax())
	case *past.Bool:
		if e.Value {
			code.Mov(x86.Constant(1), x86.Rax())
		} else {
			code.Mov(x86.Constant(0), x86.Rax())
		}
	case *past.Var:
		if !bound(code, e.Name) {
			c.failExpr(code, "reference to unbound variable", e)
			return
		}
		code.Mov(code.Env().Get(e.Name), x86.Rax())
	case *past.Unary:
		c.compileUnary(code, e)
	case *past.Binary:
		c.compileBinary(code, e)
	case *past.If:
		c.compileIf(code, e)
	case *past.While:
		c.compileWhile(code, e)
	case *past.Seq:
		c.compileSeq(code, e)
	case *past.Let:
		c.compile(code, e.Value)
		slot := code.Env().Allocate(e.Var)
		code.Mov(x86.Rax(), slot)
		c.compile(code, e.Body)
	case *past.Ref:
		c.compileRef(code, e)
	case *past.Deref:
		c.compile(code, e.Sub)
		code.Mov(x86.Deref(x86.Rax(), 0), x86.Rax())
	case *past.Assign:
		c.compileAssign(code, e)
	default:
		// Pairs, unions, lambdas and division need runtime support and
		// instructions outside the closed set.
		c.failExpr(code, "unsupported construct in code generation", expr)
	}
}

func (c *Compiler) compileUnary(code *x86.Code, e *past.Unary) {
	c.compile(code, e.Sub)
	switch e.Op {
	case past.Neg:
		code.Neg(x86.Rax())
	case past.Not:
		// Booleans are 0/1, so flipping the low bit is the complement.
		code.Xor(x86.Constant(1), x86.Rax())
	default:
		c.failExpr(code, "unsupported unary operator in code generation", e)
	}
}

// compileBinary evaluates right first so the left operand ends up in %rax
// with the right in %rcx, matching the (source, destination) instruction
// order. And/Or short-circuit instead, so their right operand only runs when
// needed.
func (c *Compiler) compileBinary(code *x86.Code, e *past.Binary) {
	switch e.Op {
	case past.And:
		short := c.labels.Fresh()
		done := c.labels.Fresh()
		c.compile(code, e.Left)
		code.Cmp(x86.Constant(0), x86.Rax())
		code.Je(short)
		c.compile(code, e.Right)
		code.Jmp(done)
		code.Label(short)
		code.Mov(x86.Constant(0), x86.Rax())
		code.Label(done)
		return
	case past.Or:
		short := c.labels.Fresh()
		done := c.labels.Fresh()
		c.compile(code, e.Left)
		code.Cmp(x86.Constant(0), x86.Rax())
		code.Jne(short)
		c.compile(code, e.Right)
		code.Jmp(done)
		code.Label(short)
		code.Mov(x86.Constant(1), x86.Rax())
		code.Label(done)
		return
	case past.Div:
		c.failExpr(code, "integer division is not supported by the instruction set", e)
		return
	}

	c.compile(code, e.Right)
	code.Push(x86.Rax())
	c.compile(code, e.Left)
	code.Pop(x86.Rcx())

	switch e.Op {
	case past.Add:
		code.Add(x86.Rcx(), x86.Rax())
	case past.Sub:
		code.Sub(x86.Rcx(), x86.Rax())
	case past.Mul:
		code.Mul(x86.Rcx(), x86.Rax())
	case past.Lt:
		c.compare(code, code.Jge)
	case past.Eq, past.Eqb, past.Eqi:
		c.compare(code, code.Jne)
	default:
		c.failExpr(code, "unsupported operator in code generation", e)
	}
}

// compare materializes a comparison as 0/1 in %rax. The flags are set from
// %rax minus %rcx (left minus right); jumpIfFalse is the jump that skips the
// true case.
func (c *Compiler) compare(code *x86.Code, jumpIfFalse func(x86.Label)) {
	falsehood := c.labels.Fresh()
	done := c.labels.Fresh()
	code.Cmp(x86.Rcx(), x86.Rax())
	jumpIfFalse(falsehood)
	code.Mov(x86.Constant(1), x86.Rax())
	code.Jmp(done)
	code.Label(falsehood)
	code.Mov(x86.Constant(0), x86.Rax())
	code.Label(done)
}

func (c *Compiler) compileIf(code *x86.Code, e *past.If) {
	otherwise := c.labels.Fresh()
	done := c.labels.Fresh()
	c.compile(code, e.Cond)
	code.Cmp(x86.Constant(0), x86.Rax())
	code.Je(otherwise)
	c.compile(code, e.Then)
	code.Jmp(done)
	code.Label(otherwise)
	c.compile(code, e.Else)
	code.Label(done)
}

func (c *Compiler) compileWhile(code *x86.Code, e *past.While) {
	loop := c.labels.Fresh()
	done := c.labels.Fresh()
	code.Label(loop)
	c.compile(code, e.Cond)
	code.Cmp(x86.Constant(0), x86.Rax())
	code.Je(done)
	c.compile(code, e.Body)
	code.Jmp(loop)
	code.Label(done)
	// A loop evaluates to unit.
	code.Mov(x86.Constant(0), x86.Rax())
}

func (c *Compiler) compileSeq(code *x86.Code, e *past.Seq) {
	if len(e.Exprs) == 0 {
		code.Mov(x86.Constant(0), x86.Rax())
		return
	}
	for _, item := range e.Exprs {
		c.compile(code, item)
	}
}

// compileRef backs the cell with a hidden stack slot: store the value,
// then hand back the slot's address. The slot name contains a space so it
// can never collide with a source-level variable.
func (c *Compiler) compileRef(code *x86.Code, e *past.Ref) {
	c.compile(code, e.Sub)
	c.refs++
	slot := code.Env().Allocate(fmt.Sprintf("ref cell %d", c.refs))
	code.Mov(x86.Rax(), slot)
	code.Lea(slot, x86.Rax())
}

func (c *Compiler) compileAssign(code *x86.Code, e *past.Assign) {
	c.compile(code, e.Value)
	code.Push(x86.Rax())
	c.compile(code, e.Target)
	code.Pop(x86.Rcx())
	code.Mov(x86.Rcx(), x86.Deref(x86.Rax(), 0))
	// An assignment evaluates to unit.
	code.Mov(x86.Constant(0), x86.Rax())
}

// bound reports whether name has a binding, so the driver can report a
// diagnostic instead of tripping the environment's unbound-variable
// invariant (which assumes names were resolved by an earlier pass).
func bound(code *x86.Code, name string) bool {
	for _, b := range code.Env().Bindings() {
		if b.Name == name {
			return true
		}
	}
	return false
}
