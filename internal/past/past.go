package past

import (
	"fmt"
	"strconv"
	"strings"
)

// Expr is the base interface for nodes of the parsed-and-typed expression
// tree ("past"). The frontend builds these trees; the backend only walks
// them. Every node prints itself back into surface syntax for listings and
// diagnostics.
type Expr interface {
	exprNode() // Dummy method to keep the set of expressions closed
	String() string
}

// sub prints an expression in operand position: atomic forms print bare,
// everything else is parenthesized.
func sub(e Expr) string {
	switch e.(type) {
	case *Unit, *What, *Var, *Int, *Lambda:
		return e.String()
	default:
		return "(" + e.String() + ")"
	}
}

// Unit is the sole value of type unit, written "()"
type Unit struct{}

func (e *Unit) exprNode()      {}
func (e *Unit) String() string { return "()" }

// What reads an integer from the outside world, written "?"
type What struct{}

func (e *What) exprNode()      {}
func (e *What) String() string { return "?" }

// Var references a bound variable by name
type Var struct {
	Name string
}

func (e *Var) exprNode()      {}
func (e *Var) String() string { return e.Name }

// Int is an integer literal
type Int struct {
	Value int64
}

func (e *Int) exprNode()      {}
func (e *Int) String() string { return strconv.FormatInt(e.Value, 10) }

// Bool is a boolean literal
type Bool struct {
	Value bool
}

func (e *Bool) exprNode()      {}
func (e *Bool) String() string { return strconv.FormatBool(e.Value) }

// Unary applies a unary operator to a sub-expression
type Unary struct {
	Op  UnOp
	Sub Expr
}

func (e *Unary) exprNode()      {}
func (e *Unary) String() string { return fmt.Sprintf("%s%s", e.Op, sub(e.Sub)) }

// Binary applies a binary operator to two sub-expressions
type Binary struct {
	Op    BinOp
	Left  Expr
	Right Expr
}

func (e *Binary) exprNode() {}

// The operator prints before its operands here; see the note on
// BinOp.String for the state of the operator display table.
func (e *Binary) String() string {
	return fmt.Sprintf("%s %s %s", e.Op, sub(e.Left), sub(e.Right))
}

// If chooses between two branches, written "if c then e1 else e2"
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (e *If) exprNode() {}
func (e *If) String() string {
	return fmt.Sprintf("if %s then %s else %s", sub(e.Cond), sub(e.Then), sub(e.Else))
}

// Pair builds a product value, written "(e1, e2)"
type Pair struct {
	Left  Expr
	Right Expr
}

func (e *Pair) exprNode()      {}
func (e *Pair) String() string { return fmt.Sprintf("(%s, %s)", sub(e.Left), sub(e.Right)) }

// Fst projects the first component of a pair
type Fst struct {
	Sub Expr
}

func (e *Fst) exprNode()      {}
func (e *Fst) String() string { return fmt.Sprintf("fst %s", sub(e.Sub)) }

// Snd projects the second component of a pair
type Snd struct {
	Sub Expr
}

func (e *Snd) exprNode()      {}
func (e *Snd) String() string { return fmt.Sprintf("snd %s", sub(e.Sub)) }

// Inl injects into the left side of a union type
type Inl struct {
	Sub  Expr
	Type Type
}

func (e *Inl) exprNode()      {}
func (e *Inl) String() string { return fmt.Sprintf("inl %s: %s", sub(e.Sub), e.Type) }

// Inr injects into the right side of a union type
type Inr struct {
	Sub  Expr
	Type Type
}

func (e *Inr) exprNode()      {}
func (e *Inr) String() string { return fmt.Sprintf("inr %s: %s", sub(e.Sub), e.Type) }

// Lambda is an anonymous function, written "fun x: t -> e"
// It doubles as the binder form used by Case, LetFun and LetRecFun
type Lambda struct {
	Var  string
	Type Type
	Body Expr
}

func (e *Lambda) exprNode() {}
func (e *Lambda) String() string {
	return fmt.Sprintf("fun %s: %s -> %s", e.Var, e.Type, sub(e.Body))
}

// Case eliminates a union value by branching on its injection
type Case struct {
	Sub   Expr
	Left  *Lambda
	Right *Lambda
}

func (e *Case) exprNode() {}
func (e *Case) String() string {
	return fmt.Sprintf("case %s inl(%s: %s) -> %s | inr(%s: %s) -> %s",
		sub(e.Sub),
		e.Left.Var, e.Left.Type, sub(e.Left.Body),
		e.Right.Var, e.Right.Type, sub(e.Right.Body))
}

// While loops until the condition turns false, written "while c do e end"
type While struct {
	Cond Expr
	Body Expr
}

func (e *While) exprNode() {}
func (e *While) String() string {
	return fmt.Sprintf("while %s do %s end", sub(e.Cond), sub(e.Body))
}

// Seq evaluates expressions in order; the value is the last one's
type Seq struct {
	Exprs []Expr
}

func (e *Seq) exprNode() {}
func (e *Seq) String() string {
	parts := make([]string, 0, len(e.Exprs))
	for _, item := range e.Exprs {
		parts = append(parts, sub(item))
	}
	return strings.Join(parts, "; ")
}

// Ref allocates a fresh mutable cell holding the sub-expression's value
type Ref struct {
	Sub Expr
}

func (e *Ref) exprNode()      {}
func (e *Ref) String() string { return fmt.Sprintf("ref %s", sub(e.Sub)) }

// Deref reads a mutable cell, written "!e"
type Deref struct {
	Sub Expr
}

func (e *Deref) exprNode()      {}
func (e *Deref) String() string { return fmt.Sprintf("!%s", sub(e.Sub)) }

// Assign stores into a mutable cell, written "e1 := e2"
type Assign struct {
	Target Expr
	Value  Expr
}

func (e *Assign) exprNode() {}
func (e *Assign) String() string {
	return fmt.Sprintf("%s := %s", sub(e.Target), sub(e.Value))
}

// App applies a function to an argument
type App struct {
	Fn  Expr
	Arg Expr
}

func (e *App) exprNode()      {}
func (e *App) String() string { return fmt.Sprintf("%s %s", sub(e.Fn), sub(e.Arg)) }

// Let binds a value in a body, written "let x: t = e in body end"
type Let struct {
	Var   string
	Type  Type
	Value Expr
	Body  Expr
}

func (e *Let) exprNode() {}
func (e *Let) String() string {
	return fmt.Sprintf("let %s: %s = %s in %s end", e.Var, e.Type, sub(e.Value), sub(e.Body))
}

// LetFun binds a named function in a body
type LetFun struct {
	Name   string
	Fun    *Lambda
	Return Type
	Body   Expr
}

func (e *LetFun) exprNode() {}
func (e *LetFun) String() string {
	return fmt.Sprintf("let %s (%s: %s): %s = %s in %s end",
		e.Name, e.Fun.Var, e.Fun.Type, e.Return, sub(e.Fun.Body), sub(e.Body))
}

// LetRecFun is LetFun with the function in scope inside its own body
type LetRecFun struct {
	Name   string
	Fun    *Lambda
	Return Type
	Body   Expr
}

func (e *LetRecFun) exprNode() {}
func (e *LetRecFun) String() string {
	return fmt.Sprintf("let %s (%s: %s): %s = %s in %s end",
		e.Name, e.Fun.Var, e.Fun.Type, e.Return, sub(e.Fun.Body), sub(e.Body))
}
