package past

import "fmt"

// Type is the base interface for slang type expressions
// Every type can print itself back into surface syntax
type Type interface {
	typeNode() // Dummy method to keep the set of types closed
	String() string
}

// UnitType is the one-value type written "unit"
type UnitType struct{}

func (t *UnitType) typeNode()      {}
func (t *UnitType) String() string { return "unit" }

// BoolType is written "bool"
type BoolType struct{}

func (t *BoolType) typeNode()      {}
func (t *BoolType) String() string { return "bool" }

// IntType is written "int"
type IntType struct{}

func (t *IntType) typeNode()      {}
func (t *IntType) String() string { return "int" }

// RefType is a mutable cell holding an Elem, written "T ref"
type RefType struct {
	Elem Type
}

func (t *RefType) typeNode()      {}
func (t *RefType) String() string { return fmt.Sprintf("%s ref", t.Elem) }

// ArrowType is a function type, written "T -> U"
// A function-typed domain is parenthesized so "(a -> b) -> c" and
// "a -> b -> c" stay distinguishable
type ArrowType struct {
	From Type
	To   Type
}

func (t *ArrowType) typeNode() {}
func (t *ArrowType) String() string {
	if _, ok := t.From.(*ArrowType); ok {
		return fmt.Sprintf("(%s) -> %s", t.From, t.To)
	}
	return fmt.Sprintf("%s -> %s", t.From, t.To)
}

// ProductType is a pair type, written "T * U"
type ProductType struct {
	Left  Type
	Right Type
}

func (t *ProductType) typeNode()      {}
func (t *ProductType) String() string { return fmt.Sprintf("%s * %s", t.Left, t.Right) }

// UnionType is a sum type, written "T | U"
type UnionType struct {
	Left  Type
	Right Type
}

func (t *UnionType) typeNode()      {}
func (t *UnionType) String() string { return fmt.Sprintf("%s | %s", t.Left, t.Right) }
