package past

import "testing"

func TestTypePrinting(t *testing.T) {
	tests := []struct {
		ty   Type
		want string
	}{
		{&UnitType{}, "unit"},
		{&BoolType{}, "bool"},
		{&IntType{}, "int"},
		{&RefType{Elem: &IntType{}}, "int ref"},
		{&ArrowType{From: &IntType{}, To: &BoolType{}}, "int -> bool"},
		{
			&ArrowType{
				From: &ArrowType{From: &IntType{}, To: &IntType{}},
				To:   &IntType{},
			},
			"(int -> int) -> int",
		},
		{
			&ArrowType{
				From: &IntType{},
				To:   &ArrowType{From: &IntType{}, To: &IntType{}},
			},
			"int -> int -> int",
		},
		{&ProductType{Left: &IntType{}, Right: &BoolType{}}, "int * bool"},
		{&UnionType{Left: &IntType{}, Right: &UnitType{}}, "int | unit"},
	}
	for _, tt := range tests {
		if got := tt.ty.String(); got != tt.want {
			t.Fatalf("type rendered %q, want %q", got, tt.want)
		}
	}
}

// Pins the operator display table as it stands, defects included; see the
// TODO on BinOp.String before "fixing" any of these.
func TestBinOpPrinting(t *testing.T) {
	tests := []struct {
		op   BinOp
		want string
	}{
		{Add, "+"},
		{Mul, "*"},
		{Div, "/"},
		{Sub, "-"},
		{Lt, "<"},
		{And, "&&"},
		{Or, "+"},
		{Eq, "="},
		{Eqb, "eqi"},
		{Eqi, "eqb"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Fatalf("operator %d rendered %q, want %q", int(tt.op), got, tt.want)
		}
	}
}

func TestExprPrinting(t *testing.T) {
	tests := []struct {
		expr Expr
		want string
	}{
		{&Unit{}, "()"},
		{&What{}, "?"},
		{&Var{Name: "x"}, "x"},
		{&Int{Value: -3}, "-3"},
		{&Bool{Value: true}, "true"},
		{&Unary{Op: Neg, Sub: &Var{Name: "x"}}, "-x"},
		{&Unary{Op: Not, Sub: &Bool{Value: false}}, "~(false)"},
		{
			&Binary{Op: Add, Left: &Int{Value: 1}, Right: &Int{Value: 2}},
			"+ 1 2",
		},
		{
			&If{Cond: &Var{Name: "b"}, Then: &Int{Value: 1}, Else: &Int{Value: 0}},
			"if b then 1 else 0",
		},
		{
			&Pair{Left: &Int{Value: 1}, Right: &Int{Value: 2}},
			"(1, 2)",
		},
		{&Fst{Sub: &Var{Name: "p"}}, "fst p"},
		{&Snd{Sub: &Var{Name: "p"}}, "snd p"},
		{
			&Inl{Sub: &Int{Value: 1}, Type: &UnionType{Left: &IntType{}, Right: &BoolType{}}},
			"inl 1: int | bool",
		},
		{
			&Lambda{Var: "x", Type: &IntType{}, Body: &Var{Name: "x"}},
			"fun x: int -> x",
		},
		{
			&While{Cond: &Var{Name: "b"}, Body: &Unit{}},
			"while b do () end",
		},
		{
			&Seq{Exprs: []Expr{&Int{Value: 1}, &Int{Value: 2}}},
			"1; 2",
		},
		{&Ref{Sub: &Int{Value: 0}}, "ref 0"},
		{&Deref{Sub: &Var{Name: "r"}}, "!r"},
		{
			&Assign{Target: &Var{Name: "r"}, Value: &Int{Value: 5}},
			"r := 5",
		},
		{&App{Fn: &Var{Name: "f"}, Arg: &Var{Name: "x"}}, "f x"},
		{
			&Let{
				Var:   "x",
				Type:  &IntType{},
				Value: &Int{Value: 1},
				Body:  &Var{Name: "x"},
			},
			"let x: int = 1 in x end",
		},
		{
			&LetFun{
				Name:   "id",
				Fun:    &Lambda{Var: "x", Type: &IntType{}, Body: &Var{Name: "x"}},
				Return: &IntType{},
				Body:   &Var{Name: "id"},
			},
			"let id (x: int): int = x in id end",
		},
		{
			&Case{
				Sub:   &Var{Name: "u"},
				Left:  &Lambda{Var: "l", Type: &IntType{}, Body: &Var{Name: "l"}},
				Right: &Lambda{Var: "r", Type: &BoolType{}, Body: &Int{Value: 0}},
			},
			"case u inl(l: int) -> l | inr(r: bool) -> 0",
		},
	}
	for _, tt := range tests {
		if got := tt.expr.String(); got != tt.want {
			t.Fatalf("expression rendered %q, want %q", got, tt.want)
		}
	}
}

func TestCompoundOperandsAreParenthesized(t *testing.T) {
	inner := &Binary{Op: Mul, Left: &Int{Value: 2}, Right: &Int{Value: 3}}
	outer := &Binary{Op: Add, Left: &Int{Value: 1}, Right: inner}
	if got := outer.String(); got != "+ 1 (* 2 3)" {
		t.Fatalf("nested expression rendered %q", got)
	}
}
