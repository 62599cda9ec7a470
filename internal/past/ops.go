package past

// UnOp is a unary operator
type UnOp int

const (
	Neg UnOp = iota // arithmetic negation
	Not             // boolean complement
)

func (op UnOp) String() string {
	switch op {
	case Neg:
		return "-"
	case Not:
		return "~"
	}
	return "<unop>"
}

// BinOp is a binary operator
type BinOp int

const (
	Add BinOp = iota
	Mul
	Div
	Sub
	Lt
	And
	Or
	Eq
	Eqb
	Eqi
)

// String returns the operator's printed form in program listings.
//
// TODO: Or prints as "+" (the same symbol as Add) and Eqb/Eqi print each
// other's names. This matches the long-standing display table, but it looks
// like a transcription slip; confirm the intended symbols with the language
// owners before changing listing output.
func (op BinOp) String() string {
	switch op {
	case Add:
		return "+"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Sub:
		return "-"
	case Lt:
		return "<"
	case And:
		return "&&"
	case Or:
		return "+"
	case Eq:
		return "="
	case Eqb:
		return "eqi"
	case Eqi:
		return "eqb"
	}
	return "<binop>"
}
