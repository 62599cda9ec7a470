package codegen

import (
	"testing"

	"github.com/doctorn/slang/internal/past"
)

// treeBuilder decodes fuzz bytes into an arbitrary expression tree, biased
// toward leaves as depth grows so trees stay bounded.
type treeBuilder struct {
	data []byte
	pos  int
}

func (b *treeBuilder) next() byte {
	if b.pos >= len(b.data) {
		return 0
	}
	v := b.data[b.pos]
	b.pos++
	return v
}

var fuzzNames = []string{"x", "y", "z", "missing"}

func (b *treeBuilder) expr(depth int) past.Expr {
	kind := int(b.next())
	if depth > 4 {
		kind %= 5 // leaves only
	} else {
		kind %= 16
	}
	switch kind {
	case 0:
		return &past.Int{Value: int64(b.next())}
	case 1:
		return &past.Bool{Value: b.next()%2 == 0}
	case 2:
		return &past.Unit{}
	case 3:
		return &past.What{}
	case 4:
		return &past.Var{Name: fuzzNames[int(b.next())%len(fuzzNames)]}
	case 5:
		return &past.Unary{Op: past.UnOp(b.next() % 3), Sub: b.expr(depth + 1)}
	case 6:
		return &past.Binary{
			Op:    past.BinOp(b.next() % 11),
			Left:  b.expr(depth + 1),
			Right: b.expr(depth + 1),
		}
	case 7:
		return &past.If{Cond: b.expr(depth + 1), Then: b.expr(depth + 1), Else: b.expr(depth + 1)}
	case 8:
		return &past.While{Cond: b.expr(depth + 1), Body: b.expr(depth + 1)}
	case 9:
		return &past.Seq{Exprs: []past.Expr{b.expr(depth + 1), b.expr(depth + 1)}}
	case 10:
		return &past.Let{
			Var:   fuzzNames[int(b.next())%len(fuzzNames)],
			Type:  &past.IntType{},
			Value: b.expr(depth + 1),
			Body:  b.expr(depth + 1),
		}
	case 11:
		return &past.Ref{Sub: b.expr(depth + 1)}
	case 12:
		return &past.Deref{Sub: b.expr(depth + 1)}
	case 13:
		return &past.Assign{Target: b.expr(depth + 1), Value: b.expr(depth + 1)}
	case 14:
		return &past.Pair{Left: b.expr(depth + 1), Right: b.expr(depth + 1)}
	default:
		return &past.App{Fn: b.expr(depth + 1), Arg: b.expr(depth + 1)}
	}
}

// FuzzCompileNoPanic ensures the driver reports problems as diagnostics and
// never panics, whatever tree it is handed - including unbound variables,
// out-of-range operators and unsupported constructs.
func FuzzCompileNoPanic(f *testing.F) {
	seeds := [][]byte{
		{},
		{0, 7},
		{6, 0, 0, 1, 0, 2},
		{10, 0, 0, 5, 4, 0},
		{7, 1, 0, 0, 10, 0, 20},
		{13, 11, 0, 9, 0, 3},
		{4, 3},
		{15, 4, 0, 0, 1},
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("compile panicked for input %v: %v", data, r)
			}
		}()

		b := &treeBuilder{data: data}
		program := b.expr(0)

		cg := New()
		_ = cg.Compile(program)
		_ = cg.Errors()
		_ = cg.DetailedErrors()
	})
}
