package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/doctorn/slang/internal/codegen"
	"github.com/doctorn/slang/internal/past"
)

type sample struct {
	name    string
	program past.Expr
}

// samples are small programs exercising the backend end to end. The last one
// deliberately asks for an unsupported construct to show a diagnostic.
func samples() []sample {
	intType := &past.IntType{}
	return []sample{
		{
			name: "arith",
			program: &past.Binary{
				Op:   past.Add,
				Left: &past.Int{Value: 1},
				Right: &past.Binary{
					Op:    past.Mul,
					Left:  &past.Int{Value: 2},
					Right: &past.Int{Value: 3},
				},
			},
		},
		{
			name: "let",
			program: &past.Let{
				Var: "x", Type: intType, Value: &past.Int{Value: 5},
				Body: &past.Let{
					Var: "y", Type: intType, Value: &past.Int{Value: 10},
					Body: &past.Binary{
						Op:    past.Add,
						Left:  &past.Var{Name: "x"},
						Right: &past.Var{Name: "y"},
					},
				},
			},
		},
		{
			name: "branch",
			program: &past.If{
				Cond: &past.Binary{
					Op:    past.Lt,
					Left:  &past.Int{Value: 5},
					Right: &past.Int{Value: 10},
				},
				Then: &past.Int{Value: 10},
				Else: &past.Int{Value: 5},
			},
		},
		{
			// Sum 0..4 through a mutable cell.
			name: "loop",
			program: &past.Let{
				Var: "s", Type: &past.RefType{Elem: intType}, Value: &past.Ref{Sub: &past.Int{Value: 0}},
				Body: &past.Let{
					Var: "i", Type: &past.RefType{Elem: intType}, Value: &past.Ref{Sub: &past.Int{Value: 0}},
					Body: &past.Seq{Exprs: []past.Expr{
						&past.While{
							Cond: &past.Binary{
								Op:    past.Lt,
								Left:  &past.Deref{Sub: &past.Var{Name: "i"}},
								Right: &past.Int{Value: 5},
							},
							Body: &past.Seq{Exprs: []past.Expr{
								&past.Assign{
									Target: &past.Var{Name: "s"},
									Value: &past.Binary{
										Op:    past.Add,
										Left:  &past.Deref{Sub: &past.Var{Name: "s"}},
										Right: &past.Deref{Sub: &past.Var{Name: "i"}},
									},
								},
								&past.Assign{
									Target: &past.Var{Name: "i"},
									Value: &past.Binary{
										Op:    past.Add,
										Left:  &past.Deref{Sub: &past.Var{Name: "i"}},
										Right: &past.Int{Value: 1},
									},
								},
							}},
						},
						&past.Deref{Sub: &past.Var{Name: "s"}},
					}},
				},
			},
		},
		{
			name: "input",
			program: &past.Binary{
				Op:    past.Add,
				Left:  &past.What{},
				Right: &past.What{},
			},
		},
		{
			name: "pair",
			program: &past.Pair{
				Left:  &past.Int{Value: 1},
				Right: &past.Int{Value: 2},
			},
		},
	}
}

func main() {
	outDir := ""
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}

	for _, s := range samples() {
		fmt.Printf("Program %s: %s\n", s.name, s.program)

		cg := codegen.New()
		asm := cg.Compile(s.program)

		if errs := cg.Errors(); len(errs) != 0 {
			for _, err := range errs {
				fmt.Printf("  Codegen error: %s\n", err)
			}
			fmt.Println()
			continue
		}

		if outDir == "" {
			fmt.Println(asm)
			continue
		}
		path := filepath.Join(outDir, s.name+".s")
		if err := os.WriteFile(path, []byte(asm), 0o644); err != nil {
			fmt.Printf("  Write error: %v\n", err)
			continue
		}
		fmt.Printf("  Wrote %s\n\n", path)
	}
}
