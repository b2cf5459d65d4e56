package ir

import (
	"testing"
)

func TestPrint(t *testing.T) {
	f := Internal{Name: "f"}
	x := Internal{Name: "x.1", Hint: "x"}
	tree := Seq{
		Head: FuncDef{
			Name:   f,
			Params: []Var{x},
			Body: Seq{
				Head: ExprStm{X: CallExpr{
					Fn:   VarRef{V: Foreign("trace")},
					Args: []Expr{Lit{Text: `"f"`}},
				}},
				Tail: Return{Value: VarRef{V: x}},
			},
		},
		Tail: Seq{
			Head: If{
				Cond: VarRef{V: Foreign("ok")},
				Then: Assign{LHS: x, RHS: Lit{Text: "1"}},
				Else: Noop{},
			},
			Tail: Noop{},
		},
	}
	want := `func f(x.1) {
  trace("f")
  return x.1
}
if ok {
  x.1 = 1
} else {
}
`
	if got := Print(tree); got != want {
		t.Errorf("Print -> %q, want %q", got, want)
	}
}
