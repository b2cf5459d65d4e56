package gen

import "src.fenn.dev/pkg/ir"

// Transform produces a statement sequence given the statements that follow
// it. A transform that emits statement A is the function that maps rest to
// Seq{A, rest}.
type Transform func(rest ir.Stm) ir.Stm

// Cont is a composable statement-sequence builder. Transforms accumulate in
// call order; Build applies them so that the transform added first
// contributes the first emitted statements.
type Cont struct {
	transforms []Transform
}

// Build applies the accumulated transforms to the terminal statement. With
// transforms f1, f2 added in that order, the result is f1(f2(terminal)).
func (ct Cont) Build(terminal ir.Stm) ir.Stm {
	out := terminal
	for i := len(ct.transforms) - 1; i >= 0; i-- {
		out = ct.transforms[i](out)
	}
	return out
}

// Extend composes f onto the continuation being built. The statements f
// produces are emitted after those of every earlier Extend call and before
// those of every later one. Transforms cannot be inspected or removed once
// added.
func (c *Context) Extend(f Transform) {
	c.cont.transforms = append(c.cont.transforms, f)
}

// Emit extends the continuation with a transform that emits the single
// statement s.
func (c *Context) Emit(s ir.Stm) {
	c.Extend(func(rest ir.Stm) ir.Stm { return ir.Seq{Head: s, Tail: rest} })
}
