package ir

// Stm is a node in the target statement tree. Statement sequences are
// represented with Seq nodes, so that "the rest of the statements" is itself
// a single Stm; this is the shape consumed and produced by the continuation
// builder.
type Stm interface{ stm() }

// Seq runs Head and then Tail.
type Seq struct {
	Head Stm
	Tail Stm
}

// Assign assigns the value of RHS to LHS.
type Assign struct {
	LHS Var
	RHS Expr
}

// Return returns Value from the enclosing function.
type Return struct {
	Value Expr
}

// ExprStm evaluates X for its effects.
type ExprStm struct {
	X Expr
}

// FuncDef defines a function with the given parameters and body.
type FuncDef struct {
	Name   Var
	Params []Var
	Body   Stm
}

// If runs Then or Else depending on Cond.
type If struct {
	Cond Expr
	Then Stm
	Else Stm
}

// Noop does nothing. It is the usual terminal of a built continuation.
type Noop struct{}

func (Seq) stm()     {}
func (Assign) stm()  {}
func (Return) stm()  {}
func (ExprStm) stm() {}
func (FuncDef) stm() {}
func (If) stm()      {}
func (Noop) stm()    {}

// Expr is a node in the target expression tree.
type Expr interface{ expr() }

// VarRef references a variable.
type VarRef struct {
	V Var
}

// Lit is a literal, carried as its target-language text.
type Lit struct {
	Text string
}

// CallExpr calls Fn with Args.
type CallExpr struct {
	Fn   Expr
	Args []Expr
}

func (VarRef) expr()   {}
func (Lit) expr()      {}
func (CallExpr) expr() {}
