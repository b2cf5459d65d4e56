// Package lower translates the Fenn expression IL into the target statement
// tree, threading a gen.Context through the translation for dependency
// bookkeeping, alpha-renaming and function-body isolation.
package lower

import "src.fenn.dev/pkg/ir"

// Expr is a node of the expression IL consumed by the lowering rules.
type Expr interface{ expr() }

// Ref references a variable, either a Foreign binding of the target
// environment or an Internal name defined somewhere in the program.
type Ref struct {
	V ir.Var
}

// Lit is a literal, carried as target-language text.
type Lit struct {
	Text string
}

// Call applies Fn to Args.
type Call struct {
	Fn   Expr
	Args []Expr
}

// Let binds Name to the value of Init within Body.
type Let struct {
	Name ir.Name
	Init Expr
	Body Expr
}

// Lambda is an anonymous function.
type Lambda struct {
	Params []ir.Name
	Body   Expr
}

// If evaluates to Then or Else depending on Cond.
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (Ref) expr()    {}
func (Lit) expr()    {}
func (Call) expr()   {}
func (Let) expr()    {}
func (Lambda) expr() {}
func (If) expr()     {}

// Def is a top-level definition of a module.
type Def struct {
	Name ir.Name
	Body Expr
}

// Config is the subset of the generation configuration that the lowering
// rules understand. The configuration value is otherwise opaque to them.
type Config interface {
	// TraceCalls reports whether every lowered call should be preceded by a
	// trace statement naming the enclosing binding.
	TraceCalls() bool
}

func traceCalls(cfg interface{}) bool {
	c, ok := cfg.(Config)
	return ok && c.TraceCalls()
}
