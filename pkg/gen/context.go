// Package gen implements the generation context threaded through the
// lowering of a module into a target statement tree.
//
// A Context is created by Run and owned by exactly one generation pass. It
// accumulates the names the generated code references and binds, builds the
// output statement sequence from composable continuations, and tracks the
// chain of enclosing bindings and the rename substitutions in scope. Isolate
// spawns a child context for code that must be generated as a self-contained
// unit, such as a function body.
package gen

import (
	"fmt"

	"src.fenn.dev/pkg/ir"
)

// Context maintains the state of a single generation pass. It must not be
// shared across concurrently running passes.
type Context struct {
	// Names referenced by the generated code, in call order, duplicates
	// included. Deduplicated only when the pass finishes.
	deps []ir.Name
	// Names bound locally by the generated code. Locals are tracked
	// separately and never subtracted from deps; the set difference is the
	// caller's business.
	locals []ir.Name
	// Statement-sequence builder.
	cont Cont
	// Chain of enclosing bindings, innermost last.
	binds []ir.Var
	// Rename substitutions currently in scope.
	renames map[ir.Var]ir.Var

	module string
	cfg    interface{}
}

// Result holds what a finished generation pass discovered and built.
type Result struct {
	// Deps is the set of names the generated code references.
	Deps ir.NameSet
	// Locals is the set of names the generated code binds locally.
	Locals ir.NameSet
	// Cont is the built statement-sequence continuation.
	Cont Cont
}

// Run creates a fresh context for generating the named module with the given
// opaque configuration, runs f against it, and returns f's return value along
// with the deduplicated tracking results and the built continuation. It is
// the single entry point for starting a generation pass.
func Run[T any](cfg interface{}, module string, f func(*Context) T) (T, Result) {
	c := newContext(cfg, module)
	ret := f(c)
	return ret, Result{
		Deps:   ir.MakeNameSet(c.deps...),
		Locals: ir.MakeNameSet(c.locals...),
		Cont:   c.cont,
	}
}

func newContext(cfg interface{}, module string) *Context {
	return &Context{module: module, cfg: cfg, renames: make(map[ir.Var]ir.Var)}
}

// ModuleName returns the name of the module being generated.
func (c *Context) ModuleName() string { return c.module }

// Config returns the opaque configuration the pass was started with.
func (c *Context) Config() interface{} { return c.cfg }

// WhenConfig runs action if pred holds for the configuration.
func (c *Context) WhenConfig(pred func(cfg interface{}) bool, action func()) {
	if pred(c.cfg) {
		action()
	}
}

// bugError is panicked on caller invariant violations. It is never recovered
// within this package; a violation is a defect in the lowering logic and must
// abort the pass loudly.
type bugError struct {
	msg string
}

func (e bugError) Error() string { return "bug in lowering logic: " + e.msg }

func bug(format string, args ...interface{}) {
	panic(bugError{fmt.Sprintf(format, args...)})
}
