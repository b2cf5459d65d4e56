package gen

import "src.fenn.dev/pkg/ir"

// Trackable is anything that can be recorded in the dependency and locality
// trackers: an ir.Name, an ir.Var (a Foreign contributes nothing, an
// Internal contributes its wrapped name), or an ir.NameSet. Collections
// contribute their elements in iteration order.
type Trackable interface {
	EachName(f func(ir.Name))
}

// DependOn records that the generated code references the names contributed
// by each argument, in order. Pure bookkeeping; there is no error condition.
func (c *Context) DependOn(ts ...Trackable) {
	for _, t := range ts {
		t.EachName(func(n ir.Name) { c.deps = append(c.deps, n) })
	}
}

// AddLocal records that the generated code locally binds the names
// contributed by each argument, in order. Locals are not excluded from the
// dependency tracker; callers that want the difference compute it themselves.
func (c *Context) AddLocal(ts ...Trackable) {
	for _, t := range ts {
		t.EachName(func(n ir.Name) { c.locals = append(c.locals, n) })
	}
}
