package gen

import "src.fenn.dev/pkg/ir"

// WithRename makes from resolve to to for the duration of action, then
// restores the rename table to its state before the call. Only the mapping
// installed by this call is retracted; nested WithRename calls retract their
// own mappings symmetrically.
//
// The caller must never install a mapping that closes a cycle; Resolve on a
// cyclic table does not terminate.
func (c *Context) WithRename(from, to ir.Var, action func()) {
	old, had := c.renames[from]
	c.renames[from] = to
	defer func() {
		if had {
			c.renames[from] = old
		} else {
			delete(c.renames, from)
		}
	}()
	action()
}

// Resolve follows rename mappings from v transitively and returns the final
// variable. A variable with no mapping resolves to itself. Foreign variables
// are never renamed and resolve to themselves.
func (c *Context) Resolve(v ir.Var) ir.Var {
	if _, ok := v.(ir.Foreign); ok {
		return v
	}
	for {
		w, ok := c.renames[v]
		if !ok {
			return v
		}
		v = w
	}
}
