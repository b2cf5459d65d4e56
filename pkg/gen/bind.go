package gen

import "src.fenn.dev/pkg/ir"

// PushBind pushes v onto the stack of enclosing bindings. The caller must
// pair every push with exactly one PopBind.
func (c *Context) PushBind(v ir.Var) {
	c.binds = append(c.binds, v)
}

// PopBind removes the innermost enclosing binding. Popping with no binding
// active indicates mismatched push/pop pairing in the lowering logic and
// panics.
func (c *Context) PopBind() {
	if len(c.binds) == 0 {
		bug("PopBind with no binding active")
	}
	c.binds[len(c.binds)-1] = nil
	c.binds = c.binds[:len(c.binds)-1]
}

// CurrentBinding returns the innermost enclosing binding without removing
// it. Panics if no binding is active.
func (c *Context) CurrentBinding() ir.Var {
	if len(c.binds) == 0 {
		bug("CurrentBinding with no binding active")
	}
	return c.binds[len(c.binds)-1]
}
