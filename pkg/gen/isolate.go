package gen

// Isolate runs f as a nested generation pass whose statement output is not
// spliced into c's continuation. The child context shares c's module name and
// configuration, starts from a snapshot of c's rename table (mutations in
// either direction are invisible to the other), and has c's current binding,
// if any, as the base of its bind stack. Its continuation and trackers start
// empty.
//
// When f returns, the names it depended on and bound locally are merged into
// c's trackers; the statements it built are returned as a continuation for
// the caller to embed explicitly, typically as the body of a separately
// emitted function.
func Isolate[T any](c *Context, f func(*Context) T) (T, Cont) {
	child := newContext(c.cfg, c.module)
	for from, to := range c.renames {
		child.renames[from] = to
	}
	if len(c.binds) > 0 {
		child.binds = append(child.binds, c.binds[len(c.binds)-1])
	}

	ret := f(child)

	c.deps = append(c.deps, child.deps...)
	c.locals = append(c.locals, child.locals...)
	return ret, child.cont
}
