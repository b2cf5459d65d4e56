package lower

import (
	"fmt"
	"strconv"

	"src.fenn.dev/pkg/gen"
	"src.fenn.dev/pkg/ir"
)

// Module lowers the definitions of a module into a statement tree and
// returns it along with the outcome of the generation pass. The returned
// result carries the names the module references and binds; computing the
// set difference for linking is the caller's business.
func Module(cfg interface{}, module string, defs []Def) (ir.Stm, gen.Result) {
	_, res := gen.Run(cfg, module, func(c *gen.Context) struct{} {
		fresh := 0
		lw := &lowerer{c, &fresh}
		for _, d := range defs {
			lw.def(d)
		}
		return struct{}{}
	})
	return res.Cont.Build(ir.Noop{}), res
}

// lowerer holds the state of one lowering pass. The fresh counter is shared
// with the lowerers of isolated sub-passes so that generated names never
// collide across function bodies.
type lowerer struct {
	c     *gen.Context
	fresh *int
}

func (lw *lowerer) def(d Def) {
	v := ir.Internal{Name: d.Name}
	lw.c.AddLocal(v)
	lw.c.PushBind(v)
	defer lw.c.PopBind()

	if lam, ok := d.Body.(Lambda); ok {
		lw.c.Emit(lw.funcDef(v, lam))
		return
	}
	lw.c.Emit(ir.Assign{LHS: v, RHS: lw.expr(d.Body)})
}

func (lw *lowerer) expr(e Expr) ir.Expr {
	switch e := e.(type) {
	case Ref:
		v := lw.c.Resolve(e.V)
		lw.c.DependOn(v)
		return ir.VarRef{V: v}
	case Lit:
		return ir.Lit{Text: e.Text}
	case Call:
		fn := lw.expr(e.Fn)
		args := make([]ir.Expr, len(e.Args))
		for i, a := range e.Args {
			args[i] = lw.expr(a)
		}
		lw.c.WhenConfig(traceCalls, func() {
			site := fmt.Sprintf("%s: call in %s", lw.c.ModuleName(), lw.c.CurrentBinding())
			lw.c.Emit(ir.ExprStm{X: ir.CallExpr{
				Fn:   ir.VarRef{V: ir.Foreign("trace")},
				Args: []ir.Expr{ir.Lit{Text: strconv.Quote(site)}},
			}})
		})
		return ir.CallExpr{Fn: fn, Args: args}
	case Let:
		init := lw.expr(e.Init)
		v := lw.freshVar(e.Name)
		lw.c.AddLocal(v)
		lw.c.Emit(ir.Assign{LHS: v, RHS: init})
		var out ir.Expr
		lw.c.WithRename(ir.Internal{Name: e.Name}, v, func() {
			out = lw.expr(e.Body)
		})
		return out
	case Lambda:
		fv := lw.freshVar("fn")
		lw.c.AddLocal(fv)
		lw.c.Emit(lw.funcDef(fv, e))
		return ir.VarRef{V: fv}
	case If:
		cond := lw.expr(e.Cond)
		v := lw.freshVar("if")
		lw.c.AddLocal(v)
		lw.c.Emit(ir.If{
			Cond: cond,
			Then: lw.branch(v, e.Then),
			Else: lw.branch(v, e.Else),
		})
		return ir.VarRef{V: v}
	default:
		panic(fmt.Sprintf("unknown expression type %T", e))
	}
}

// funcDef lowers a lambda in isolation and embeds the built statements as
// the body of a function definition. The dependency and locality findings of
// the body propagate to the enclosing pass; its statements do not.
func (lw *lowerer) funcDef(fv ir.Var, lam Lambda) ir.Stm {
	params := make([]ir.Var, len(lam.Params))
	ret, cont := gen.Isolate(lw.c, func(c *gen.Context) ir.Expr {
		sub := &lowerer{c, lw.fresh}
		c.PushBind(fv)
		defer c.PopBind()

		var body ir.Expr
		var withParams func(i int)
		withParams = func(i int) {
			if i == len(lam.Params) {
				body = sub.expr(lam.Body)
				return
			}
			p := sub.freshVar(lam.Params[i])
			params[i] = p
			c.AddLocal(p)
			c.WithRename(ir.Internal{Name: lam.Params[i]}, p, func() {
				withParams(i + 1)
			})
		}
		withParams(0)
		return body
	})
	return ir.FuncDef{Name: fv, Params: params, Body: cont.Build(ir.Return{Value: ret})}
}

// branch lowers a branch expression in isolation and builds its statements
// with an assignment to v as the terminal, so that both arms of an If leave
// their value in the same variable.
func (lw *lowerer) branch(v ir.Var, e Expr) ir.Stm {
	ret, cont := gen.Isolate(lw.c, func(c *gen.Context) ir.Expr {
		return (&lowerer{c, lw.fresh}).expr(e)
	})
	return cont.Build(ir.Assign{LHS: v, RHS: ret})
}

// freshVar makes a variable with a name that cannot collide with any source
// name, keeping the source name as the emission hint.
func (lw *lowerer) freshVar(base ir.Name) ir.Var {
	*lw.fresh++
	return ir.Internal{
		Name: ir.Name(fmt.Sprintf("%s.%d", base, *lw.fresh)),
		Hint: string(base),
	}
}
