package lower_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.fenn.dev/pkg/ir"
	"src.fenn.dev/pkg/lower"
)

func TestModule_SimpleDef(t *testing.T) {
	stm, res := lower.Module(nil, "main", []lower.Def{
		{Name: "greeting", Body: lower.Call{
			Fn:   lower.Ref{V: ir.Foreign("concat")},
			Args: []lower.Expr{lower.Lit{Text: `"hello "`}, lower.Ref{V: ir.Internal{Name: "util:who"}}},
		}},
	})
	want := "greeting = concat(\"hello \", util:who)\n"
	if got := ir.Print(stm); got != want {
		t.Errorf("printed module %q, want %q", got, want)
	}
	wantNames(t, "deps", res.Deps, "util:who")
	wantNames(t, "locals", res.Locals, "greeting")
}

func TestModule_LetIsAlphaRenamed(t *testing.T) {
	// f = let x = 1 in x
	stm, res := lower.Module(nil, "main", []lower.Def{
		{Name: "f", Body: lower.Let{
			Name: "x",
			Init: lower.Lit{Text: "1"},
			Body: lower.Ref{V: ir.Internal{Name: "x"}},
		}},
	})
	want := "x.1 = 1\nf = x.1\n"
	if got := ir.Print(stm); got != want {
		t.Errorf("printed module %q, want %q", got, want)
	}
	wantNames(t, "deps", res.Deps, "x.1")
	wantNames(t, "locals", res.Locals, "f", "x.1")
}

func TestModule_NestedLetShadowing(t *testing.T) {
	// f = let x = 1 in let x = x in x
	stm, _ := lower.Module(nil, "main", []lower.Def{
		{Name: "f", Body: lower.Let{
			Name: "x",
			Init: lower.Lit{Text: "1"},
			Body: lower.Let{
				Name: "x",
				Init: lower.Ref{V: ir.Internal{Name: "x"}},
				Body: lower.Ref{V: ir.Internal{Name: "x"}},
			},
		}},
	})
	want := "x.1 = 1\nx.2 = x.1\nf = x.2\n"
	if got := ir.Print(stm); got != want {
		t.Errorf("printed module %q, want %q", got, want)
	}
}

func TestModule_LambdaDefBecomesFuncDef(t *testing.T) {
	stm, res := lower.Module(nil, "main", []lower.Def{
		{Name: "id", Body: lower.Lambda{
			Params: []ir.Name{"x"},
			Body:   lower.Ref{V: ir.Internal{Name: "x"}},
		}},
	})
	want := "func id(x.1) {\n  return x.1\n}\n"
	if got := ir.Print(stm); got != want {
		t.Errorf("printed module %q, want %q", got, want)
	}
	// The body's findings propagate out of the isolated sub-pass.
	wantNames(t, "deps", res.Deps, "x.1")
	wantNames(t, "locals", res.Locals, "id", "x.1")
}

func TestModule_NestedLambdaStatementsStayInBody(t *testing.T) {
	// f = let g = (lambda x. x) in g
	stm, _ := lower.Module(nil, "main", []lower.Def{
		{Name: "f", Body: lower.Let{
			Name: "g",
			Init: lower.Lambda{Params: []ir.Name{"x"}, Body: lower.Ref{V: ir.Internal{Name: "x"}}},
			Body: lower.Ref{V: ir.Internal{Name: "g"}},
		}},
	})
	got := ir.Print(stm)
	want := "func fn.1(x.2) {\n  return x.2\n}\ng.3 = fn.1\nf = g.3\n"
	if got != want {
		t.Errorf("printed module %q, want %q", got, want)
	}
}

func TestModule_IfBranchesAssignSharedVar(t *testing.T) {
	stm, _ := lower.Module(nil, "main", []lower.Def{
		{Name: "f", Body: lower.If{
			Cond: lower.Ref{V: ir.Foreign("ok")},
			Then: lower.Lit{Text: "1"},
			Else: lower.Lit{Text: "2"},
		}},
	})
	got := ir.Print(stm)
	want := "if ok {\n  if.1 = 1\n} else {\n  if.1 = 2\n}\nf = if.1\n"
	if got != want {
		t.Errorf("printed module %q, want %q", got, want)
	}
}

type traceConfig struct{}

func (traceConfig) TraceCalls() bool { return true }

func TestModule_TraceCallsConfig(t *testing.T) {
	stm, _ := lower.Module(traceConfig{}, "main", []lower.Def{
		{Name: "f", Body: lower.Call{Fn: lower.Ref{V: ir.Foreign("print")}}},
	})
	got := ir.Print(stm)
	if !strings.Contains(got, `trace("main: call in f")`) {
		t.Errorf("printed module %q, want a trace statement for the call in f", got)
	}
	if !strings.Contains(got, "f = print()") {
		t.Errorf("printed module %q, want the lowered call", got)
	}
}

func wantNames(t *testing.T, what string, got ir.NameSet, want ...ir.Name) {
	t.Helper()
	if diff := cmp.Diff(ir.MakeNameSet(want...), got); diff != "" {
		t.Errorf("%s (-want +got):\n%s", what, diff)
	}
}
