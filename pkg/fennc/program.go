package fennc

import (
	"fmt"

	"gopkg.in/yaml.v3"
	"src.fenn.dev/pkg/ir"
	"src.fenn.dev/pkg/lower"
)

// programFile is the YAML description of one module.
//
//	module: main
//	config:
//	  trace-calls: true
//	defs:
//	  - name: main
//	    body:
//	      call:
//	        fn: {var: "util:greet"}
//	        args: [{lit: '"world"'}]
type programFile struct {
	Module string
	Config Config
	Defs   []lower.Def
}

// Config is the generation configuration of a module. It is passed opaquely
// through the generation context; the lowering rules see it through the
// lower.Config interface.
type Config struct {
	Trace bool `yaml:"trace-calls"`
}

// TraceCalls implements lower.Config.
func (c Config) TraceCalls() bool { return c.Trace }

func parseProgram(src []byte) (*programFile, error) {
	var raw struct {
		Module string
		Config Config
		Defs   []struct {
			Name string
			Body exprNode
		}
	}
	if err := yaml.Unmarshal(src, &raw); err != nil {
		return nil, err
	}
	if raw.Module == "" {
		return nil, fmt.Errorf("program has no module name")
	}
	pf := &programFile{Module: raw.Module, Config: raw.Config}
	for _, d := range raw.Defs {
		if d.Name == "" {
			return nil, fmt.Errorf("definition has no name")
		}
		if d.Body.e == nil {
			return nil, fmt.Errorf("definition %s has no body", d.Name)
		}
		pf.Defs = append(pf.Defs, lower.Def{Name: ir.Name(d.Name), Body: d.Body.e})
	}
	return pf, nil
}

// exprNode decodes an expression of the lowering IL from its YAML form: a
// single-key mapping whose key selects the node type.
type exprNode struct {
	e lower.Expr
}

func (en *exprNode) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return fmt.Errorf("line %d: expression must be a single-key mapping", n.Line)
	}
	key, val := n.Content[0].Value, n.Content[1]
	switch key {
	case "var":
		var name string
		if err := val.Decode(&name); err != nil {
			return err
		}
		en.e = lower.Ref{V: ir.Internal{Name: ir.Name(name)}}
	case "foreign":
		var name string
		if err := val.Decode(&name); err != nil {
			return err
		}
		en.e = lower.Ref{V: ir.Foreign(name)}
	case "lit":
		var text string
		if err := val.Decode(&text); err != nil {
			return err
		}
		en.e = lower.Lit{Text: text}
	case "call":
		var c struct {
			Fn   exprNode
			Args []exprNode
		}
		if err := val.Decode(&c); err != nil {
			return err
		}
		call := lower.Call{Fn: c.Fn.e}
		for _, a := range c.Args {
			call.Args = append(call.Args, a.e)
		}
		en.e = call
	case "let":
		var l struct {
			Name string
			Init exprNode
			Body exprNode
		}
		if err := val.Decode(&l); err != nil {
			return err
		}
		en.e = lower.Let{Name: ir.Name(l.Name), Init: l.Init.e, Body: l.Body.e}
	case "lambda":
		var l struct {
			Params []string
			Body   exprNode
		}
		if err := val.Decode(&l); err != nil {
			return err
		}
		lam := lower.Lambda{Body: l.Body.e}
		for _, p := range l.Params {
			lam.Params = append(lam.Params, ir.Name(p))
		}
		en.e = lam
	case "if":
		var i struct {
			Cond exprNode
			Then exprNode
			Else exprNode
		}
		if err := val.Decode(&i); err != nil {
			return err
		}
		en.e = lower.If{Cond: i.Cond.e, Then: i.Then.e, Else: i.Else.e}
	default:
		return fmt.Errorf("line %d: unknown expression type %q", n.Line, key)
	}
	return nil
}
