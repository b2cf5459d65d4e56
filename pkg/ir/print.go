package ir

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a compact text rendering of the statement tree to w. The
// rendering is stable and is used by tests and the compiler driver; it is not
// a target-language serialization.
func Fprint(w io.Writer, s Stm) {
	printStm(w, s, "")
}

// Print returns the text rendering of the statement tree.
func Print(s Stm) string {
	var sb strings.Builder
	Fprint(&sb, s)
	return sb.String()
}

func printStm(w io.Writer, s Stm, indent string) {
	switch s := s.(type) {
	case Seq:
		printStm(w, s.Head, indent)
		printStm(w, s.Tail, indent)
	case Assign:
		fmt.Fprintf(w, "%s%s = %s\n", indent, s.LHS, exprString(s.RHS))
	case Return:
		fmt.Fprintf(w, "%sreturn %s\n", indent, exprString(s.Value))
	case ExprStm:
		fmt.Fprintf(w, "%s%s\n", indent, exprString(s.X))
	case FuncDef:
		params := make([]string, len(s.Params))
		for i, p := range s.Params {
			params[i] = p.String()
		}
		fmt.Fprintf(w, "%sfunc %s(%s) {\n", indent, s.Name, strings.Join(params, ", "))
		printStm(w, s.Body, indent+"  ")
		fmt.Fprintf(w, "%s}\n", indent)
	case If:
		fmt.Fprintf(w, "%sif %s {\n", indent, exprString(s.Cond))
		printStm(w, s.Then, indent+"  ")
		fmt.Fprintf(w, "%s} else {\n", indent)
		printStm(w, s.Else, indent+"  ")
		fmt.Fprintf(w, "%s}\n", indent)
	case Noop:
		// Nothing to print.
	default:
		panic(fmt.Sprintf("unknown statement type %T", s))
	}
}

func exprString(e Expr) string {
	switch e := e.(type) {
	case VarRef:
		return e.V.String()
	case Lit:
		return e.Text
	case CallExpr:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = exprString(a)
		}
		return exprString(e.Fn) + "(" + strings.Join(args, ", ") + ")"
	default:
		panic(fmt.Sprintf("unknown expression type %T", e))
	}
}
