// Package fennc implements the fennc program: it lowers program descriptions
// into statement trees, records the discovered dependency graph, and answers
// reachability queries over it.
package fennc

import (
	"fmt"
	"os"

	"src.fenn.dev/pkg/depstore"
	"src.fenn.dev/pkg/ir"
	"src.fenn.dev/pkg/logutil"
	"src.fenn.dev/pkg/lower"
	"src.fenn.dev/pkg/prog"
)

// Version identifies the fennc release.
const Version = "0.3.0"

var logger = logutil.GetLogger("[fennc] ")

// Program is the fennc program.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if f.Version {
		fmt.Fprintln(fds[1], Version)
		return nil
	}
	if len(args) == 0 {
		return prog.BadUsage("no command given")
	}
	switch args[0] {
	case "build":
		return build(fds, f, args[1:])
	case "reach":
		return reach(fds, f, args[1:])
	default:
		return prog.BadUsage("unknown command: " + args[0])
	}
}

func build(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) == 0 {
		return prog.BadUsage("build requires at least one program file")
	}
	var store *depstore.Store
	if f.DB != "" {
		var err error
		store, err = depstore.Open(f.DB)
		if err != nil {
			return err
		}
		defer store.Close()
	}
	for _, fname := range args {
		src, err := os.ReadFile(fname)
		if err != nil {
			return err
		}
		pf, err := parseProgram(src)
		if err != nil {
			return fmt.Errorf("%s: %v", fname, err)
		}
		stm, res := lower.Module(pf.Config, pf.Module, pf.Defs)
		logger.Printf("lowered module %s: %d deps, %d locals",
			pf.Module, len(res.Deps), len(res.Locals))

		fmt.Fprintf(fds[1], "module %s\n", pf.Module)
		ir.Fprint(fds[1], stm)
		fmt.Fprintf(fds[1], "# deps:%s\n", joinNames(res.Deps))
		fmt.Fprintf(fds[1], "# locals:%s\n", joinNames(res.Locals))

		if store != nil {
			if err := store.PutModule(pf.Module, res.Deps, res.Locals); err != nil {
				return err
			}
		}
	}
	return nil
}

func reach(fds [3]*os.File, f *prog.Flags, args []string) error {
	if f.DB == "" {
		return prog.BadUsage("reach requires -db")
	}
	if len(args) == 0 {
		return prog.BadUsage("reach requires at least one root module")
	}
	store, err := depstore.Open(f.DB)
	if err != nil {
		return err
	}
	defer store.Close()
	modules, err := store.Reach(args)
	if err != nil {
		return err
	}
	for _, module := range modules {
		fmt.Fprintln(fds[1], module)
	}
	return nil
}

func joinNames(names ir.NameSet) string {
	out := ""
	for _, n := range names.Names() {
		out += " " + string(n)
	}
	return out
}
