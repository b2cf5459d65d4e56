package depstore

import (
	"sort"

	"src.fenn.dev/pkg/ir"
)

// Reach returns the names of all recorded modules reachable from the given
// root modules through qualified dependencies, sorted. A dependency of the
// form "module:symbol" is an edge to that module; unqualified dependencies
// stay within the module and contribute no edge. Roots without a record are
// ignored.
func (s *Store) Reach(roots []string) ([]string, error) {
	seen := make(map[string]bool)
	queue := append([]string(nil), roots...)
	for len(queue) > 0 {
		module := queue[0]
		queue = queue[1:]
		if seen[module] {
			continue
		}
		deps, err := s.Deps(module)
		if err == ErrNoSuchModule {
			continue
		} else if err != nil {
			return nil, err
		}
		seen[module] = true
		for _, dep := range deps.Names() {
			if target, _ := ir.SplitQName(dep); target != "" && !seen[target] {
				queue = append(queue, target)
			}
		}
	}
	reached := make([]string, 0, len(seen))
	for module := range seen {
		reached = append(reached, module)
	}
	sort.Strings(reached)
	return reached, nil
}
