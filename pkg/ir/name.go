// Package ir defines the identifier and statement-tree types shared between
// the lowering rules and the generation context.
package ir

import (
	"sort"
	"strings"
)

// Name is an atomic identifier. Names are compared by value and have a total
// ordering, which is used to produce deterministic output from name sets.
type Name string

func (n Name) String() string { return string(n) }

// EachName calls f with the name itself. It makes Name usable wherever a
// trackable identifier is expected.
func (n Name) EachName(f func(Name)) { f(n) }

// SplitQName splits a qualified name of the form "module:symbol" into its
// module and symbol parts. For an unqualified name the module part is empty.
func SplitQName(n Name) (module, symbol string) {
	if i := strings.IndexByte(string(n), ':'); i >= 0 {
		return string(n[:i]), string(n[i+1:])
	}
	return "", string(n)
}

// NameSet is a set of names.
type NameSet map[Name]struct{}

// MakeNameSet builds a set from the given names, discarding duplicates.
func MakeNameSet(names ...Name) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether n is in the set.
func (s NameSet) Has(n Name) bool {
	_, ok := s[n]
	return ok
}

// Names returns the elements of the set, sorted.
func (s NameSet) Names() []Name {
	names := make([]Name, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// EachName calls f for each element of the set, in sorted order.
func (s NameSet) EachName(f func(Name)) {
	for _, n := range s.Names() {
		f(n)
	}
}
