package ir

// Var is a reference to a binding site. It is either Foreign, referring to a
// binding supplied by the target environment, or Internal, wrapping a Name
// defined in the program being generated. Both variants are small value types
// so that a Var can be used as a map key with value equality.
type Var interface {
	// EachName calls f with every name the variable contributes to
	// dependency and locality tracking. Foreign variables contribute none.
	EachName(f func(Name))
	String() string
}

// Foreign refers to a binding supplied by the target environment. It is
// assumed always resolvable and never participates in dependency tracking.
type Foreign string

func (v Foreign) EachName(func(Name)) {}

func (v Foreign) String() string { return string(v) }

// Internal wraps a Name defined in the program being generated, with an
// optional hint carried through to emission.
type Internal struct {
	Name Name
	Hint string
}

func (v Internal) EachName(f func(Name)) { f(v.Name) }

func (v Internal) String() string { return string(v.Name) }
