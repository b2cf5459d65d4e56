package ir

import (
	"testing"

	"src.fenn.dev/pkg/tt"
)

func TestMakeNameSet(t *testing.T) {
	tt.Test(t, tt.Fn("MakeNameSet", func(names ...Name) NameSet { return MakeNameSet(names...) }), tt.Table{
		tt.Args().Rets(NameSet{}),
		tt.Args(Name("a")).Rets(MakeNameSet("a")),
		tt.Args(Name("a"), Name("b"), Name("a")).Rets(MakeNameSet("a", "b")),
	})
}

func TestNameSet_Names_Sorted(t *testing.T) {
	tt.Test(t, tt.Fn("Names", NameSet.Names), tt.Table{
		tt.Args(MakeNameSet("c", "a", "b")).Rets([]Name{"a", "b", "c"}),
		tt.Args(NameSet{}).Rets([]Name{}),
	})
}

func TestNameSet_Has(t *testing.T) {
	s := MakeNameSet("a", "b")
	tt.Test(t, tt.Fn("Has", NameSet.Has), tt.Table{
		tt.Args(s, Name("a")).Rets(true),
		tt.Args(s, Name("c")).Rets(false),
	})
}

func TestSplitQName(t *testing.T) {
	tt.Test(t, tt.Fn("SplitQName", SplitQName), tt.Table{
		tt.Args(Name("mod:sym")).Rets("mod", "sym"),
		tt.Args(Name("sym")).Rets("", "sym"),
		tt.Args(Name("mod:a:b")).Rets("mod", "a:b"),
		tt.Args(Name(":sym")).Rets("", "sym"),
	})
}

func TestVar_EachName(t *testing.T) {
	var got []Name
	collect := func(n Name) { got = append(got, n) }

	Foreign("print").EachName(collect)
	if len(got) != 0 {
		t.Errorf("Foreign contributed names %v, want none", got)
	}

	Internal{Name: "f", Hint: "f"}.EachName(collect)
	if len(got) != 1 || got[0] != "f" {
		t.Errorf("Internal contributed names %v, want [f]", got)
	}
}
