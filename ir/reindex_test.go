package ir

import "testing"

func TestReindexAtomRewritesEveryField(t *testing.T) {
	m := map[Index]Index{0: 10, 1: 11, 2: 12}

	cases := []struct {
		name string
		in   AtomKind
		want AtomKind
	}{
		{"TypeField", TypeField{Item: KindI32, Down: 0, Next: 1}, TypeField{Item: KindI32, Down: 10, Next: 11}},
		{"Qualifier", Qualifier{Underlying: 0, Binding: 3, Kind: QualUniform}, Qualifier{Underlying: 10, Binding: 3, Kind: QualUniform}},
		{"Construct", Construct{Type: 0, Args: 1, Mode: ConstructNormal}, Construct{Type: 10, Args: 11, Mode: ConstructNormal}},
		{"List", List{Item: 0, Next: 1}, List{Item: 10, Next: 11}},
		{"Call", Call{CallableID: 5, Args: 0, Ret: 1}, Call{CallableID: 5, Args: 10, Ret: 11}},
		{"Operation", Operation{A: 0, B: 1, Code: OpAdd}, Operation{A: 10, B: 11, Code: OpAdd}},
		{"Swizzle", Swizzle{Src: 0, Code: SwzXYZ}, Swizzle{Src: 10, Code: SwzXYZ}},
		{"Store", Store{Dst: 0, Src: 1}, Store{Dst: 10, Src: 11}},
		{"Load", Load{Src: 0, Idx: 1}, Load{Src: 10, Idx: 11}},
		{"Intrinsic", Intrinsic{Name: IntrinDot, Args: 0, Ret: 1}, Intrinsic{Name: IntrinDot, Args: 10, Ret: 11}},
		// FailTo must be rewritten too — it is easy to forget since it is
		// back-patched rather than set at emit time.
		{"Branch", Branch{BKind: BranchCond, Cond: 0, FailTo: 2}, Branch{BKind: BranchCond, Cond: 10, FailTo: 12}},
		{"Return", Return{Value: 0, Type: 1}, Return{Value: 10, Type: 11}},
	}

	for _, c := range cases {
		got := ReindexAtom(c.in, m)
		if got != c.want {
			t.Errorf("%s: ReindexAtom(%v) = %v, want %v", c.name, c.in, got, c.want)
		}
	}
}

func TestReindexComposes(t *testing.T) {
	g := map[Index]Index{0: 1, 1: 2}
	f := map[Index]Index{1: 100, 2: 200}

	buf := NewBuffer()
	buf.Emit(Primitive{Kind: KindI32, Value: ValI32(1)})
	buf.Emit(Primitive{Kind: KindI32, Value: ValI32(2)})
	buf.Emit(Operation{A: 0, B: NoIndex, Code: OpNegate})

	viaComposed := Reindex(Reindex(buf, g), f)
	direct := Reindex(buf, ComposeReindex(f, g))

	for i := range direct.Atoms {
		if direct.Atoms[i] != viaComposed.Atoms[i] {
			t.Fatalf("atom %d: reindex(f)∘reindex(g) = %v, reindex(f∘g) = %v", i, viaComposed.Atoms[i], direct.Atoms[i])
		}
	}
}
