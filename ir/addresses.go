package ir

// Addresses returns the set of indices k depends on — every
// non-negative index stored in one of its fields, except a Branch's
// FailTo, which is patched post hoc and therefore not a normal use-def
// edge (a forward reference, not a dependency). Used for use-def
// analysis by dead-code elimination and by the Graphviz dump.
func Addresses(k AtomKind) []Index {
	switch a := k.(type) {
	case TypeField:
		return present(a.Down, a.Next)
	case Qualifier:
		return present(a.Underlying)
	case Primitive:
		return nil
	case Construct:
		return present(a.Type, a.Args)
	case List:
		return present(a.Item, a.Next)
	case Call:
		return present(a.Args, a.Ret)
	case Operation:
		return present(a.A, a.B)
	case Swizzle:
		return present(a.Src)
	case Store:
		return present(a.Dst, a.Src)
	case Load:
		return present(a.Src, a.Idx)
	case Intrinsic:
		return present(a.Args, a.Ret)
	case Branch:
		return present(a.Cond)
	case Return:
		return present(a.Value, a.Type)
	default:
		return nil
	}
}

// present filters NoIndex entries out of a fixed list of candidate
// indices, preserving order.
func present(idxs ...Index) []Index {
	out := make([]Index, 0, len(idxs))
	for _, i := range idxs {
		if i != NoIndex {
			out = append(out, i)
		}
	}
	return out
}
