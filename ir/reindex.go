package ir

// remap looks i up in m, returning i unchanged if it is NoIndex or has
// no entry.
func remap(i Index, m map[Index]Index) Index {
	if i == NoIndex {
		return i
	}
	if to, ok := m[i]; ok {
		return to
	}
	return i
}

// ReindexAtom rewrites every index-bearing field of k through m,
// returning the updated atom. Fields absent from m are left unchanged.
// Every field is rewritten, including a Branch's FailTo — a reindex
// that only touches some of a variant's index fields (an Operation's
// operands but not a Return's Type, say) silently corrupts whichever
// field it skips.
func ReindexAtom(k AtomKind, m map[Index]Index) AtomKind {
	switch a := k.(type) {
	case TypeField:
		a.Down = remap(a.Down, m)
		a.Next = remap(a.Next, m)
		return a
	case Qualifier:
		a.Underlying = remap(a.Underlying, m)
		return a
	case Primitive:
		return a
	case Construct:
		a.Type = remap(a.Type, m)
		a.Args = remap(a.Args, m)
		return a
	case List:
		a.Item = remap(a.Item, m)
		a.Next = remap(a.Next, m)
		return a
	case Call:
		a.Args = remap(a.Args, m)
		a.Ret = remap(a.Ret, m)
		return a
	case Operation:
		a.A = remap(a.A, m)
		a.B = remap(a.B, m)
		return a
	case Swizzle:
		a.Src = remap(a.Src, m)
		return a
	case Store:
		a.Dst = remap(a.Dst, m)
		a.Src = remap(a.Src, m)
		return a
	case Load:
		a.Src = remap(a.Src, m)
		a.Idx = remap(a.Idx, m)
		return a
	case Intrinsic:
		a.Args = remap(a.Args, m)
		a.Ret = remap(a.Ret, m)
		return a
	case Branch:
		a.Cond = remap(a.Cond, m)
		a.FailTo = remap(a.FailTo, m)
		return a
	case Return:
		a.Value = remap(a.Value, m)
		a.Type = remap(a.Type, m)
		return a
	default:
		return k
	}
}

// Reindex applies m to every atom of buf, producing a new Buffer — a
// buffer is never reordered or rewritten in place.
func Reindex(buf *Buffer, m map[Index]Index) *Buffer {
	out := NewBuffer()
	out.Reserve(len(buf.Atoms))
	for _, atom := range buf.Atoms {
		out.Emit(ReindexAtom(atom.Kind, m))
	}
	return out
}

// ComposeReindex returns the map equivalent to applying g then f:
// reindex(f) ∘ reindex(g) == reindex(ComposeReindex(f, g)) wherever both
// are defined.
func ComposeReindex(f, g map[Index]Index) map[Index]Index {
	out := make(map[Index]Index, len(g))
	for k, v := range g {
		if fv, ok := f[v]; ok {
			out[k] = fv
		} else {
			out[k] = v
		}
	}
	return out
}
