package ir

// LegalizeStorage rewrites buf so that every Store targets addressable
// storage. A Store whose destination is a transient Construct (one
// that would otherwise emit as an inline temporary rather than a named
// local) is illegal: there is nothing addressable to assign into.
// Legalization promotes that Construct's mode to "normal" in place.
//
// Promoting in place, rather than materializing a trailing atom and
// rewriting every user to point at it, keeps the result inside the
// ordering invariant that an atom may only reference strictly earlier
// positions (barring a Branch's FailTo, patched post hoc) — a newly
// appended storage atom would sit after every one of the construct's
// existing users, which would have to forward-reference it. Promoting
// the existing atom's Mode field
// achieves the same observable effect (the GLSL emitter binds a named
// local the first time it sees Mode == ConstructNormal) without
// introducing a second forward-reference mechanism beyond FailTo.
func LegalizeStorage(buf *Buffer) *Buffer {
	needsStorage := make(map[Index]bool)
	for _, atom := range buf.Atoms {
		st, ok := atom.Kind.(Store)
		if !ok {
			continue
		}
		if st.Dst == NoIndex || int(st.Dst) >= len(buf.Atoms) {
			continue
		}
		if c, ok := buf.Atoms[st.Dst].Kind.(Construct); ok && c.Mode == ConstructTransient {
			needsStorage[st.Dst] = true
		}
	}
	if len(needsStorage) == 0 {
		return buf
	}

	out := NewBuffer()
	out.Reserve(len(buf.Atoms))
	for i, atom := range buf.Atoms {
		idx := Index(i)
		if needsStorage[idx] {
			c := atom.Kind.(Construct) //nolint:forcetypeassert // guarded by needsStorage construction above
			c.Mode = ConstructNormal
			out.Emit(c)
			continue
		}
		out.Emit(atom.Kind)
	}
	return out
}
