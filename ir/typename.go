package ir

// TypeName recovers a human-readable type string for the TypeField
// chain rooted at idx: if names carries a registered struct name for
// idx, that name wins; otherwise the primitive leaf name is returned,
// following Down recursively for struct members. names may be nil.
func TypeName(buf *Buffer, idx Index, names map[Index]string) string {
	if names != nil {
		if n, ok := names[idx]; ok {
			return n
		}
	}
	if idx == NoIndex || int(idx) >= len(buf.Atoms) {
		return "void"
	}
	t, ok := buf.Atoms[idx].Kind.(TypeField)
	if !ok {
		return "unknown"
	}
	if t.Down == NoIndex {
		return primitiveName(t.Item)
	}
	return TypeName(buf, t.Down, names)
}
