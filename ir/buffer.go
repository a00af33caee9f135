package ir

import (
	"fmt"
	"io"
)

// Buffer (the spec's "Scratch") is a growable, index-addressed, append-
// only pool of Atoms. Every index into Buffer.Atoms is an atom's
// position; atoms may only reference strictly lower positions, except a
// Branch's FailTo, which is patched post hoc once its closing End is
// recorded.
type Buffer struct {
	Atoms []Atom

	// typeCache memoizes TypeField emission per distinct structural
	// signature within this buffer: constructing a host-side instance
	// triggers emission of a TypeField chain only once per distinct
	// structural signature in the current buffer, the same
	// get-or-create-by-signature behavior a type registry gives a whole
	// module, scoped down to one recording buffer instead.
	typeCache map[string]Index
}

// NewBuffer returns an empty buffer with a small initial capacity.
func NewBuffer() *Buffer {
	return &Buffer{Atoms: make([]Atom, 0, 16)}
}

// Emit appends k to the pool, doubling capacity on growth, and returns
// its new position. Amortized O(1).
func (b *Buffer) Emit(k AtomKind) Index {
	b.Atoms = append(b.Atoms, Atom{Kind: k})
	return Index(len(b.Atoms) - 1)
}

// Reserve ensures capacity for n more atoms without reallocating.
func (b *Buffer) Reserve(n int) {
	if cap(b.Atoms)-len(b.Atoms) >= n {
		return
	}
	grown := make([]Atom, len(b.Atoms), len(b.Atoms)+n)
	copy(grown, b.Atoms)
	b.Atoms = grown
}

// Clear resets the append pointer; pool memory is retained for reuse.
func (b *Buffer) Clear() {
	b.Atoms = b.Atoms[:0]
	b.typeCache = nil
}

// Dump prints each atom with its index, one line per atom.
func (b *Buffer) Dump(w io.Writer) error {
	for i, atom := range b.Atoms {
		if _, err := fmt.Fprintln(w, DumpAtom(Index(i), atom.Kind)); err != nil {
			return err
		}
	}
	return nil
}

// InternType returns the cached index for key if this buffer has
// already emitted that structural type, otherwise it builds and emits
// the type via create and caches the result.
func (b *Buffer) InternType(key string, create func() AtomKind) Index {
	if b.typeCache == nil {
		b.typeCache = make(map[string]Index)
	}
	if idx, ok := b.typeCache[key]; ok {
		return idx
	}
	idx := b.Emit(create())
	b.typeCache[key] = idx
	return idx
}

// Kernel is the immutable snapshot Buffer.Export produces: a frozen
// atom pool handed to transformations, linkage, and emitters, which may
// read it but never append to it.
type Kernel struct {
	Atoms []Atom
}

// Export produces an immutable snapshot of b for consumption downstream.
func (b *Buffer) Export() *Kernel {
	frozen := make([]Atom, len(b.Atoms))
	copy(frozen, b.Atoms)
	return &Kernel{Atoms: frozen}
}

// TypesEqual reports whether the TypeField chains (or primitive leaves)
// rooted at a and b in buf are structurally identical, following Down
// recursively and comparing Item at each primitive leaf. Used by
// Validate and by LinkageUnit's type deduplication.
func TypesEqual(buf *Buffer, a, b Index) bool {
	if a == b {
		return true
	}
	if a == NoIndex || b == NoIndex {
		return false
	}
	if int(a) >= len(buf.Atoms) || int(b) >= len(buf.Atoms) {
		return false
	}
	ta, ok1 := buf.Atoms[a].Kind.(TypeField)
	tb, ok2 := buf.Atoms[b].Kind.(TypeField)
	if !ok1 || !ok2 {
		return false
	}
	if ta.Down == NoIndex && tb.Down == NoIndex {
		return ta.Item == tb.Item
	}
	if ta.Down == NoIndex || tb.Down == NoIndex {
		return false
	}
	if !TypesEqual(buf, ta.Down, tb.Down) {
		return false
	}
	// Both chains must end at the same point, member-for-member.
	aNext, bNext := ta.Next, tb.Next
	for aNext != NoIndex && bNext != NoIndex {
		if !TypesEqual(buf, aNext, bNext) {
			return false
		}
		na, ok := buf.Atoms[aNext].Kind.(TypeField)
		if !ok {
			return false
		}
		nb, ok := buf.Atoms[bNext].Kind.(TypeField)
		if !ok {
			return false
		}
		aNext, bNext = na.Next, nb.Next
	}
	return aNext == NoIndex && bNext == NoIndex
}

// Validate enforces layout-IO consistency: for every (qualifier kind,
// binding) pair, every atom sharing that pair must share a structurally
// equal underlying type. A mismatch is reported, not fatal to the
// buffer. Parameter qualifiers are formal arguments of their own
// procedure, not layout bindings, and are not checked.
func (b *Buffer) Validate() []ValidationError {
	type key struct {
		kind    QualifierKind
		binding uint32
	}
	first := make(map[key]Index)
	var errs []ValidationError

	for i, atom := range b.Atoms {
		q, ok := atom.Kind.(Qualifier)
		if !ok || q.Kind == QualParameter {
			continue
		}
		k := key{q.Kind, q.Binding}
		if firstIdx, seen := first[k]; seen {
			if !TypesEqual(b, firstIdx, q.Underlying) {
				errs = append(errs, ValidationError{
					Message:   fmt.Sprintf("layout conflict: qualifier kind %v binding %d has divergent types at atoms %d and %d", q.Kind, q.Binding, firstIdx, i),
					AtomIndex: indexPtr(Index(i)),
				})
			}
			continue
		}
		first[k] = q.Underlying
	}
	return errs
}

func indexPtr(i Index) *Index { return &i }
