package ir

import "golang.org/x/exp/slices"

// isControlFlow reports whether k is a Branch, Return or Store — atoms that
// are live regardless of use count because they carry structural or
// side-effecting meaning, not a value consulted elsewhere.
func isControlFlow(k AtomKind) bool {
	switch k.(type) {
	case Branch, Return, Store:
		return true
	default:
		return false
	}
}

// DCE removes atoms unreachable from any live root, compacting the
// result into a new buffer (a buffer is never reordered or mutated in
// place). It implements a work-set pass:
//
//  1. compute users[i] — every atom that references i
//  2. atom i is live if it is Store/Return/a control-flow atom, or
//     users[i] is non-empty, or it is a qualifier/type used by a live
//     atom
//  3. remove dead atoms, reindex, and repeat until a pass removes
//     nothing
//
// This pool-based pass over the flat atom stream is the only
// dead-code pass; package mir has no liveness or dead-code pass of its
// own.
func DCE(buf *Buffer) *Buffer {
	current := buf
	for {
		next, removed := dcePass(current)
		if !removed {
			return next
		}
		current = next
	}
}

func dcePass(buf *Buffer) (*Buffer, bool) {
	n := len(buf.Atoms)
	users := make([]int, n)
	for _, atom := range buf.Atoms {
		for _, used := range Addresses(atom.Kind) {
			if int(used) < n {
				users[used]++
			}
		}
	}

	live := make([]bool, n)
	for i, atom := range buf.Atoms {
		if isControlFlow(atom.Kind) || users[i] > 0 {
			live[i] = true
		}
	}
	// Propagate liveness to type/qualifier atoms referenced by a live
	// atom transitively (a qualifier's underlying type, a construct's
	// type, etc. must survive as long as anything using them does).
	changed := true
	for changed {
		changed = false
		for i, atom := range buf.Atoms {
			if !live[i] {
				continue
			}
			for _, used := range Addresses(atom.Kind) {
				if int(used) < n && !live[used] {
					live[used] = true
					changed = true
				}
			}
		}
	}

	deadCount := 0
	for _, l := range live {
		if !l {
			deadCount++
		}
	}
	if deadCount == 0 {
		return buf, false
	}

	mapping := make(map[Index]Index, n)
	out := NewBuffer()
	out.Reserve(n - deadCount)
	liveSet := make(map[Index]struct{}, n-deadCount)
	for i := range buf.Atoms {
		if live[i] {
			liveSet[Index(i)] = struct{}{}
		}
	}
	liveIndices := make([]Index, 0, len(liveSet))
	for idx := range liveSet {
		liveIndices = append(liveIndices, idx)
	}
	// Map iteration order is randomized; emission must be byte-identical
	// across runs, so the live set has to be put back into ascending
	// order before anything walks it.
	slices.Sort(liveIndices)

	for newIdx, oldIdx := range liveIndices {
		mapping[oldIdx] = Index(newIdx)
	}
	for _, oldIdx := range liveIndices {
		out.Emit(ReindexAtom(buf.Atoms[oldIdx].Kind, mapping))
	}
	return out, true
}
