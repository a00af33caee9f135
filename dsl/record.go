package dsl

import (
	"fmt"

	"github.com/gogpu/thunder/emitter"
	"github.com/gogpu/thunder/ir"
)

// emit records k into the calling goroutine's active buffer.
func emit(k ir.AtomKind) ir.Index {
	return emitter.Emit(k)
}

// activeBuffer returns the calling goroutine's active recording
// buffer, for operations (InternType-backed type emission, argument
// list construction) that need the buffer itself rather than just an
// append slot.
func activeBuffer() *ir.Buffer {
	return emitter.Top()
}

// primKey returns the InternType cache key for a primitive leaf type.
func primKey(k ir.PrimitiveKind) string {
	return fmt.Sprintf("prim:%d", k)
}

// typeIndexPrimitive interns (or recalls) the TypeField atom for a
// primitive leaf kind in the active buffer.
func typeIndexPrimitive(k ir.PrimitiveKind) ir.Index {
	return activeBuffer().InternType(primKey(k), func() ir.AtomKind {
		return ir.TypeField{Item: k, Down: ir.NoIndex, Next: ir.NoIndex}
	})
}

// TypeIndex interns (or recalls) the TypeField atom for a primitive
// leaf kind in the active buffer, exposed for callers outside this
// package that need a type index to pass to RetValue or a Qualifier
// helper without already holding a Value of that kind.
func TypeIndex(k ir.PrimitiveKind) ir.Index {
	return typeIndexPrimitive(k)
}

// argList emits a List chain over args tail-first, so every List node
// references only the strictly-lower-indexed node that follows it in
// the argument order — the same forward-reference rule every other
// atom kind obeys applies to List too.
func argList(args ...ir.Index) ir.Index {
	next := ir.NoIndex
	for i := len(args) - 1; i >= 0; i-- {
		next = emit(ir.List{Item: args[i], Next: next})
	}
	return next
}

// values extracts the recorded indices from a slice of Value.
func values(vs ...Value) []ir.Index {
	out := make([]ir.Index, len(vs))
	for i, v := range vs {
		out[i] = v.index()
	}
	return out
}
