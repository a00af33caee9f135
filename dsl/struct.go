package dsl

import (
	"fmt"
	"strings"

	"github.com/gogpu/thunder/ir"
)

// Field describes one member of a user-defined aggregate type: its
// source name (carried for diagnostics and GLSL emission, and part of
// NewStructType's interning key within one buffer; ir.TypesEqual, which
// link uses to deduplicate types, compares structure only) and the
// TypeField index of its own type.
type Field struct {
	Name string
	Type ir.Index
}

// StructType is a struct's TypeField chain, built once per distinct
// struct name and field list and interned in the active buffer the same way a
// primitive leaf type is.
type StructType struct {
	idx   ir.Index
	Names map[ir.Index]string
}

// Index returns the TypeField atom this struct type occupies.
func (s StructType) Index() ir.Index { return s.idx }

// NewStructType interns a struct type from its ordered field list. Two
// calls with the same struct name, field names and field types in the
// same buffer recall the same TypeField chain rather than emitting a
// duplicate.
func NewStructType(name string, fields ...Field) StructType {
	buf := activeBuffer()
	var key strings.Builder
	fmt.Fprintf(&key, "struct:%s", name)
	for _, f := range fields {
		fmt.Fprintf(&key, ":%s=%d", f.Name, f.Type)
	}

	names := make(map[ir.Index]string, len(fields))
	idx := buf.InternType(key.String(), func() ir.AtomKind {
		next := ir.NoIndex
		for i := len(fields) - 1; i >= 0; i-- {
			next = buf.Emit(ir.TypeField{Item: ir.KindBAD, Down: fields[i].Type, Next: next})
		}
		return ir.TypeField{Item: ir.KindBAD, Down: next, Next: ir.NoIndex}
	})

	// InternType runs the create thunk only once per distinct key, so
	// on a cache hit the chain already exists; either way the member
	// chain is walked here on every call to rebuild the per-field name
	// map returned with this StructType.
	chain := buf.Atoms[idx].Kind.(ir.TypeField).Down
	for i := 0; chain != ir.NoIndex && i < len(fields); i++ {
		names[chain] = fields[i].Name
		next := buf.Atoms[chain].Kind.(ir.TypeField).Next
		chain = next
	}

	return StructType{idx: idx, Names: names}
}

// Struct wraps a recorded Construct atom of a user-defined struct
// type.
type Struct struct {
	idx ir.Index
	ty  StructType
}

func (v Struct) index() ir.Index      { return v.idx }
func (v Struct) kind() ir.PrimitiveKind { return ir.KindBAD }

// Type returns the struct type v was constructed with.
func (v Struct) Type() StructType { return v.ty }

// NewStruct constructs a struct value of type ty from its field values
// in declaration order.
func NewStruct(ty StructType, fields ...Value) Struct {
	list := argList(values(fields...)...)
	idx := emit(ir.Construct{Type: ty.idx, Args: list, Mode: ir.ConstructTransient})
	return Struct{idx: idx, ty: ty}
}

// Field reads member i (0-based, declaration order) of v.
func (v Struct) Field(i int) ir.Index {
	return emit(ir.Load{Src: v.idx, Idx: fieldAtomIndex(v.ty, i)})
}

// fieldAtomIndex walks a struct type's TypeField chain to the i-th
// field's own atom index, the same walk NewStructType's Names-building
// loop uses — Load.Idx must key by that atom index, not the field's
// position, to match how fieldNames lookups resolve it downstream.
func fieldAtomIndex(ty StructType, i int) ir.Index {
	buf := activeBuffer()
	chain := buf.Atoms[ty.idx].Kind.(ir.TypeField).Down
	for n := 0; chain != ir.NoIndex; n++ {
		if n == i {
			return chain
		}
		chain = buf.Atoms[chain].Kind.(ir.TypeField).Next
	}
	return ir.NoIndex
}
