// Package mir implements the Molecule IR: a lowered, shared-reference
// representation for structural optimization
// passes that find index-addressed atoms awkward to rewrite. Type
// deduplication across procedures does not use it: package link works
// on the flat ir.Buffer directly. Unlike ir.Buffer, a Molecule is a tree of *Ref values, so two
// Refs may point at the same shared Molecule payload without the
// strictly-lower-position discipline ir.Buffer enforces.
package mir

import "github.com/gogpu/thunder/ir"

// Ref is a strongly-typed, possibly-shared reference to a Molecule.
// Its Index is the position the Molecule occupied in the ir.Buffer it
// was lowered from, kept for diagnostics; identity for sharing
// purposes is the pointer, not the index.
type Ref struct {
	Index Index
	Mol   *Molecule
}

// Index mirrors ir.Index's role inside MIR: a lowering-time position,
// not a storage address (Molecules are not stored in a flat array).
type Index = ir.Index

// Molecule is the Ref payload: a tagged union mirroring ir.AtomKind's
// variant set, collapsed where the flat IR's List chains become a
// single Seq slice.
type Molecule struct {
	Kind MoleculeKind
}

// MoleculeKind is implemented by every Molecule variant.
type MoleculeKind interface {
	moleculeKind()
}

// Type is a lowered TypeField/Qualifier: a type descriptor, optionally
// with the member chain flattened into Fields.
type Type struct {
	Prim   ir.PrimitiveKind
	Fields []Ref
}

func (Type) moleculeKind() {}

// PrimKind tags which Go type Primitive.Value holds, since MIR keeps
// scalar kinds split as Bool|Int|UInt|Float|Double rather than reusing
// ir.PrimitiveKind's wider built-in-type enumeration.
type PrimKind uint8

const (
	PrimBool PrimKind = iota
	PrimInt
	PrimUInt
	PrimFloat
	PrimDouble
)

// Primitive is a lowered scalar literal.
type Primitive struct {
	Kind  PrimKind
	Value ir.PrimitiveValue
}

func (Primitive) moleculeKind() {}

// Operation is a lowered binary/unary Operation atom.
type Operation struct {
	A, B Ref
	Code ir.OpCode
}

func (Operation) moleculeKind() {}

// Intrinsic is a lowered Intrinsic atom, its List argument chain
// collapsed into Args.
type Intrinsic struct {
	ID   ir.IntrinsicID
	Args []Ref
}

func (Intrinsic) moleculeKind() {}

// Construct is a lowered Construct atom.
type Construct struct {
	Type Ref
	Args []Ref
	Mode ir.ConstructMode
}

func (Construct) moleculeKind() {}

// Store is a lowered Store atom.
type Store struct {
	Dst, Src Ref
}

func (Store) moleculeKind() {}

// Storage is a freshly materialized addressable binding — the MIR-level
// counterpart of what ir.LegalizeStorage does in place on the flat IR by
// promoting a Construct's Mode instead. Lower never produces one.
type Storage struct {
	Type Ref
}

func (Storage) moleculeKind() {}

// Return is a lowered Return atom.
type Return struct {
	Value Ref // Ref{Index: NoIndex} with a nil Mol for a void return
}

func (Return) moleculeKind() {}

// Field is a lowered Load (Index is the Load's Idx, -1 for a plain
// load) or Swizzle (Index is the swizzle code). An Operation with
// Code OpField lowers to an Operation, not a Field.
type Field struct {
	Src   Ref
	Index int
}

func (Field) moleculeKind() {}

// Aggregate is a lowered struct-typed Construct whose Args are already
// known to be per-field values rather than a flat scalar list.
type Aggregate struct {
	Type   Ref
	Fields []Ref
}

func (Aggregate) moleculeKind() {}

// Block is the top-level lowering result: a straight-line sequence of
// Molecule Refs in original-atom order.
type Block struct {
	Body []Ref
}
