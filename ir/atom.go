package ir

// Index addresses a position within a Buffer's atom pool. NoIndex
// denotes "none" — the absence of an operand, not a reference to the
// first atom.
type Index int32

// NoIndex is the sentinel value meaning "no atom referenced".
const NoIndex Index = -1

// Atom is one instruction in the Thunder IR.
type Atom struct {
	Kind AtomKind
}

// AtomKind is implemented by every atom variant (TypeField, Qualifier,
// Primitive, Construct, List, Call, Operation, Swizzle, Store, Load,
// Intrinsic, Branch, Return). It carries no behavior of its own —
// dispatch over the closed set of variants happens via type switches in
// addresses.go, reindex.go, and dump.go, the same shape GLSL emission
// uses to dispatch over an expression-kind union.
type AtomKind interface {
	atomKind()
}

// PrimitiveKind tags the leaf GLSL built-in type of a TypeField, a
// Primitive's scalar kind, or the element type baked into a Construct's
// type descriptor. The closed scalar set (bool, i32, u32, f32, f64) is
// extended here with the built-in vector, matrix, sampler, image, and
// acceleration-structure tags the DSL surface needs so that
// TypeField — the only type-describing atom — can also describe
// non-struct, non-scalar built-ins without a new atom variant. KindBAD
// marks a TypeField that is a pure struct-chain link node (its Down
// field carries the real type).
type PrimitiveKind uint8

const (
	KindBAD PrimitiveKind = iota
	KindBool
	KindI32
	KindU32
	KindF32
	KindF64
	KindVec2
	KindVec3
	KindVec4
	KindIVec2
	KindIVec3
	KindIVec4
	KindUVec2
	KindUVec3
	KindUVec4
	KindBVec2
	KindBVec3
	KindBVec4
	KindMat2
	KindMat3
	KindMat4
	KindSampler2D
	KindImage2D
	KindAccelerationStructure
)

// TypeField represents either a primitive type (Item set, Down ==
// NoIndex) or a link in a singly-linked chain of struct fields (Down
// points at the field's own TypeField, Next at the following field).
type TypeField struct {
	Item PrimitiveKind
	Down Index
	Next Index
}

func (TypeField) atomKind() {}

// QualifierKind names the boundary-declaration role of a Qualifier
// atom: a layout binding, a push constant block, a uniform/storage
// buffer, a ray-tracing payload slot, and so on.
type QualifierKind uint8

const (
	QualLayoutInSmooth QualifierKind = iota
	QualLayoutInFlat
	QualLayoutOutSmooth
	QualLayoutOutFlat
	QualPushConstant
	QualUniform
	QualStorageBufferRead
	QualStorageBufferWrite
	QualBufferReference
	QualRayPayload
	QualRayPayloadIn
	QualHitAttribute
	QualImage2D
	QualSampler2D
	QualAccelerationStructure
	QualParameter
	QualSharedLocalSize
)

// Qualifier is a boundary declaration: a layout-in/out, push-constant,
// uniform, buffer, or parameter slot. Extra carries the parameter
// index when Kind == QualParameter.
type Qualifier struct {
	Underlying Index
	Binding    uint32
	Kind       QualifierKind
	Extra      uint32
}

func (Qualifier) atomKind() {}

// PrimitiveValue is the scalar union carried by a Primitive atom.
type PrimitiveValue interface {
	primitiveValue()
}

type ValBool bool
type ValI32 int32
type ValU32 uint32
type ValF32 float32
type ValF64 float64

func (ValBool) primitiveValue() {}
func (ValI32) primitiveValue()  {}
func (ValU32) primitiveValue()  {}
func (ValF32) primitiveValue()  {}
func (ValF64) primitiveValue()  {}

// Primitive is a scalar literal: a bool, i32, u32, f32, or f64 value.
type Primitive struct {
	Kind  PrimitiveKind
	Value PrimitiveValue
}

func (Primitive) atomKind() {}

// ConstructMode controls how the GLSL emitter materializes a Construct:
// inline as a transient temporary, as a named local ("normal"), or
// forwarded to the enclosing expression without its own binding.
type ConstructMode uint8

const (
	ConstructTransient ConstructMode = iota
	ConstructNormal
	ConstructForward
)

// Construct produces a value of Type, optionally from the argument
// list headed by Args (NoIndex for a zero-argument/default construct).
type Construct struct {
	Type Index
	Args Index
	Mode ConstructMode
}

func (Construct) atomKind() {}

// List is a singly-linked list node used for Construct argument packs,
// Call argument packs, and Intrinsic argument packs.
type List struct {
	Item Index
	Next Index
}

func (List) atomKind() {}

// Call invokes another procedure by its linkage-assigned handle.
type Call struct {
	CallableID uint32
	Args       Index
	Ret        Index
}

func (Call) atomKind() {}

// OpCode enumerates the operators an Operation atom may carry:
// arithmetic, bitwise, logical, comparison, assignment, unary negate,
// subscript, field access, and swizzle projection.
type OpCode uint8

const (
	OpAdd OpCode = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpBitAnd
	OpBitOr
	OpBitXor
	OpShl
	OpShr
	OpLogicalAnd
	OpLogicalOr
	OpEqual
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpAssign
	OpNegate
	OpLogicalNot
	OpBitNot
	OpIndex
	OpField
	OpSwzX
	OpSwzY
	OpSwzZ
	OpSwzW
)

// Operation is a binary (or unary, with B == NoIndex) expression over
// two already-recorded operands.
type Operation struct {
	A    Index
	B    Index
	Code OpCode
}

func (Operation) atomKind() {}

// SwizzleCode names a vector-component projection pattern.
type SwizzleCode uint8

const (
	SwzX SwizzleCode = iota
	SwzY
	SwzZ
	SwzW
	SwzXY
	SwzXZ
	SwzXYZ
	SwzXYZW
	SwzRGB
	SwzRGBA
)

// Swizzle projects a subset of Src's vector components.
type Swizzle struct {
	Src  Index
	Code SwizzleCode
}

func (Swizzle) atomKind() {}

// Store assigns Src to the addressable storage at Dst.
type Store struct {
	Dst Index
	Src Index
}

func (Store) atomKind() {}

// Load reads from Src, optionally projecting a field or array
// subscript named by Idx (NoIndex for a plain load).
type Load struct {
	Src Index
	Idx Index
}

func (Load) atomKind() {}

// IntrinsicID names a GLSL built-in function.
type IntrinsicID uint16

const (
	IntrinDot IntrinsicID = iota
	IntrinCross
	IntrinNormalize
	IntrinLength
	IntrinDistance
	IntrinReflect
	IntrinRefract
	IntrinPow
	IntrinExp
	IntrinLog
	IntrinSqrt
	IntrinInverseSqrt
	IntrinAbs
	IntrinFloor
	IntrinCeil
	IntrinFract
	IntrinModGLSL
	IntrinMin
	IntrinMax
	IntrinClamp
	IntrinMix
	IntrinStep
	IntrinSmoothstep
	IntrinSin
	IntrinCos
	IntrinTan
	IntrinDFdx
	IntrinDFdy
	IntrinDFdxFine
	IntrinDFdyFine
	IntrinFloatBitsToUint
	IntrinUintBitsToFloat
	IntrinFloatBitsToInt
	IntrinIntBitsToFloat
	IntrinTexture
	IntrinTextureLod
	IntrinImageStore
	IntrinImageLoad
	IntrinTraceRayEXT
)

// Intrinsic maps to a GLSL built-in, called with the argument list
// headed by Args and producing a value of type Ret.
type Intrinsic struct {
	Name IntrinsicID
	Args Index
	Ret  Index
}

func (Intrinsic) atomKind() {}

// BranchKind tags the structured-control-flow role of a Branch atom.
type BranchKind uint8

const (
	BranchCond BranchKind = iota
	BranchElif
	BranchWhile
	BranchEnd
)

// Branch opens (Cond, Elif, While) or closes (End) a structured
// control-flow scope. FailTo is back-patched post hoc once the scope's
// closing End is recorded: the open branch's index is pushed onto an
// auxiliary stack at emission time, and popped and patched when End
// records.
type Branch struct {
	BKind  BranchKind
	Cond   Index
	FailTo Index
}

func (Branch) atomKind() {}

// Return exits the enclosing procedure, optionally with Value (NoIndex
// for a void return) of static type Type.
type Return struct {
	Value Index
	Type  Index
}

func (Return) atomKind() {}
