// Package dsl is the host-language surface programs are written
// against: typed Go wrappers over ir.Index that record atoms into the
// calling goroutine's active emitter buffer as a side effect of each
// method call. Go has no operator overloading, so every
// arithmetic/comparison/logical operator the GLSL source language
// offers is a method here instead.
package dsl

import "github.com/gogpu/thunder/ir"

// Value is implemented by every DSL scalar, vector, and matrix
// wrapper: it names the IR index the wrapper's already-recorded atom
// occupies and the primitive leaf kind that describes it.
type Value interface {
	index() ir.Index
	kind() ir.PrimitiveKind
}

// Bool wraps a recorded boolean-valued atom.
type Bool struct{ idx ir.Index }

func (v Bool) index() ir.Index        { return v.idx }
func (Bool) kind() ir.PrimitiveKind   { return ir.KindBool }

// I32 wraps a recorded signed 32-bit integer atom.
type I32 struct{ idx ir.Index }

func (v I32) index() ir.Index       { return v.idx }
func (I32) kind() ir.PrimitiveKind  { return ir.KindI32 }

// U32 wraps a recorded unsigned 32-bit integer atom.
type U32 struct{ idx ir.Index }

func (v U32) index() ir.Index      { return v.idx }
func (U32) kind() ir.PrimitiveKind { return ir.KindU32 }

// F32 wraps a recorded 32-bit float atom.
type F32 struct{ idx ir.Index }

func (v F32) index() ir.Index      { return v.idx }
func (F32) kind() ir.PrimitiveKind { return ir.KindF32 }

// F64 wraps a recorded 64-bit float atom.
type F64 struct{ idx ir.Index }

func (v F64) index() ir.Index      { return v.idx }
func (F64) kind() ir.PrimitiveKind { return ir.KindF64 }

// ConstBool records a boolean literal.
func ConstBool(v bool) Bool { return Bool{emit(ir.Primitive{Kind: ir.KindBool, Value: ir.ValBool(v)})} }

// ConstI32 records a signed integer literal.
func ConstI32(v int32) I32 { return I32{emit(ir.Primitive{Kind: ir.KindI32, Value: ir.ValI32(v)})} }

// ConstU32 records an unsigned integer literal.
func ConstU32(v uint32) U32 { return U32{emit(ir.Primitive{Kind: ir.KindU32, Value: ir.ValU32(v)})} }

// ConstF32 records a 32-bit float literal.
func ConstF32(v float32) F32 { return F32{emit(ir.Primitive{Kind: ir.KindF32, Value: ir.ValF32(v)})} }

// ConstF64 records a 64-bit float literal.
func ConstF64(v float64) F64 { return F64{emit(ir.Primitive{Kind: ir.KindF64, Value: ir.ValF64(v)})} }

// ParamBool declares the n-th formal parameter as a bool.
func ParamBool(n uint32) Bool { return Bool{Parameter(n, typeIndexPrimitive(ir.KindBool))} }

// ParamI32 declares the n-th formal parameter as an i32.
func ParamI32(n uint32) I32 { return I32{Parameter(n, typeIndexPrimitive(ir.KindI32))} }

// ParamU32 declares the n-th formal parameter as a u32.
func ParamU32(n uint32) U32 { return U32{Parameter(n, typeIndexPrimitive(ir.KindU32))} }

// ParamF32 declares the n-th formal parameter as an f32.
func ParamF32(n uint32) F32 { return F32{Parameter(n, typeIndexPrimitive(ir.KindF32))} }

// ParamF64 declares the n-th formal parameter as an f64.
func ParamF64(n uint32) F64 { return F64{Parameter(n, typeIndexPrimitive(ir.KindF64))} }

func binary(a, b Value, code ir.OpCode) ir.Index {
	return emit(ir.Operation{A: a.index(), B: b.index(), Code: code})
}

func unary(a Value, code ir.OpCode) ir.Index {
	return emit(ir.Operation{A: a.index(), B: ir.NoIndex, Code: code})
}

// Add returns a + b.
func (a F32) Add(b F32) F32 { return F32{binary(a, b, ir.OpAdd)} }

// Sub returns a - b.
func (a F32) Sub(b F32) F32 { return F32{binary(a, b, ir.OpSub)} }

// Mul returns a * b.
func (a F32) Mul(b F32) F32 { return F32{binary(a, b, ir.OpMul)} }

// Div returns a / b.
func (a F32) Div(b F32) F32 { return F32{binary(a, b, ir.OpDiv)} }

// Neg returns -a.
func (a F32) Neg() F32 { return F32{unary(a, ir.OpNegate)} }

// Lt returns a < b.
func (a F32) Lt(b F32) Bool { return Bool{binary(a, b, ir.OpLess)} }

// Gt returns a > b.
func (a F32) Gt(b F32) Bool { return Bool{binary(a, b, ir.OpGreater)} }

// Le returns a <= b.
func (a F32) Le(b F32) Bool { return Bool{binary(a, b, ir.OpLessEqual)} }

// Ge returns a >= b.
func (a F32) Ge(b F32) Bool { return Bool{binary(a, b, ir.OpGreaterEqual)} }

// Eq returns a == b.
func (a F32) Eq(b F32) Bool { return Bool{binary(a, b, ir.OpEqual)} }

// Add returns a + b.
func (a I32) Add(b I32) I32 { return I32{binary(a, b, ir.OpAdd)} }

// Sub returns a - b.
func (a I32) Sub(b I32) I32 { return I32{binary(a, b, ir.OpSub)} }

// Mul returns a * b.
func (a I32) Mul(b I32) I32 { return I32{binary(a, b, ir.OpMul)} }

// Div returns a / b.
func (a I32) Div(b I32) I32 { return I32{binary(a, b, ir.OpDiv)} }

// Mod returns a % b.
func (a I32) Mod(b I32) I32 { return I32{binary(a, b, ir.OpMod)} }

// Neg returns -a.
func (a I32) Neg() I32 { return I32{unary(a, ir.OpNegate)} }

// Lt returns a < b.
func (a I32) Lt(b I32) Bool { return Bool{binary(a, b, ir.OpLess)} }

// Eq returns a == b.
func (a I32) Eq(b I32) Bool { return Bool{binary(a, b, ir.OpEqual)} }

// Add returns a + b.
func (a U32) Add(b U32) U32 { return U32{binary(a, b, ir.OpAdd)} }

// Sub returns a - b.
func (a U32) Sub(b U32) U32 { return U32{binary(a, b, ir.OpSub)} }

// Mul returns a * b.
func (a U32) Mul(b U32) U32 { return U32{binary(a, b, ir.OpMul)} }

// BitAnd returns a & b.
func (a U32) BitAnd(b U32) U32 { return U32{binary(a, b, ir.OpBitAnd)} }

// BitOr returns a | b.
func (a U32) BitOr(b U32) U32 { return U32{binary(a, b, ir.OpBitOr)} }

// Shl returns a << b.
func (a U32) Shl(b U32) U32 { return U32{binary(a, b, ir.OpShl)} }

// Shr returns a >> b.
func (a U32) Shr(b U32) U32 { return U32{binary(a, b, ir.OpShr)} }

// And returns the short-circuit conjunction a && b.
func (a Bool) And(b Bool) Bool { return Bool{binary(a, b, ir.OpLogicalAnd)} }

// Or returns the short-circuit disjunction a || b.
func (a Bool) Or(b Bool) Bool { return Bool{binary(a, b, ir.OpLogicalOr)} }

// Not returns !a.
func (a Bool) Not() Bool { return Bool{unary(a, ir.OpLogicalNot)} }
