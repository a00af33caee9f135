package dsl

import "github.com/gogpu/thunder/ir"

// Mat2, Mat3, Mat4 wrap a recorded Construct atom of the matching
// built-in square matrix type.
type Mat2 struct{ idx ir.Index }
type Mat3 struct{ idx ir.Index }
type Mat4 struct{ idx ir.Index }

func (v Mat2) index() ir.Index      { return v.idx }
func (Mat2) kind() ir.PrimitiveKind { return ir.KindMat2 }
func (v Mat3) index() ir.Index      { return v.idx }
func (Mat3) kind() ir.PrimitiveKind { return ir.KindMat3 }
func (v Mat4) index() ir.Index      { return v.idx }
func (Mat4) kind() ir.PrimitiveKind { return ir.KindMat4 }

// NewMat2 constructs a mat2 from its two column vectors.
func NewMat2(c0, c1 Vec2) Mat2 {
	return Mat2{construct(ir.KindMat2, ir.ConstructTransient, c0.idx, c1.idx)}
}

// NewMat3 constructs a mat3 from its three column vectors.
func NewMat3(c0, c1, c2 Vec3) Mat3 {
	return Mat3{construct(ir.KindMat3, ir.ConstructTransient, c0.idx, c1.idx, c2.idx)}
}

// NewMat4 constructs a mat4 from its four column vectors.
func NewMat4(c0, c1, c2, c3 Vec4) Mat4 {
	return Mat4{construct(ir.KindMat4, ir.ConstructTransient, c0.idx, c1.idx, c2.idx, c3.idx)}
}

// Mul returns the matrix product a * b.
func (a Mat2) Mul(b Mat2) Mat2 { return Mat2{binary(a, b, ir.OpMul)} }

// MulVec returns the matrix-vector product a * v.
func (a Mat2) MulVec(v Vec2) Vec2 { return Vec2{binary(a, v, ir.OpMul)} }

// Mul returns the matrix product a * b.
func (a Mat3) Mul(b Mat3) Mat3 { return Mat3{binary(a, b, ir.OpMul)} }

// MulVec returns the matrix-vector product a * v.
func (a Mat3) MulVec(v Vec3) Vec3 { return Vec3{binary(a, v, ir.OpMul)} }

// Mul returns the matrix product a * b.
func (a Mat4) Mul(b Mat4) Mat4 { return Mat4{binary(a, b, ir.OpMul)} }

// MulVec returns the matrix-vector product a * v.
func (a Mat4) MulVec(v Vec4) Vec4 { return Vec4{binary(a, v, ir.OpMul)} }
