package dsl

import "github.com/gogpu/thunder/ir"

// Vec2, Vec3, Vec4 wrap a recorded Construct atom of the matching
// built-in vector type.
type Vec2 struct{ idx ir.Index }
type Vec3 struct{ idx ir.Index }
type Vec4 struct{ idx ir.Index }

func (v Vec2) index() ir.Index      { return v.idx }
func (Vec2) kind() ir.PrimitiveKind { return ir.KindVec2 }
func (v Vec3) index() ir.Index      { return v.idx }
func (Vec3) kind() ir.PrimitiveKind { return ir.KindVec3 }
func (v Vec4) index() ir.Index      { return v.idx }
func (Vec4) kind() ir.PrimitiveKind { return ir.KindVec4 }

func construct(k ir.PrimitiveKind, mode ir.ConstructMode, args ...ir.Index) ir.Index {
	ty := typeIndexPrimitive(k)
	list := argList(args...)
	return emit(ir.Construct{Type: ty, Args: list, Mode: mode})
}

// NewVec2 constructs a vec2 from two scalars.
func NewVec2(x, y F32) Vec2 {
	return Vec2{construct(ir.KindVec2, ir.ConstructTransient, x.idx, y.idx)}
}

// NewVec3 constructs a vec3 from three scalars.
func NewVec3(x, y, z F32) Vec3 {
	return Vec3{construct(ir.KindVec3, ir.ConstructTransient, x.idx, y.idx, z.idx)}
}

// NewVec3FromVec2 extends a vec2 with a trailing scalar.
func NewVec3FromVec2(xy Vec2, z F32) Vec3 {
	return Vec3{construct(ir.KindVec3, ir.ConstructTransient, xy.idx, z.idx)}
}

// NewVec4 constructs a vec4 from four scalars.
func NewVec4(x, y, z, w F32) Vec4 {
	return Vec4{construct(ir.KindVec4, ir.ConstructTransient, x.idx, y.idx, z.idx, w.idx)}
}

// NewVec4FromVec3 extends a vec3 with a trailing scalar.
func NewVec4FromVec3(xyz Vec3, w F32) Vec4 {
	return Vec4{construct(ir.KindVec4, ir.ConstructTransient, xyz.idx, w.idx)}
}

func swizzle1(src ir.Index, code ir.SwizzleCode) F32 {
	return F32{emit(ir.Swizzle{Src: src, Code: code})}
}

// X returns the first component.
func (v Vec2) X() F32 { return swizzle1(v.idx, ir.SwzX) }

// Y returns the second component.
func (v Vec2) Y() F32 { return swizzle1(v.idx, ir.SwzY) }

// X returns the first component.
func (v Vec3) X() F32 { return swizzle1(v.idx, ir.SwzX) }

// Y returns the second component.
func (v Vec3) Y() F32 { return swizzle1(v.idx, ir.SwzY) }

// Z returns the third component.
func (v Vec3) Z() F32 { return swizzle1(v.idx, ir.SwzZ) }

// XY returns the leading two components as a vec2.
func (v Vec3) XY() Vec2 { return Vec2{emit(ir.Swizzle{Src: v.idx, Code: ir.SwzXY})} }

// X returns the first component.
func (v Vec4) X() F32 { return swizzle1(v.idx, ir.SwzX) }

// Y returns the second component.
func (v Vec4) Y() F32 { return swizzle1(v.idx, ir.SwzY) }

// Z returns the third component.
func (v Vec4) Z() F32 { return swizzle1(v.idx, ir.SwzZ) }

// W returns the fourth component.
func (v Vec4) W() F32 { return swizzle1(v.idx, ir.SwzW) }

// XYZ returns the leading three components as a vec3.
func (v Vec4) XYZ() Vec3 { return Vec3{emit(ir.Swizzle{Src: v.idx, Code: ir.SwzXYZ})} }

// RGB treats v as a color and returns its leading three channels.
func (v Vec4) RGB() Vec3 { return Vec3{emit(ir.Swizzle{Src: v.idx, Code: ir.SwzRGB})} }

// Add returns the componentwise sum a + b.
func (a Vec2) Add(b Vec2) Vec2 { return Vec2{binary(a, b, ir.OpAdd)} }

// Sub returns the componentwise difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{binary(a, b, ir.OpSub)} }

// Mul returns the componentwise product a * b.
func (a Vec2) Mul(b Vec2) Vec2 { return Vec2{binary(a, b, ir.OpMul)} }

// Scale returns v scaled by the scalar s.
func (v Vec2) Scale(s F32) Vec2 { return Vec2{binary(v, s, ir.OpMul)} }

// Add returns the componentwise sum a + b.
func (a Vec3) Add(b Vec3) Vec3 { return Vec3{binary(a, b, ir.OpAdd)} }

// Sub returns the componentwise difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{binary(a, b, ir.OpSub)} }

// Mul returns the componentwise product a * b.
func (a Vec3) Mul(b Vec3) Vec3 { return Vec3{binary(a, b, ir.OpMul)} }

// Scale returns v scaled by the scalar s.
func (v Vec3) Scale(s F32) Vec3 { return Vec3{binary(v, s, ir.OpMul)} }

// Add returns the componentwise sum a + b.
func (a Vec4) Add(b Vec4) Vec4 { return Vec4{binary(a, b, ir.OpAdd)} }

// Sub returns the componentwise difference a - b.
func (a Vec4) Sub(b Vec4) Vec4 { return Vec4{binary(a, b, ir.OpSub)} }

// Mul returns the componentwise product a * b.
func (a Vec4) Mul(b Vec4) Vec4 { return Vec4{binary(a, b, ir.OpMul)} }

// Scale returns v scaled by the scalar s.
func (v Vec4) Scale(s F32) Vec4 { return Vec4{binary(v, s, ir.OpMul)} }
