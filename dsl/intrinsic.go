package dsl

import "github.com/gogpu/thunder/ir"

func intrinsicUnary(name ir.IntrinsicID, ret ir.Index, a ir.Index) ir.Index {
	return emit(ir.Intrinsic{Name: name, Args: argList(a), Ret: ret})
}

func intrinsicBinary(name ir.IntrinsicID, ret ir.Index, a, b ir.Index) ir.Index {
	return emit(ir.Intrinsic{Name: name, Args: argList(a, b), Ret: ret})
}

// Sqrt records sqrt(x), constant-folding when x is a literal: an
// intrinsic over a constant f32 operand folds at record time rather
// than emitting an Intrinsic atom.
func Sqrt(x F32) F32 {
	if p, ok := ir.FoldUnaryF32(activeBuffer(), ir.IntrinSqrt, x.idx); ok {
		return F32{emit(p)}
	}
	ty := typeIndexPrimitive(ir.KindF32)
	return F32{intrinsicUnary(ir.IntrinSqrt, ty, x.idx)}
}

// InverseSqrt records inversesqrt(x).
func InverseSqrt(x F32) F32 {
	if p, ok := ir.FoldUnaryF32(activeBuffer(), ir.IntrinInverseSqrt, x.idx); ok {
		return F32{emit(p)}
	}
	ty := typeIndexPrimitive(ir.KindF32)
	return F32{intrinsicUnary(ir.IntrinInverseSqrt, ty, x.idx)}
}

// Abs records abs(x).
func Abs(x F32) F32 {
	if p, ok := ir.FoldUnaryF32(activeBuffer(), ir.IntrinAbs, x.idx); ok {
		return F32{emit(p)}
	}
	ty := typeIndexPrimitive(ir.KindF32)
	return F32{intrinsicUnary(ir.IntrinAbs, ty, x.idx)}
}

// Floor records floor(x).
func Floor(x F32) F32 {
	if p, ok := ir.FoldUnaryF32(activeBuffer(), ir.IntrinFloor, x.idx); ok {
		return F32{emit(p)}
	}
	ty := typeIndexPrimitive(ir.KindF32)
	return F32{intrinsicUnary(ir.IntrinFloor, ty, x.idx)}
}

// Ceil records ceil(x).
func Ceil(x F32) F32 {
	if p, ok := ir.FoldUnaryF32(activeBuffer(), ir.IntrinCeil, x.idx); ok {
		return F32{emit(p)}
	}
	ty := typeIndexPrimitive(ir.KindF32)
	return F32{intrinsicUnary(ir.IntrinCeil, ty, x.idx)}
}

// Fract records fract(x).
func Fract(x F32) F32 {
	if p, ok := ir.FoldUnaryF32(activeBuffer(), ir.IntrinFract, x.idx); ok {
		return F32{emit(p)}
	}
	ty := typeIndexPrimitive(ir.KindF32)
	return F32{intrinsicUnary(ir.IntrinFract, ty, x.idx)}
}

// Sin records sin(x).
func Sin(x F32) F32 {
	if p, ok := ir.FoldUnaryF32(activeBuffer(), ir.IntrinSin, x.idx); ok {
		return F32{emit(p)}
	}
	ty := typeIndexPrimitive(ir.KindF32)
	return F32{intrinsicUnary(ir.IntrinSin, ty, x.idx)}
}

// Cos records cos(x).
func Cos(x F32) F32 {
	if p, ok := ir.FoldUnaryF32(activeBuffer(), ir.IntrinCos, x.idx); ok {
		return F32{emit(p)}
	}
	ty := typeIndexPrimitive(ir.KindF32)
	return F32{intrinsicUnary(ir.IntrinCos, ty, x.idx)}
}

// Pow records pow(base, exp).
func Pow(base, exp F32) F32 {
	if p, ok := ir.FoldBinaryF32(activeBuffer(), ir.IntrinPow, base.idx, exp.idx); ok {
		return F32{emit(p)}
	}
	ty := typeIndexPrimitive(ir.KindF32)
	return F32{intrinsicBinary(ir.IntrinPow, ty, base.idx, exp.idx)}
}

// Min records min(a, b).
func Min(a, b F32) F32 {
	if p, ok := ir.FoldBinaryF32(activeBuffer(), ir.IntrinMin, a.idx, b.idx); ok {
		return F32{emit(p)}
	}
	ty := typeIndexPrimitive(ir.KindF32)
	return F32{intrinsicBinary(ir.IntrinMin, ty, a.idx, b.idx)}
}

// Max records max(a, b).
func Max(a, b F32) F32 {
	if p, ok := ir.FoldBinaryF32(activeBuffer(), ir.IntrinMax, a.idx, b.idx); ok {
		return F32{emit(p)}
	}
	ty := typeIndexPrimitive(ir.KindF32)
	return F32{intrinsicBinary(ir.IntrinMax, ty, a.idx, b.idx)}
}

// Mod records mod(a, b).
func Mod(a, b F32) F32 {
	if p, ok := ir.FoldBinaryF32(activeBuffer(), ir.IntrinModGLSL, a.idx, b.idx); ok {
		return F32{emit(p)}
	}
	ty := typeIndexPrimitive(ir.KindF32)
	return F32{intrinsicBinary(ir.IntrinModGLSL, ty, a.idx, b.idx)}
}

// Clamp records clamp(x, lo, hi). Three-operand intrinsics are not
// constant-folded — only unary and binary operations are.
func Clamp(x, lo, hi F32) F32 {
	ty := typeIndexPrimitive(ir.KindF32)
	return F32{emit(ir.Intrinsic{Name: ir.IntrinClamp, Args: argList(x.idx, lo.idx, hi.idx), Ret: ty})}
}

// Mix records mix(a, b, t).
func Mix(a, b, t F32) F32 {
	ty := typeIndexPrimitive(ir.KindF32)
	return F32{emit(ir.Intrinsic{Name: ir.IntrinMix, Args: argList(a.idx, b.idx, t.idx), Ret: ty})}
}

// Dot records dot(a, b) over two vec3 operands.
func Dot(a, b Vec3) F32 {
	ty := typeIndexPrimitive(ir.KindF32)
	return F32{intrinsicBinary(ir.IntrinDot, ty, a.idx, b.idx)}
}

// Cross records cross(a, b).
func Cross(a, b Vec3) Vec3 {
	ty := typeIndexPrimitive(ir.KindVec3)
	return Vec3{intrinsicBinary(ir.IntrinCross, ty, a.idx, b.idx)}
}

// Normalize records normalize(v).
func Normalize(v Vec3) Vec3 {
	ty := typeIndexPrimitive(ir.KindVec3)
	return Vec3{intrinsicUnary(ir.IntrinNormalize, ty, v.idx)}
}

// Length records length(v).
func Length(v Vec3) F32 {
	ty := typeIndexPrimitive(ir.KindF32)
	return F32{intrinsicUnary(ir.IntrinLength, ty, v.idx)}
}

// Texture records texture(sampler, uv).
func Texture(sampler ir.Index, uv Vec2) Vec4 {
	ty := typeIndexPrimitive(ir.KindVec4)
	return Vec4{intrinsicBinary(ir.IntrinTexture, ty, sampler, uv.idx)}
}
