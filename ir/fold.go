package ir

import "github.com/chewxy/math32"

// asPrimitive returns the Primitive atom at i, if i has already been
// recorded as one.
func asPrimitive(buf *Buffer, i Index) (Primitive, bool) {
	if i == NoIndex || int(i) >= len(buf.Atoms) {
		return Primitive{}, false
	}
	p, ok := buf.Atoms[i].Kind.(Primitive)
	return p, ok
}

func asF32(p Primitive) (float32, bool) {
	if p.Kind != KindF32 {
		return 0, false
	}
	v, ok := p.Value.(ValF32)
	return float32(v), ok
}

// FoldUnaryF32 evaluates a single-argument f32 intrinsic at record time
// when arg already names a constant f32 Primitive, returning the folded
// literal. This keeps shaders with literal-heavy expressions (a common
// pattern in generated code) from carrying a runtime intrinsic call for
// a value the compiler already knows, and does the arithmetic in true
// float32 precision — matching what a GLSL `float` actually has —
// rather than promoting through float64 and back.
func FoldUnaryF32(buf *Buffer, id IntrinsicID, arg Index) (Primitive, bool) {
	f, ok := asF32ByIndex(buf, arg)
	if !ok {
		return Primitive{}, false
	}
	var out float32
	switch id {
	case IntrinSqrt:
		out = math32.Sqrt(f)
	case IntrinInverseSqrt:
		if f == 0 {
			return Primitive{}, false
		}
		out = 1 / math32.Sqrt(f)
	case IntrinAbs:
		out = math32.Abs(f)
	case IntrinFloor:
		out = math32.Floor(f)
	case IntrinCeil:
		out = math32.Ceil(f)
	case IntrinFract:
		out = f - math32.Floor(f)
	case IntrinSin:
		out = math32.Sin(f)
	case IntrinCos:
		out = math32.Cos(f)
	case IntrinTan:
		out = math32.Tan(f)
	case IntrinExp:
		out = math32.Exp(f)
	case IntrinLog:
		if f <= 0 {
			return Primitive{}, false
		}
		out = math32.Log(f)
	default:
		return Primitive{}, false
	}
	return Primitive{Kind: KindF32, Value: ValF32(out)}, true
}

// FoldBinaryF32 folds a two-argument f32 intrinsic (pow, min, max, mod) when
// both operands are constant f32 Primitives.
func FoldBinaryF32(buf *Buffer, id IntrinsicID, a, b Index) (Primitive, bool) {
	fa, ok := asF32ByIndex(buf, a)
	if !ok {
		return Primitive{}, false
	}
	fb, ok := asF32ByIndex(buf, b)
	if !ok {
		return Primitive{}, false
	}
	var out float32
	switch id {
	case IntrinPow:
		out = math32.Pow(fa, fb)
	case IntrinMin:
		out = math32.Min(fa, fb)
	case IntrinMax:
		out = math32.Max(fa, fb)
	case IntrinModGLSL:
		out = fa - fb*math32.Floor(fa/fb)
	default:
		return Primitive{}, false
	}
	return Primitive{Kind: KindF32, Value: ValF32(out)}, true
}

func asF32ByIndex(buf *Buffer, i Index) (float32, bool) {
	p, ok := asPrimitive(buf, i)
	if !ok {
		return 0, false
	}
	return asF32(p)
}
