// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/thunder/ir"
)

// valueOf returns the GLSL text for the value produced at idx,
// computing and caching it on first request. Every atom kind but
// Construct in ConstructNormal mode is a pure expression: rendering it
// never emits a statement, only a string to splice into whatever
// referenced it.
func (w *Writer) valueOf(idx ir.Index) (string, error) {
	if idx == ir.NoIndex {
		return "", nil
	}
	if s, ok := w.exprCache[idx]; ok {
		return s, nil
	}
	if s, ok := w.qualNames[idx]; ok {
		w.exprCache[idx] = s
		return s, nil
	}
	if int(idx) >= len(w.buf.Atoms) {
		return "", fmt.Errorf("glsl: index %d out of range", idx)
	}

	var (
		s   string
		err error
	)
	switch k := w.buf.Atoms[idx].Kind.(type) {
	case ir.Primitive:
		s = formatPrimitive(k)
	case ir.Operation:
		s, err = w.valueOfOperation(k)
	case ir.Construct:
		s, err = w.valueOfConstruct(idx, k)
	case ir.Swizzle:
		s, err = w.valueOfSwizzle(k)
	case ir.Intrinsic:
		s, err = w.valueOfIntrinsic(k)
	case ir.Load:
		s, err = w.valueOfLoad(k)
	case ir.Call:
		s, err = w.valueOfCall(k)
	case ir.Qualifier:
		s = w.nameForQualifier(k)
	default:
		err = fmt.Errorf("glsl: atom %d of type %T is not a value", idx, k)
	}
	if err != nil {
		return "", err
	}
	w.exprCache[idx] = s
	return s, nil
}

func formatPrimitive(p ir.Primitive) string {
	switch v := p.Value.(type) {
	case ir.ValBool:
		if v {
			return "true"
		}
		return "false"
	case ir.ValI32:
		return strconv.FormatInt(int64(v), 10)
	case ir.ValU32:
		return strconv.FormatUint(uint64(v), 10) + "u"
	case ir.ValF32:
		return formatFloat(float64(v), 32)
	case ir.ValF64:
		return formatFloat(float64(v), 64) + "lf"
	default:
		return "0"
	}
}

// formatFloat prints f with a decimal point or exponent always
// present, so that an integral value like 1 still reads as a GLSL
// float literal ("1.0", never the bare "1").
func formatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

var opSymbols = map[ir.OpCode]string{
	ir.OpAdd: "+", ir.OpSub: "-", ir.OpMul: "*", ir.OpDiv: "/", ir.OpMod: "%",
	ir.OpBitAnd: "&", ir.OpBitOr: "|", ir.OpBitXor: "^",
	ir.OpShl: "<<", ir.OpShr: ">>",
	ir.OpLogicalAnd: "&&", ir.OpLogicalOr: "||",
	ir.OpEqual: "==", ir.OpNotEqual: "!=",
	ir.OpLess: "<", ir.OpLessEqual: "<=", ir.OpGreater: ">", ir.OpGreaterEqual: ">=",
	ir.OpAssign: "=",
}

// valueOfOperation renders a binary (or unary, when B == NoIndex)
// expression, always fully parenthesized regardless of operator.
func (w *Writer) valueOfOperation(op ir.Operation) (string, error) {
	a, err := w.valueOf(op.A)
	if err != nil {
		return "", err
	}
	switch op.Code {
	case ir.OpNegate:
		return fmt.Sprintf("-(%s)", a), nil
	case ir.OpLogicalNot:
		return fmt.Sprintf("!(%s)", a), nil
	case ir.OpBitNot:
		return fmt.Sprintf("~(%s)", a), nil
	case ir.OpField:
		return a, nil
	case ir.OpIndex:
		b, err := w.valueOf(op.B)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s[%s]", a, b), nil
	case ir.OpSwzX:
		return fmt.Sprintf("%s.x", a), nil
	case ir.OpSwzY:
		return fmt.Sprintf("%s.y", a), nil
	case ir.OpSwzZ:
		return fmt.Sprintf("%s.z", a), nil
	case ir.OpSwzW:
		return fmt.Sprintf("%s.w", a), nil
	}

	sym, ok := opSymbols[op.Code]
	if !ok {
		return "", fmt.Errorf("glsl: unsupported op code %d", op.Code)
	}
	b, err := w.valueOf(op.B)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%s %s %s)", a, sym, b), nil
}

// seq collapses the List chain headed at head into rendered value
// strings, in list order.
func (w *Writer) seq(head ir.Index) ([]string, error) {
	var out []string
	cur := head
	for cur != ir.NoIndex {
		l, ok := w.buf.Atoms[cur].Kind.(ir.List)
		if !ok {
			return nil, fmt.Errorf("glsl: index %d is not a List node", cur)
		}
		s, err := w.valueOf(l.Item)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
		cur = l.Next
	}
	return out, nil
}

func (w *Writer) valueOfConstruct(idx ir.Index, c ir.Construct) (string, error) {
	args, err := w.seq(c.Args)
	if err != nil {
		return "", err
	}
	ty := w.typeName(c.Type)
	expr := fmt.Sprintf("%s(%s)", ty, strings.Join(args, ", "))

	if c.Mode != ir.ConstructNormal {
		return expr, nil
	}

	local := w.namer.local()
	w.writeLine("%s %s = %s;", ty, local, expr)
	return local, nil
}

var swizzleSuffixes = map[ir.SwizzleCode]string{
	ir.SwzX: "x", ir.SwzY: "y", ir.SwzZ: "z", ir.SwzW: "w",
	ir.SwzXY: "xy", ir.SwzXZ: "xz", ir.SwzXYZ: "xyz", ir.SwzXYZW: "xyzw",
	ir.SwzRGB: "rgb", ir.SwzRGBA: "rgba",
}

func (w *Writer) valueOfSwizzle(s ir.Swizzle) (string, error) {
	src, err := w.valueOf(s.Src)
	if err != nil {
		return "", err
	}
	suffix, ok := swizzleSuffixes[s.Code]
	if !ok {
		return "", fmt.Errorf("glsl: unsupported swizzle code %d", s.Code)
	}
	return fmt.Sprintf("%s.%s", src, suffix), nil
}

var intrinsicNames = map[ir.IntrinsicID]string{
	ir.IntrinDot: "dot", ir.IntrinCross: "cross", ir.IntrinNormalize: "normalize",
	ir.IntrinLength: "length", ir.IntrinDistance: "distance",
	ir.IntrinReflect: "reflect", ir.IntrinRefract: "refract",
	ir.IntrinPow: "pow", ir.IntrinExp: "exp", ir.IntrinLog: "log",
	ir.IntrinSqrt: "sqrt", ir.IntrinInverseSqrt: "inversesqrt",
	ir.IntrinAbs: "abs", ir.IntrinFloor: "floor", ir.IntrinCeil: "ceil",
	ir.IntrinFract: "fract", ir.IntrinModGLSL: "mod",
	ir.IntrinMin: "min", ir.IntrinMax: "max", ir.IntrinClamp: "clamp",
	ir.IntrinMix: "mix", ir.IntrinStep: "step", ir.IntrinSmoothstep: "smoothstep",
	ir.IntrinSin: "sin", ir.IntrinCos: "cos", ir.IntrinTan: "tan",
	ir.IntrinDFdx: "dFdx", ir.IntrinDFdy: "dFdy",
	ir.IntrinDFdxFine: "dFdxFine", ir.IntrinDFdyFine: "dFdyFine",
	ir.IntrinFloatBitsToUint: "floatBitsToUint", ir.IntrinUintBitsToFloat: "uintBitsToFloat",
	ir.IntrinFloatBitsToInt: "floatBitsToInt", ir.IntrinIntBitsToFloat: "intBitsToFloat",
	ir.IntrinTexture: "texture", ir.IntrinTextureLod: "textureLod",
	ir.IntrinImageStore: "imageStore", ir.IntrinImageLoad: "imageLoad",
	ir.IntrinTraceRayEXT: "traceRayEXT",
}

func (w *Writer) valueOfIntrinsic(in ir.Intrinsic) (string, error) {
	name, ok := intrinsicNames[in.Name]
	if !ok {
		return "", fmt.Errorf("glsl: unsupported intrinsic %d", in.Name)
	}
	args, err := w.seq(in.Args)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", ")), nil
}

// valueOfLoad renders a plain load (Idx == NoIndex, pass through to
// Src's own value) or a field/array projection: a struct member name
// when Src's static type is a known struct, else a numeric subscript.
func (w *Writer) valueOfLoad(l ir.Load) (string, error) {
	src, err := w.valueOf(l.Src)
	if err != nil {
		return "", err
	}
	if l.Idx == ir.NoIndex {
		return src, nil
	}

	if fname, ok := w.fieldNames[l.Idx]; ok {
		return fmt.Sprintf("%s.%s", src, w.namer.escape(canonicalize(fname))), nil
	}
	if int(l.Idx) < len(w.buf.Atoms) {
		if _, ok := w.buf.Atoms[l.Idx].Kind.(ir.TypeField); ok {
			return fmt.Sprintf("%s.member_%d", src, l.Idx), nil
		}
	}
	return fmt.Sprintf("%s[%d]", src, l.Idx), nil
}

func (w *Writer) valueOfCall(c ir.Call) (string, error) {
	args, err := w.seq(c.Args)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("_proc%d", c.CallableID)
	if int(c.CallableID) < len(w.procNames) {
		name = w.procNames[c.CallableID]
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", ")), nil
}
