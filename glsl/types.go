// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "github.com/gogpu/thunder/ir"

// glslTypeKeyword returns the GLSL built-in keyword for a primitive
// leaf kind. KindBAD (a struct chain) is handled by the caller via the
// struct name table instead.
func glslTypeKeyword(k ir.PrimitiveKind) string {
	switch k {
	case ir.KindBool:
		return "bool"
	case ir.KindI32:
		return "int"
	case ir.KindU32:
		return "uint"
	case ir.KindF32:
		return "float"
	case ir.KindF64:
		return "double"
	case ir.KindVec2:
		return "vec2"
	case ir.KindVec3:
		return "vec3"
	case ir.KindVec4:
		return "vec4"
	case ir.KindIVec2:
		return "ivec2"
	case ir.KindIVec3:
		return "ivec3"
	case ir.KindIVec4:
		return "ivec4"
	case ir.KindUVec2:
		return "uvec2"
	case ir.KindUVec3:
		return "uvec3"
	case ir.KindUVec4:
		return "uvec4"
	case ir.KindBVec2:
		return "bvec2"
	case ir.KindBVec3:
		return "bvec3"
	case ir.KindBVec4:
		return "bvec4"
	case ir.KindMat2:
		return "mat2"
	case ir.KindMat3:
		return "mat3"
	case ir.KindMat4:
		return "mat4"
	case ir.KindSampler2D:
		return "sampler2D"
	case ir.KindImage2D:
		return "image2D"
	case ir.KindAccelerationStructure:
		return "accelerationStructureEXT"
	default:
		return "int"
	}
}

// typeName resolves the GLSL spelling of the type at idx: a struct
// name if one was registered for this TypeField, otherwise the
// built-in keyword for its primitive leaf — the same type-name
// recovery ir.TypeName does, specialized to GLSL's keyword set instead
// of a free-form string.
func (w *Writer) typeName(idx ir.Index) string {
	if name, ok := w.structNames[idx]; ok {
		return name
	}
	if int(idx) >= len(w.buf.Atoms) {
		return "int"
	}
	tf, ok := w.buf.Atoms[idx].Kind.(ir.TypeField)
	if !ok {
		return "int"
	}
	if tf.Item != ir.KindBAD {
		return glslTypeKeyword(tf.Item)
	}
	if tf.Down != ir.NoIndex {
		return w.typeName(tf.Down)
	}
	return "int"
}

// isStructType reports whether idx names a struct TypeField chain
// (KindBAD head with a Down member chain), as opposed to a scalar or
// built-in vector/matrix leaf.
func (w *Writer) isStructType(idx ir.Index) bool {
	if int(idx) >= len(w.buf.Atoms) {
		return false
	}
	tf, ok := w.buf.Atoms[idx].Kind.(ir.TypeField)
	return ok && tf.Item == ir.KindBAD && tf.Down != ir.NoIndex
}

// structMembers walks the field chain of a struct TypeField, returning
// each member's own TypeField index in declaration order.
func (w *Writer) structMembers(idx ir.Index) []ir.Index {
	tf, ok := w.buf.Atoms[idx].Kind.(ir.TypeField)
	if !ok || tf.Down == ir.NoIndex {
		return nil
	}
	var out []ir.Index
	cur := tf.Down
	for cur != ir.NoIndex {
		out = append(out, cur)
		mf, ok := w.buf.Atoms[cur].Kind.(ir.TypeField)
		if !ok {
			break
		}
		cur = mf.Next
	}
	return out
}
