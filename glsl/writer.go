// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strings"

	"github.com/gogpu/thunder/ir"
)

// Writer holds the state of one Compile pass.
type Writer struct {
	buf  *ir.Buffer
	opts Options
	out  strings.Builder

	indent int

	structNames map[ir.Index]string
	fieldNames  map[ir.Index]string

	namer     *namer
	exprCache map[ir.Index]string
	qualNames map[ir.Index]string

	declaredStructs map[ir.Index]bool
	declaredQuals   map[qualKey]bool

	procNames []string
}

type qualKey struct {
	kind    ir.QualifierKind
	binding uint32
}

func newWriter(buf *ir.Buffer, opts Options) *Writer {
	structNames := opts.StructNames
	if structNames == nil {
		structNames = map[ir.Index]string{}
	}
	fieldNames := opts.FieldNames
	if fieldNames == nil {
		fieldNames = map[ir.Index]string{}
	}
	return &Writer{
		buf:             buf,
		opts:            opts,
		structNames:     structNames,
		fieldNames:      fieldNames,
		namer:           newNamer(),
		exprCache:       make(map[ir.Index]string),
		qualNames:       make(map[ir.Index]string),
		declaredStructs: make(map[ir.Index]bool),
		declaredQuals:   make(map[qualKey]bool),
	}
}

func (w *Writer) writeLine(format string, args ...any) {
	for i := 0; i < w.indent; i++ {
		w.out.WriteString("    ")
	}
	if len(args) == 0 {
		w.out.WriteString(format)
	} else {
		fmt.Fprintf(&w.out, format, args...)
	}
	w.out.WriteByte('\n')
}

func (w *Writer) pushIndent() { w.indent++ }
func (w *Writer) popIndent() {
	if w.indent > 0 {
		w.indent--
	}
}

// writeProgram emits the version header, struct declarations, global
// qualifier declarations, and one function per entry of procs, in
// that order.
func (w *Writer) writeProgram(procs []ProcedureSignature) error {
	w.writeLine("#version %d", w.opts.Version)

	w.procNames = make([]string, len(procs))
	for i, p := range procs {
		w.procNames[i] = p.Name
	}

	if err := w.writeStructs(); err != nil {
		return err
	}
	if err := w.writeGlobalQualifiers(procs); err != nil {
		return err
	}

	for _, p := range procs {
		if err := w.writeProcedure(p); err != nil {
			return err
		}
	}
	return nil
}

// writeStructs emits one `struct Name { members };` per distinct
// struct TypeField chain in the merged buffer, in index order (first
// occurrence order). link.dedupTypes redirects references to the first
// of several equal chains but leaves the later copies in the buffer, so
// a head structurally equal to one already declared is skipped: there
// is exactly one declaration per distinct structural signature.
func (w *Writer) writeStructs() error {
	for i, atom := range w.buf.Atoms {
		idx := ir.Index(i)
		if _, ok := atom.Kind.(ir.TypeField); !ok {
			continue
		}
		if !w.isStructType(idx) || w.declaredStructs[idx] {
			continue
		}
		duplicate := false
		for declared := range w.declaredStructs {
			if ir.TypesEqual(w.buf, declared, idx) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		w.declaredStructs[idx] = true

		name := w.typeName(idx)
		w.writeLine("struct %s {", name)
		w.pushIndent()
		for _, member := range w.structMembers(idx) {
			fname := w.fieldNames[member]
			if fname == "" {
				fname = fmt.Sprintf("member_%d", member)
			}
			w.writeLine("%s %s;", w.typeName(member), w.namer.escape(canonicalize(fname)))
		}
		w.popIndent()
		w.writeLine("};")
	}
	return nil
}

// writeGlobalQualifiers emits one declaration per distinct
// (kind, binding) pair among non-parameter Qualifier atoms anywhere in
// the merged buffer, deduplicated the same way Buffer.Validate groups
// them.
func (w *Writer) writeGlobalQualifiers(procs []ProcedureSignature) error {
	paramAtoms := make(map[ir.Index]bool)
	for _, p := range procs {
		for i := 0; i < p.Length; i++ {
			idx := p.Start + ir.Index(i)
			if q, ok := w.buf.Atoms[idx].Kind.(ir.Qualifier); ok && q.Kind == ir.QualParameter {
				paramAtoms[idx] = true
			}
		}
	}

	for i, atom := range w.buf.Atoms {
		idx := ir.Index(i)
		q, ok := atom.Kind.(ir.Qualifier)
		if !ok || q.Kind == ir.QualParameter || paramAtoms[idx] {
			continue
		}
		key := qualKey{q.Kind, q.Binding}
		if w.declaredQuals[key] {
			w.qualNames[idx] = w.nameForQualifier(q)
			continue
		}
		w.declaredQuals[key] = true
		name := w.nameForQualifier(q)
		w.qualNames[idx] = name
		w.writeGlobalQualifierDecl(q, name)
	}
	return nil
}

func (w *Writer) nameForQualifier(q ir.Qualifier) string {
	switch q.Kind {
	case ir.QualLayoutInSmooth, ir.QualLayoutInFlat:
		return fmt.Sprintf("_lin%d", q.Binding)
	case ir.QualLayoutOutSmooth, ir.QualLayoutOutFlat:
		return fmt.Sprintf("_lout%d", q.Binding)
	case ir.QualPushConstant:
		return "_push"
	case ir.QualUniform:
		return fmt.Sprintf("_uniform%d", q.Binding)
	case ir.QualStorageBufferRead, ir.QualStorageBufferWrite:
		return fmt.Sprintf("_buf%d", q.Binding)
	case ir.QualBufferReference:
		return "_bufref"
	case ir.QualRayPayload, ir.QualRayPayloadIn:
		return fmt.Sprintf("_payload%d", q.Binding)
	case ir.QualHitAttribute:
		return "_hit"
	case ir.QualSampler2D:
		return fmt.Sprintf("_sampler%d", q.Binding)
	case ir.QualImage2D:
		return fmt.Sprintf("_image%d", q.Binding)
	case ir.QualAccelerationStructure:
		return fmt.Sprintf("_tlas%d", q.Binding)
	case ir.QualSharedLocalSize:
		return "_localsize"
	default:
		return fmt.Sprintf("_q%d", q.Binding)
	}
}

func (w *Writer) writeGlobalQualifierDecl(q ir.Qualifier, name string) {
	ty := w.typeName(q.Underlying)
	switch q.Kind {
	case ir.QualLayoutInSmooth:
		w.writeLine("layout(location = %d) in %s %s;", q.Binding, ty, name)
	case ir.QualLayoutInFlat:
		w.writeLine("layout(location = %d) flat in %s %s;", q.Binding, ty, name)
	case ir.QualLayoutOutSmooth:
		w.writeLine("layout(location = %d) out %s %s;", q.Binding, ty, name)
	case ir.QualLayoutOutFlat:
		w.writeLine("layout(location = %d) flat out %s %s;", q.Binding, ty, name)
	case ir.QualPushConstant:
		w.writeLine("layout(push_constant) uniform PushConstants { %s data; };", ty)
	case ir.QualUniform:
		w.writeLine("layout(binding = %d) uniform _UBlock%d { %s data; } %s;", q.Binding, q.Binding, ty, name)
	case ir.QualStorageBufferRead:
		w.writeLine("layout(std430, binding = %d) readonly buffer _SBlock%d { %s data; } %s;", q.Binding, q.Binding, ty, name)
	case ir.QualStorageBufferWrite:
		w.writeLine("layout(std430, binding = %d) buffer _SBlock%d { %s data; } %s;", q.Binding, q.Binding, ty, name)
	case ir.QualBufferReference:
		w.writeLine("layout(buffer_reference) buffer _BufRef { %s data; };", ty)
	case ir.QualRayPayload:
		w.writeLine("layout(location = %d) rayPayloadEXT %s %s;", q.Binding, ty, name)
	case ir.QualRayPayloadIn:
		w.writeLine("layout(location = %d) rayPayloadInEXT %s %s;", q.Binding, ty, name)
	case ir.QualHitAttribute:
		w.writeLine("hitAttributeEXT %s %s;", ty, name)
	case ir.QualSampler2D:
		w.writeLine("layout(binding = %d) uniform sampler2D %s;", q.Binding, name)
	case ir.QualImage2D:
		w.writeLine("layout(binding = %d, rgba32f) uniform image2D %s;", q.Binding, name)
	case ir.QualAccelerationStructure:
		w.writeLine("layout(binding = %d) uniform accelerationStructureEXT %s;", q.Binding, name)
	case ir.QualSharedLocalSize:
		w.writeLine("layout(local_size_x = %d) in;", q.Binding)
	default:
		w.writeLine("// unsupported qualifier kind %d", q.Kind)
	}
}

// writeProcedure emits p's signature and body.
func (w *Writer) writeProcedure(p ProcedureSignature) error {
	paramNames := make([]string, 0, len(p.ParameterTypes))
	for i := 0; i < p.Length; i++ {
		idx := p.Start + ir.Index(i)
		q, ok := w.buf.Atoms[idx].Kind.(ir.Qualifier)
		if !ok || q.Kind != ir.QualParameter {
			continue
		}
		name := fmt.Sprintf("_arg%d", q.Extra)
		w.qualNames[idx] = name
		w.namer.reserve(name)
		if int(q.Extra) >= len(paramNames) {
			grown := make([]string, q.Extra+1)
			copy(grown, paramNames)
			paramNames = grown
		}
		paramNames[q.Extra] = name
	}

	args := make([]string, len(p.ParameterTypes))
	for i, ty := range p.ParameterTypes {
		name := "_arg" + fmt.Sprint(i)
		if i < len(paramNames) && paramNames[i] != "" {
			name = paramNames[i]
		}
		args[i] = fmt.Sprintf("%s %s", w.typeName(ty), name)
	}

	ret := "void"
	if p.ReturnType != ir.NoIndex {
		ret = w.typeName(p.ReturnType)
	}

	w.writeLine("%s %s(%s) {", ret, p.Name, strings.Join(args, ", "))
	w.pushIndent()
	if err := w.writeBody(p); err != nil {
		return err
	}
	w.popIndent()
	w.writeLine("}")
	return nil
}

// writeBody walks p's atom range in order, emitting one statement per
// Store, Branch, or Return atom and eagerly declaring Normal-mode
// Construct locals at the position they occur; every other atom is
// rendered lazily, on first use, by valueOf.
func (w *Writer) writeBody(p ProcedureSignature) error {
	for i := 0; i < p.Length; i++ {
		idx := p.Start + ir.Index(i)
		atom := w.buf.Atoms[idx]

		switch k := atom.Kind.(type) {
		case ir.TypeField, ir.List, ir.Qualifier:
			continue

		case ir.Construct:
			if k.Mode == ir.ConstructNormal {
				if _, err := w.valueOf(idx); err != nil {
					return err
				}
			}

		case ir.Store:
			dst, err := w.valueOf(k.Dst)
			if err != nil {
				return err
			}
			src, err := w.valueOf(k.Src)
			if err != nil {
				return err
			}
			w.writeLine("%s = %s;", dst, src)

		case ir.Branch:
			switch k.BKind {
			case ir.BranchCond:
				cond, err := w.valueOf(k.Cond)
				if err != nil {
					return err
				}
				w.writeLine("if (%s) {", cond)
				w.pushIndent()
			case ir.BranchElif:
				w.popIndent()
				cond, err := w.valueOf(k.Cond)
				if err != nil {
					return err
				}
				w.writeLine("} else if (%s) {", cond)
				w.pushIndent()
			case ir.BranchWhile:
				cond, err := w.valueOf(k.Cond)
				if err != nil {
					return err
				}
				w.writeLine("while (%s) {", cond)
				w.pushIndent()
			case ir.BranchEnd:
				w.popIndent()
				w.writeLine("}")
			}

		case ir.Return:
			if k.Value == ir.NoIndex {
				w.writeLine("return;")
				continue
			}
			v, err := w.valueOf(k.Value)
			if err != nil {
				return err
			}
			w.writeLine("return %s;", v)

		default:
			// Primitive, Operation, Intrinsic, Swizzle, Load, Call,
			// transient/forward Construct: pure, rendered lazily.
		}
	}
	return nil
}
