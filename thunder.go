// Package thunder ties the compiler's independent stages — ir, dsl,
// link, and glsl — into the single pipeline a host program actually
// drives: record one or more procedures, optimize each, link them into
// one unit, and emit GLSL. Every stage it calls remains usable on its
// own; this file only removes the bridging boilerplate of threading a
// link.Linked's procedure placements into glsl.ProcedureSignature
// values and carrying a struct/field name table across the two.
package thunder

import (
	"fmt"

	"github.com/gogpu/thunder/glsl"
	"github.com/gogpu/thunder/ir"
	"github.com/gogpu/thunder/link"
)

// Optimize runs the transformation passes a procedure should go through
// before linking: dead code elimination, then storage legalization.
// Reindexing is applied internally by DCE wherever it removes atoms,
// so the returned buffer is self-consistent.
func Optimize(buf *ir.Buffer) *ir.Buffer {
	return ir.LegalizeStorage(ir.DCE(buf))
}

// NameTable carries the struct and field names a dsl.StructType
// recorded, so the GLSL writer can print source-declared names instead
// of positional placeholders. Building one is the host program's job —
// dsl.StructType.Names already holds the per-struct piece; a program
// recording several structs accumulates their entries into one table
// before calling Compile.
type NameTable struct {
	Structs map[ir.Index]string
	Fields  map[ir.Index]string
}

// Merge copies names from structIndex (a dsl.StructType's own index) and its
// per-field names into the table.
func (t *NameTable) Merge(structIndex ir.Index, structName string, fields map[ir.Index]string) {
	if t.Structs == nil {
		t.Structs = make(map[ir.Index]string)
	}
	if t.Fields == nil {
		t.Fields = make(map[ir.Index]string)
	}
	t.Structs[structIndex] = structName
	for idx, name := range fields {
		t.Fields[idx] = name
	}
}

// Compile links procs into one unit and emits GLSL for all of them.
// names may be nil, in which case structs and fields print with
// positional placeholder names.
func Compile(procs []*ir.Procedure, names *NameTable, opts glsl.Options) (string, error) {
	u := link.New()
	for _, p := range procs {
		u.Add(p)
	}
	linked, err := u.Link()
	if err != nil {
		return "", fmt.Errorf("thunder: link: %w", err)
	}
	if len(linked.Conflicts) > 0 {
		return "", fmt.Errorf("thunder: %d layout conflict(s) after linking: %s",
			len(linked.Conflicts), linked.Conflicts[0].Error())
	}

	sigs := make([]glsl.ProcedureSignature, len(linked.Procedures))
	for i, p := range linked.Procedures {
		sigs[i] = glsl.ProcedureSignature{
			Name:           p.Name,
			ParameterTypes: p.ParameterTypes,
			ReturnType:     p.ReturnType,
			Start:          p.Offset,
			Length:         p.Length,
		}
	}

	if names != nil {
		if opts.StructNames == nil {
			opts.StructNames = names.Structs
		}
		if opts.FieldNames == nil {
			opts.FieldNames = names.Fields
		}
	}

	out, err := glsl.Compile(linked.Buffer, sigs, opts)
	if err != nil {
		return "", fmt.Errorf("thunder: %w", err)
	}
	return out, nil
}
