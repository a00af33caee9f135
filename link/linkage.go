// Package link implements LinkageUnit: merging multiple Procedures into
// one atom pool with offset-adjusted indices, deduplicated TypeField
// chains, and resolved Call.CallableID handles, ready for GLSL
// emission.
package link

import (
	"fmt"
	"io"
	"sort"

	"github.com/gogpu/thunder/ir"
)

// LinkageUnit accumulates Procedures and produces one merged Buffer.
type LinkageUnit struct {
	procs []*ir.Procedure
}

// New returns an empty linkage unit.
func New() *LinkageUnit {
	return &LinkageUnit{}
}

// Add appends proc to the unit. Procedures link in the order they are
// added; Call.CallableID resolves by that order.
func (u *LinkageUnit) Add(proc *ir.Procedure) {
	u.procs = append(u.procs, proc)
}

// Procedure describes one linked procedure's placement inside the
// merged buffer.
type Procedure struct {
	Name           string
	ParameterTypes []ir.Index
	ReturnType     ir.Index
	// Offset is the position in Merged.Atoms where this procedure's
	// first atom landed.
	Offset ir.Index
	// Length is the number of atoms this procedure contributed; type
	// dedup rewrites references in place and drops no atom.
	Length int
}

// Linked is the result of Link: one merged buffer plus per-procedure
// placement metadata and any layout-conflict findings, reported rather
// than treated as fatal.
type Linked struct {
	Buffer     *ir.Buffer
	Procedures []Procedure
	Conflicts  []ir.ValidationError
}

// Link merges every added procedure into one buffer.
//
// Algorithm:
//  1. Copy each procedure's buffer into the merged pool, offsetting
//     every internal index by that procedure's starting position.
//  2. Deduplicate TypeField chains by structural equality, replacing
//     references with the canonical (first-seen) index.
//  3. Resolve Call.CallableID to the linked handle (0-based position
//     among added procedures) of the target procedure.
//  4. Validate layout bindings across the whole merged buffer.
func (u *LinkageUnit) Link() (*Linked, error) {
	merged := ir.NewBuffer()
	placements := make([]Procedure, 0, len(u.procs))

	for _, p := range u.procs {
		offset := ir.Index(len(merged.Atoms))
		remap := make(map[ir.Index]ir.Index, len(p.Buffer.Atoms))
		for i := range p.Buffer.Atoms {
			remap[ir.Index(i)] = ir.Index(i) + offset
		}

		for i, atom := range p.Buffer.Atoms {
			k := ir.ReindexAtom(atom.Kind, remap)
			if call, ok := k.(ir.Call); ok {
				// CallableID already names a linked procedure index by
				// the time it reaches Link (the DSL records it as such);
				// re-validate it still points at a known procedure.
				if int(call.CallableID) >= len(u.procs) {
					return nil, fmt.Errorf("link: procedure %q atom %d calls unknown callable %d", p.Name, i, call.CallableID)
				}
			}
			merged.Emit(k)
		}

		declaredParams := p.ParameterTypes
		if len(declaredParams) == 0 {
			declaredParams = inferParameterTypes(p.Buffer)
		}
		paramTypes := make([]ir.Index, len(declaredParams))
		for i, t := range declaredParams {
			paramTypes[i] = remapIndex(t, remap)
		}

		declaredReturn := p.ReturnType
		if declaredReturn == ir.NoIndex {
			if t, ok := inferReturnType(p.Buffer); ok {
				declaredReturn = t
			}
		}
		ret := remapIndex(declaredReturn, remap)

		placements = append(placements, Procedure{
			Name:           p.Name,
			ParameterTypes: paramTypes,
			ReturnType:     ret,
			Offset:         offset,
			Length:         len(p.Buffer.Atoms),
		})
	}

	dedupTypes(merged)

	return &Linked{
		Buffer:     merged,
		Procedures: placements,
		Conflicts:  merged.Validate(),
	}, nil
}

// inferParameterTypes recovers a procedure's formal parameter list from
// its own recording when the caller built it through dsl.Record/Build,
// which always pass a nil paramTypes since parameters are declared by
// the body itself rather than known up front: every QualParameter atom
// already names its own position via Extra and its type via
// Underlying.
func inferParameterTypes(buf *ir.Buffer) []ir.Index {
	var types []ir.Index
	for _, atom := range buf.Atoms {
		q, ok := atom.Kind.(ir.Qualifier)
		if !ok || q.Kind != ir.QualParameter {
			continue
		}
		for int(q.Extra) >= len(types) {
			types = append(types, ir.NoIndex)
		}
		types[q.Extra] = q.Underlying
	}
	return types
}

// inferReturnType recovers a value-returning procedure's return type
// from its first value-carrying Return atom, for the same reason
// inferParameterTypes exists.
func inferReturnType(buf *ir.Buffer) (ir.Index, bool) {
	for _, atom := range buf.Atoms {
		if r, ok := atom.Kind.(ir.Return); ok && r.Value != ir.NoIndex {
			return r.Type, true
		}
	}
	return ir.NoIndex, false
}

func remapIndex(idx ir.Index, remap map[ir.Index]ir.Index) ir.Index {
	if idx == ir.NoIndex {
		return ir.NoIndex
	}
	if r, ok := remap[idx]; ok {
		return r
	}
	return idx
}

// dedupTypes replaces every TypeField reference with the first
// structurally-equal TypeField seen in atom order, in place, so
// downstream emission never has to re-discover the canonical index
// for a type that recurs across several linked procedures.
func dedupTypes(buf *ir.Buffer) {
	canonical := make([]ir.Index, 0, len(buf.Atoms))
	replace := make(map[ir.Index]ir.Index, len(buf.Atoms))

	for i, atom := range buf.Atoms {
		idx := ir.Index(i)
		if _, ok := atom.Kind.(ir.TypeField); !ok {
			continue
		}
		found := false
		for _, c := range canonical {
			if ir.TypesEqual(buf, c, idx) {
				replace[idx] = c
				found = true
				break
			}
		}
		if !found {
			canonical = append(canonical, idx)
		}
	}
	if len(replace) == 0 {
		return
	}

	for i, atom := range buf.Atoms {
		buf.Atoms[i] = ir.Atom{Kind: ir.ReindexAtom(atom.Kind, replace)}
	}
}

// WriteAssembly renders the per-procedure assembly-form dump: a header
// line per procedure followed by its atom dump, a blank line between
// procedures. Procedures are written
// in link order, which is stable regardless of map iteration — Link
// never reorders placements after the fact.
func WriteAssembly(w io.Writer, l *Linked) error {
	sorted := make([]Procedure, len(l.Procedures))
	copy(sorted, l.Procedures)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })

	for i, p := range sorted {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "proc %s params=%d return=%s\n", p.Name, len(p.ParameterTypes), ref(p.ReturnType)); err != nil {
			return err
		}
		for j := 0; j < p.Length; j++ {
			idx := p.Offset + ir.Index(j)
			if _, err := fmt.Fprintln(w, ir.DumpAtom(idx, l.Buffer.Atoms[idx].Kind)); err != nil {
				return err
			}
		}
	}
	return nil
}

func ref(i ir.Index) string {
	if i == ir.NoIndex {
		return "void"
	}
	return fmt.Sprintf("%%%d", i)
}
