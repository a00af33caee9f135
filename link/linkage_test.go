package link

import (
	"strings"
	"testing"

	"github.com/gogpu/thunder/ir"
)

func buildProc(name string) *ir.Procedure {
	buf := ir.NewBuffer()
	i32 := buf.Emit(ir.TypeField{Item: ir.KindI32, Down: ir.NoIndex, Next: ir.NoIndex})
	a := buf.Emit(ir.Qualifier{Underlying: i32, Binding: 0, Kind: ir.QualParameter})
	b := buf.Emit(ir.Qualifier{Underlying: i32, Binding: 1, Kind: ir.QualParameter})
	sum := buf.Emit(ir.Operation{A: a, B: b, Code: ir.OpAdd})
	buf.Emit(ir.Return{Value: sum, Type: i32})
	return ir.NewProcedure(name, buf, []ir.Index{i32, i32}, i32)
}

func TestLinkOffsetsIndices(t *testing.T) {
	u := New()
	u.Add(buildProc("first"))
	u.Add(buildProc("second"))

	linked, err := u.Link()
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	if len(linked.Procedures) != 2 {
		t.Fatalf("got %d linked procedures, want 2", len(linked.Procedures))
	}
	second := linked.Procedures[1]
	if second.Offset == 0 {
		t.Fatal("second procedure was not offset past the first")
	}
	if len(linked.Buffer.Atoms) != int(second.Offset)+second.Length {
		t.Fatalf("merged buffer has %d atoms, want %d", len(linked.Buffer.Atoms), int(second.Offset)+second.Length)
	}
}

func TestLinkDeduplicatesIdenticalTypes(t *testing.T) {
	u := New()
	u.Add(buildProc("a"))
	u.Add(buildProc("b"))

	linked, err := u.Link()
	if err != nil {
		t.Fatalf("Link: %v", err)
	}

	typeRefs := make(map[ir.Index]bool)
	for _, atom := range linked.Buffer.Atoms {
		switch k := atom.Kind.(type) {
		case ir.Qualifier:
			typeRefs[k.Underlying] = true
		case ir.Return:
			typeRefs[k.Type] = true
		}
	}
	if len(typeRefs) != 1 {
		t.Fatalf("merged buffer references %d distinct TypeField atoms, want 1 (both procedures share an identical i32 type)", len(typeRefs))
	}
}

func TestWriteAssemblyEmitsPerProcedureHeader(t *testing.T) {
	u := New()
	u.Add(buildProc("sum"))
	linked, err := u.Link()
	if err != nil {
		t.Fatalf("Link: %v", err)
	}

	var sb strings.Builder
	if err := WriteAssembly(&sb, linked); err != nil {
		t.Fatalf("WriteAssembly: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "proc sum params=2") {
		t.Fatalf("assembly dump missing procedure header, got:\n%s", out)
	}
}

func TestLinkRejectsUnknownCallable(t *testing.T) {
	buf := ir.NewBuffer()
	buf.Emit(ir.Call{CallableID: 99, Args: ir.NoIndex, Ret: ir.NoIndex})
	proc := ir.NewProcedure("broken", buf, nil, ir.NoIndex)

	u := New()
	u.Add(proc)
	if _, err := u.Link(); err == nil {
		t.Fatal("expected Link to reject a Call atom with an out-of-range CallableID")
	}
}
