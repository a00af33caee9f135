package dsl

import (
	"strings"
	"testing"

	"github.com/gogpu/thunder/glsl"
	"github.com/gogpu/thunder/ir"
	"github.com/gogpu/thunder/link"
)

func TestScalarArithmeticRecordsOperations(t *testing.T) {
	proc := Record("add_one", nil, ir.NoIndex, func() {
		a := ConstF32(1)
		b := ConstF32(2)
		sum := a.Add(b)
		RetValue(sum, typeIndexPrimitive(ir.KindF32))
	})

	if len(proc.Buffer.Atoms) == 0 {
		t.Fatal("expected atoms to be recorded")
	}
	var sawAdd, sawReturn bool
	for _, atom := range proc.Buffer.Atoms {
		switch k := atom.Kind.(type) {
		case ir.Operation:
			if k.Code == ir.OpAdd {
				sawAdd = true
			}
		case ir.Return:
			sawReturn = true
		}
	}
	if !sawAdd {
		t.Error("no OpAdd operation recorded")
	}
	if !sawReturn {
		t.Error("no Return atom recorded")
	}
}

func TestVectorConstructAndSwizzle(t *testing.T) {
	proc := Record("swizzle_test", nil, ir.NoIndex, func() {
		v := NewVec3(ConstF32(1), ConstF32(2), ConstF32(3))
		xy := v.XY()
		_ = xy
	})

	var sawConstruct, sawSwizzle bool
	for _, atom := range proc.Buffer.Atoms {
		switch k := atom.Kind.(type) {
		case ir.Construct:
			sawConstruct = true
		case ir.Swizzle:
			if k.Code == ir.SwzXY {
				sawSwizzle = true
			}
		}
	}
	if !sawConstruct || !sawSwizzle {
		t.Fatalf("expected a Construct and an XY Swizzle atom, got construct=%v swizzle=%v", sawConstruct, sawSwizzle)
	}
}

func TestIfEndBackPatchesFailTo(t *testing.T) {
	proc := Record("branch_test", nil, ir.NoIndex, func() {
		cond := ConstBool(true)
		If(cond)
		ConstF32(1)
		End()
	})

	var branchIdx ir.Index = ir.NoIndex
	for i, atom := range proc.Buffer.Atoms {
		if b, ok := atom.Kind.(ir.Branch); ok && b.BKind == ir.BranchCond {
			branchIdx = ir.Index(i)
		}
	}
	if branchIdx == ir.NoIndex {
		t.Fatal("no BranchCond atom recorded")
	}
	b := proc.Buffer.Atoms[branchIdx].Kind.(ir.Branch)
	if b.FailTo == ir.NoIndex {
		t.Fatal("FailTo was never back-patched")
	}
	end, ok := proc.Buffer.Atoms[b.FailTo].Kind.(ir.Branch)
	if !ok || end.BKind != ir.BranchEnd {
		t.Fatalf("FailTo does not point at a BranchEnd atom: %v", proc.Buffer.Atoms[b.FailTo].Kind)
	}
}

func TestElseIfBackPatchesPriorBranch(t *testing.T) {
	proc := Record("branch_chain_test", nil, ir.NoIndex, func() {
		c1 := ConstBool(true)
		c2 := ConstBool(false)
		If(c1)
		ConstF32(1)
		ElseIf(c2)
		ConstF32(2)
		End()
	})

	var condIdx, elifIdx ir.Index = ir.NoIndex, ir.NoIndex
	for i, atom := range proc.Buffer.Atoms {
		b, ok := atom.Kind.(ir.Branch)
		if !ok {
			continue
		}
		switch b.BKind {
		case ir.BranchCond:
			condIdx = ir.Index(i)
		case ir.BranchElif:
			elifIdx = ir.Index(i)
		}
	}
	if condIdx == ir.NoIndex || elifIdx == ir.NoIndex {
		t.Fatal("expected both a BranchCond and a BranchElif atom")
	}

	cond := proc.Buffer.Atoms[condIdx].Kind.(ir.Branch)
	if cond.FailTo != elifIdx {
		t.Fatalf("BranchCond.FailTo = %v, want the BranchElif atom at %d", cond.FailTo, elifIdx)
	}
	elif := proc.Buffer.Atoms[elifIdx].Kind.(ir.Branch)
	if elif.FailTo == ir.NoIndex {
		t.Fatal("BranchElif.FailTo was never back-patched by End()")
	}
	end, ok := proc.Buffer.Atoms[elif.FailTo].Kind.(ir.Branch)
	if !ok || end.BKind != ir.BranchEnd {
		t.Fatalf("BranchElif.FailTo does not point at a BranchEnd atom: %v", proc.Buffer.Atoms[elif.FailTo].Kind)
	}
}

func TestEndWithoutOpenScopePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("End() with no open scope did not panic")
		}
	}()
	Record("bad", nil, ir.NoIndex, func() {
		End()
	})
}

func TestStructConstructAndFieldOrder(t *testing.T) {
	proc := Record("struct_test", nil, ir.NoIndex, func() {
		f32 := typeIndexPrimitive(ir.KindF32)
		ty := NewStructType("Particle", Field{"seed", f32}, Field{"life", f32})
		s := NewStruct(ty, ConstF32(1), ConstF32(2))
		_ = s.Field(0)
	})

	var sawConstruct bool
	for _, atom := range proc.Buffer.Atoms {
		if c, ok := atom.Kind.(ir.Construct); ok && c.Args != ir.NoIndex {
			sawConstruct = true
			args := collectArgs(proc.Buffer, c.Args)
			if len(args) != 2 {
				t.Fatalf("struct construct has %d args, want 2", len(args))
			}
		}
	}
	if !sawConstruct {
		t.Fatal("no struct Construct atom recorded")
	}
}

// TestStructFieldResolvesDeclaredName compiles a struct field access all
// the way to GLSL and checks the emitted member access names the field
// itself, not the field's declaration position — Field(i) must resolve
// position i to the i-th TypeField atom before emitting the Load, or
// the wrong (or no) name ever reaches glsl's fieldNames lookup.
func TestStructFieldResolvesDeclaredName(t *testing.T) {
	var structType StructType
	f32 := ir.NoIndex
	proc := Record("struct_field_test", nil, ir.NoIndex, func() {
		f32 = typeIndexPrimitive(ir.KindF32)
		structType = NewStructType("Particle", Field{"seed", f32}, Field{"life", f32})
		s := NewStruct(structType, ConstF32(1), ConstF32(2))
		RetValue(F32{idx: s.Field(1)}, f32)
	})

	u := link.New()
	u.Add(proc)
	linked, err := u.Link()
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	lp := linked.Procedures[0]
	sigs := []glsl.ProcedureSignature{{
		Name:           lp.Name,
		ParameterTypes: lp.ParameterTypes,
		ReturnType:     lp.ReturnType,
		Start:          lp.Offset,
		Length:         lp.Length,
	}}

	opts := glsl.DefaultOptions()
	opts.FieldNames = structType.Names
	out, err := glsl.Compile(linked.Buffer, sigs, opts)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !strings.Contains(out, ".life") {
		t.Fatalf("expected Field(1) to resolve to .life, got:\n%s", out)
	}
	if strings.Contains(out, ".seed") {
		t.Fatalf("Field(1) incorrectly resolved to the first field's name, got:\n%s", out)
	}
}

func collectArgs(buf *ir.Buffer, head ir.Index) []ir.Index {
	var out []ir.Index
	for head != ir.NoIndex {
		l := buf.Atoms[head].Kind.(ir.List)
		out = append(out, l.Item)
		head = l.Next
	}
	return out
}

func TestIntrinsicFoldsConstantSqrt(t *testing.T) {
	proc := Record("fold_test", nil, ir.NoIndex, func() {
		Sqrt(ConstF32(9))
	})

	var sawIntrinsic bool
	var lastPrimitive ir.Primitive
	for _, atom := range proc.Buffer.Atoms {
		switch k := atom.Kind.(type) {
		case ir.Intrinsic:
			sawIntrinsic = true
		case ir.Primitive:
			lastPrimitive = k
		}
	}
	if sawIntrinsic {
		t.Fatal("sqrt of a constant should fold, not emit an Intrinsic atom")
	}
	v, ok := lastPrimitive.Value.(ir.ValF32)
	if !ok || float32(v) != 3 {
		t.Fatalf("folded sqrt(9) = %v, want 3", lastPrimitive.Value)
	}
}
