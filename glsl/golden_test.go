package glsl

import (
	"strings"
	"testing"

	"github.com/gogpu/thunder/ir"
)

// normalizeGLSL collapses all whitespace runs to a single space so
// golden comparisons ignore indentation and line-break style, matching
// the "ignoring whitespace normalization" scoping of these scenarios.
func normalizeGLSL(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func compileOne(t *testing.T, buf *ir.Buffer, sig ProcedureSignature) string {
	t.Helper()
	sig.Start = 0
	sig.Length = len(buf.Atoms)
	out, err := Compile(buf, []ProcedureSignature{sig}, DefaultOptions())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return out
}

func TestGoldenPassThrough(t *testing.T) {
	buf := ir.NewBuffer()
	i32 := buf.Emit(ir.TypeField{Item: ir.KindI32, Down: ir.NoIndex, Next: ir.NoIndex})
	lin := buf.Emit(ir.Qualifier{Underlying: i32, Binding: 0, Kind: ir.QualLayoutInSmooth})
	lout := buf.Emit(ir.Qualifier{Underlying: i32, Binding: 0, Kind: ir.QualLayoutOutSmooth})
	buf.Emit(ir.Store{Dst: lout, Src: lin})

	got := compileOne(t, buf, ProcedureSignature{Name: "main", ReturnType: ir.NoIndex})

	want := `
		#version 460
		layout(location = 0) in int _lin0;
		layout(location = 0) out int _lout0;
		void main() { _lout0 = _lin0; }
	`
	if normalizeGLSL(got) != normalizeGLSL(want) {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestGoldenSummationCallable(t *testing.T) {
	buf := ir.NewBuffer()
	i32 := buf.Emit(ir.TypeField{Item: ir.KindI32, Down: ir.NoIndex, Next: ir.NoIndex})
	x := buf.Emit(ir.Qualifier{Underlying: i32, Binding: 0, Kind: ir.QualParameter, Extra: 0})
	y := buf.Emit(ir.Qualifier{Underlying: i32, Binding: 1, Kind: ir.QualParameter, Extra: 1})
	sum := buf.Emit(ir.Operation{A: x, B: y, Code: ir.OpAdd})
	buf.Emit(ir.Return{Value: sum, Type: i32})

	got := compileOne(t, buf, ProcedureSignature{
		Name: "sum", ParameterTypes: []ir.Index{i32, i32}, ReturnType: i32,
	})

	want := `
		#version 460
		int sum(int _arg0, int _arg1) {
		    return (_arg0 + _arg1);
		}
	`
	if normalizeGLSL(got) != normalizeGLSL(want) {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

// buildArithmetic emits f(x,y,z) = (x+y*z) / ((((x+y*z)/(x-y))*z)*z)
// and returns the buffer plus the float type, parameter types, the
// running sum (x+y*z), and the full division result.
func buildArithmetic() (buf *ir.Buffer, f32, sum, result ir.Index) {
	buf = ir.NewBuffer()
	f32 = buf.Emit(ir.TypeField{Item: ir.KindF32, Down: ir.NoIndex, Next: ir.NoIndex})
	x := buf.Emit(ir.Qualifier{Underlying: f32, Kind: ir.QualParameter, Extra: 0})
	y := buf.Emit(ir.Qualifier{Underlying: f32, Kind: ir.QualParameter, Extra: 1})
	z := buf.Emit(ir.Qualifier{Underlying: f32, Kind: ir.QualParameter, Extra: 2})

	yz := buf.Emit(ir.Operation{A: y, B: z, Code: ir.OpMul})
	sum = buf.Emit(ir.Operation{A: x, B: yz, Code: ir.OpAdd})
	xy := buf.Emit(ir.Operation{A: x, B: y, Code: ir.OpSub})
	div := buf.Emit(ir.Operation{A: sum, B: xy, Code: ir.OpDiv})
	divz := buf.Emit(ir.Operation{A: div, B: z, Code: ir.OpMul})
	divzz := buf.Emit(ir.Operation{A: divz, B: z, Code: ir.OpMul})
	result = buf.Emit(ir.Operation{A: sum, B: divzz, Code: ir.OpDiv})
	return buf, f32, sum, result
}

func TestGoldenArithmeticPrecedence(t *testing.T) {
	buf, f32, _, result := buildArithmetic()
	buf.Emit(ir.Return{Value: result, Type: f32})

	got := compileOne(t, buf, ProcedureSignature{
		Name: "arithmetic", ParameterTypes: []ir.Index{f32, f32, f32}, ReturnType: f32,
	})

	want := `
		#version 460
		float arithmetic(float _arg0, float _arg1, float _arg2) {
		    return ((_arg0 + (_arg1 * _arg2)) / ((((_arg0 + (_arg1 * _arg2)) / (_arg0 - _arg1)) * _arg2) * _arg2));
		}
	`
	if normalizeGLSL(got) != normalizeGLSL(want) {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestGoldenConditionalEarlyReturn(t *testing.T) {
	buf, f32, sum, result := buildArithmetic()
	zeroLit := buf.Emit(ir.Primitive{Kind: ir.KindI32, Value: ir.ValI32(0)})
	cond := buf.Emit(ir.Operation{A: sum, B: zeroLit, Code: ir.OpLess})
	branch := buf.Emit(ir.Branch{BKind: ir.BranchCond, Cond: cond})
	buf.Emit(ir.Return{Value: result, Type: f32})
	end := buf.Emit(ir.Branch{BKind: ir.BranchEnd})
	if b, ok := buf.Atoms[branch].Kind.(ir.Branch); ok {
		b.FailTo = end
		buf.Atoms[branch] = ir.Atom{Kind: b}
	}
	buf.Emit(ir.Return{Value: sum, Type: f32})

	got := compileOne(t, buf, ProcedureSignature{
		Name: "conditional", ParameterTypes: []ir.Index{f32, f32, f32}, ReturnType: f32,
	})

	want := `
		#version 460
		float conditional(float _arg0, float _arg1, float _arg2) {
		    if (((_arg0 + (_arg1 * _arg2)) < 0)) {
		        return ((_arg0 + (_arg1 * _arg2)) / ((((_arg0 + (_arg1 * _arg2)) / (_arg0 - _arg1)) * _arg2) * _arg2));
		    }
		    return (_arg0 + (_arg1 * _arg2));
		}
	`
	if normalizeGLSL(got) != normalizeGLSL(want) {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestGoldenStructParameter(t *testing.T) {
	buf := ir.NewBuffer()
	vec3 := buf.Emit(ir.TypeField{Item: ir.KindVec3, Down: ir.NoIndex, Next: ir.NoIndex})
	vec4 := buf.Emit(ir.TypeField{Item: ir.KindVec4, Down: ir.NoIndex, Next: ir.NoIndex})

	projField := buf.Emit(ir.TypeField{Item: ir.KindMat4, Down: ir.NoIndex, Next: ir.NoIndex})
	viewField := buf.Emit(ir.TypeField{Item: ir.KindMat4, Down: ir.NoIndex, Next: projField})
	modelField := buf.Emit(ir.TypeField{Item: ir.KindMat4, Down: ir.NoIndex, Next: viewField})
	mvp := buf.Emit(ir.TypeField{Item: ir.KindBAD, Down: modelField, Next: ir.NoIndex})

	arg0 := buf.Emit(ir.Qualifier{Underlying: mvp, Kind: ir.QualParameter, Extra: 0})
	arg1 := buf.Emit(ir.Qualifier{Underlying: vec3, Kind: ir.QualParameter, Extra: 1})

	one := buf.Emit(ir.Primitive{Kind: ir.KindI32, Value: ir.ValI32(1)})
	args := buf.Emit(ir.List{Item: arg1, Next: buf.Emit(ir.List{Item: one, Next: ir.NoIndex})})
	s0 := buf.Emit(ir.Construct{Type: vec4, Args: args, Mode: ir.ConstructNormal})

	model := buf.Emit(ir.Load{Src: arg0, Idx: modelField})
	mul1 := buf.Emit(ir.Operation{A: model, B: s0, Code: ir.OpMul})
	buf.Emit(ir.Store{Dst: s0, Src: mul1})

	view := buf.Emit(ir.Load{Src: arg0, Idx: viewField})
	mul2 := buf.Emit(ir.Operation{A: view, B: s0, Code: ir.OpMul})
	buf.Emit(ir.Store{Dst: s0, Src: mul2})

	proj := buf.Emit(ir.Load{Src: arg0, Idx: projField})
	mul3 := buf.Emit(ir.Operation{A: proj, B: s0, Code: ir.OpMul})
	buf.Emit(ir.Store{Dst: s0, Src: mul3})

	buf.Emit(ir.Return{Value: s0, Type: vec4})

	fieldNames := map[ir.Index]string{
		modelField: "model", viewField: "view", projField: "proj",
	}
	structNames := map[ir.Index]string{mvp: "MVP"}
	sig := ProcedureSignature{
		Name: "project", ParameterTypes: []ir.Index{mvp, vec3}, ReturnType: vec4,
		Start: 0, Length: len(buf.Atoms),
	}
	out, err := Compile(buf, []ProcedureSignature{sig}, Options{
		Version: 460, FieldNames: fieldNames, StructNames: structNames,
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	for _, want := range []string{
		"struct MVP {", "mat4 model;", "mat4 view;", "mat4 proj;",
		"vec4 project(MVP _arg0, vec3 _arg1) {",
		"_arg0.model", "_arg0.view", "_arg0.proj",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q, got:\n%s", want, out)
		}
	}
}

func TestGoldenStructReturn(t *testing.T) {
	buf := ir.NewBuffer()
	shiftedField := buf.Emit(ir.TypeField{Item: ir.KindU32, Down: ir.NoIndex, Next: ir.NoIndex})
	rootField := buf.Emit(ir.TypeField{Item: ir.KindU32, Down: ir.NoIndex, Next: shiftedField})
	seed := buf.Emit(ir.TypeField{Item: ir.KindBAD, Down: rootField, Next: ir.NoIndex})

	arg0 := buf.Emit(ir.Qualifier{Underlying: seed, Kind: ir.QualParameter, Extra: 0})
	root := buf.Emit(ir.Load{Src: arg0, Idx: rootField})
	shifted := buf.Emit(ir.Load{Src: arg0, Idx: shiftedField})
	shl := buf.Emit(ir.Operation{A: root, B: shifted, Code: ir.OpShl})
	or := buf.Emit(ir.Operation{A: shifted, B: root, Code: ir.OpBitOr})
	and := buf.Emit(ir.Operation{A: shl, B: or, Code: ir.OpBitAnd})

	newRoot := and
	newShifted := or

	argList := buf.Emit(ir.List{Item: newShifted, Next: ir.NoIndex})
	argList2 := buf.Emit(ir.List{Item: newRoot, Next: argList})
	s0 := buf.Emit(ir.Construct{Type: seed, Args: argList2, Mode: ir.ConstructNormal})

	buf.Emit(ir.Return{Value: s0, Type: seed})

	fieldNames := map[ir.Index]string{rootField: "root", shiftedField: "shifted"}
	structNames := map[ir.Index]string{seed: "Seed"}
	sig := ProcedureSignature{
		Name: "shift_seed", ParameterTypes: []ir.Index{seed}, ReturnType: seed,
		Start: 0, Length: len(buf.Atoms),
	}
	out, err := Compile(buf, []ProcedureSignature{sig}, Options{
		Version: 460, FieldNames: fieldNames, StructNames: structNames,
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	for _, want := range []string{
		"struct Seed { uint root; uint shifted; };",
		"Seed shift_seed(Seed _arg0) {",
		"_arg0.root << _arg0.shifted",
		"_arg0.shifted | _arg0.root",
	} {
		if !strings.Contains(normalizeGLSL(out), want) {
			t.Fatalf("output missing %q, got:\n%s", want, out)
		}
	}
}
