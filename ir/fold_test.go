package ir

import "testing"

func TestFoldUnaryF32Sqrt(t *testing.T) {
	buf := NewBuffer()
	four := buf.Emit(Primitive{Kind: KindF32, Value: ValF32(4)})

	p, ok := FoldUnaryF32(buf, IntrinSqrt, four)
	if !ok {
		t.Fatal("FoldUnaryF32(sqrt, 4) did not fold")
	}
	v, _ := p.Value.(ValF32)
	if float32(v) != 2 {
		t.Fatalf("sqrt(4) folded to %v, want 2", v)
	}
}

func TestFoldUnaryF32RejectsNonConstant(t *testing.T) {
	buf := NewBuffer()
	i32 := buf.Emit(TypeField{Item: KindI32, Down: NoIndex, Next: NoIndex})
	if _, ok := FoldUnaryF32(buf, IntrinSqrt, i32); ok {
		t.Fatal("folded a non-Primitive operand")
	}
}

func TestFoldBinaryF32Pow(t *testing.T) {
	buf := NewBuffer()
	base := buf.Emit(Primitive{Kind: KindF32, Value: ValF32(2)})
	exp := buf.Emit(Primitive{Kind: KindF32, Value: ValF32(3)})

	p, ok := FoldBinaryF32(buf, IntrinPow, base, exp)
	if !ok {
		t.Fatal("FoldBinaryF32(pow, 2, 3) did not fold")
	}
	v, _ := p.Value.(ValF32)
	if float32(v) != 8 {
		t.Fatalf("pow(2,3) folded to %v, want 8", v)
	}
}
