package ir

import "testing"

func TestTypeNamePrimitive(t *testing.T) {
	buf := NewBuffer()
	f32 := buf.Emit(TypeField{Item: KindF32, Down: NoIndex, Next: NoIndex})
	if got := TypeName(buf, f32, nil); got != "f32" {
		t.Fatalf("TypeName = %q, want %q", got, "f32")
	}
}

func TestTypeNameStructUsesRegisteredName(t *testing.T) {
	buf := NewBuffer()
	member := buf.Emit(TypeField{Item: KindF32, Down: NoIndex, Next: NoIndex})
	field := buf.Emit(TypeField{Item: KindBAD, Down: member, Next: NoIndex})

	names := map[Index]string{field: "Seed"}
	if got := TypeName(buf, field, names); got != "Seed" {
		t.Fatalf("TypeName = %q, want %q", got, "Seed")
	}
	if got := TypeName(buf, field, nil); got != "f32" {
		t.Fatalf("TypeName without registered name = %q, want the recovered leaf %q", got, "f32")
	}
}
