package ir

// Procedure is a compiled Buffer wrapped with a name, parameter
// signature, and return type. ParameterTypes and ReturnType are
// TypeField indices into Buffer.Atoms; ReturnType is NoIndex for a
// void procedure.
type Procedure struct {
	Name           string
	Buffer         *Buffer
	ParameterTypes []Index
	ReturnType     Index
}

// NewProcedure wraps an already-recorded buffer with a name and
// signature. Recording itself — the scoped push-then-body-then-pop
// acquisition of an active buffer — lives in package dsl, which is the
// only package that needs both ir.Buffer and the emitter's goroutine
// stack.
func NewProcedure(name string, buf *Buffer, paramTypes []Index, returnType Index) *Procedure {
	return &Procedure{
		Name:           name,
		Buffer:         buf,
		ParameterTypes: paramTypes,
		ReturnType:     returnType,
	}
}
