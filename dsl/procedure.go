package dsl

import (
	"github.com/gogpu/thunder/emitter"
	"github.com/gogpu/thunder/ir"
)

// Record runs body with a freshly pushed recording buffer active for
// the calling goroutine, returning the ir.Procedure it produced. The
// buffer is always popped, even if body panics, matching the scoped
// push/pop discipline emitter.MustPop documents.
func Record(name string, paramTypes []ir.Index, returnType ir.Index, body func()) *ir.Procedure {
	buf := ir.NewBuffer()
	emitter.Push(buf)
	defer emitter.MustPop()

	body()

	return ir.NewProcedure(name, buf, paramTypes, returnType)
}

// Build is Record for a procedure whose parameters are recorded by
// body itself (via Parameter) rather than supplied up front — useful
// when the parameter count depends on data the body computes, e.g.
// building a procedure per variant of a generic kernel.
func Build(name string, returnType ir.Index, body func()) *ir.Procedure {
	return Record(name, nil, returnType, body)
}
