package dsl

import (
	"github.com/gogpu/thunder/internal/gls"
	"github.com/gogpu/thunder/ir"
)

// openBranches tracks, per goroutine, the stack of not-yet-closed
// Branch atoms awaiting their FailTo back-patch — the same scoping
// discipline the emitter buffer stack uses, kept separate since a
// single buffer can have several independently nested control scopes
// open at once.
var openBranches = gls.NewStack[ir.Index]()

// If opens a conditional scope, recording the Branch atom that will be
// back-patched with its failure target once End is called.
func If(cond Bool) {
	idx := emit(ir.Branch{BKind: ir.BranchCond, Cond: cond.idx, FailTo: ir.NoIndex})
	openBranches.Push(idx)
}

// ElseIf closes the prior branch of an if/else-if chain, back-patching
// its FailTo the same way End does, and opens the next one.
func ElseIf(cond Bool) {
	prior, ok := openBranches.Pop()
	if !ok {
		panic("dsl: ElseIf() with no open branch scope")
	}
	idx := emit(ir.Branch{BKind: ir.BranchElif, Cond: cond.idx, FailTo: ir.NoIndex})

	buf := activeBuffer()
	b := buf.Atoms[prior].Kind.(ir.Branch)
	b.FailTo = idx
	buf.Atoms[prior] = ir.Atom{Kind: b}

	openBranches.Push(idx)
}

// While opens a loop scope.
func While(cond Bool) {
	idx := emit(ir.Branch{BKind: ir.BranchWhile, Cond: cond.idx, FailTo: ir.NoIndex})
	openBranches.Push(idx)
}

// End closes the innermost open control-flow scope, back-patching its
// FailTo with the index of this closing End atom.
func End() {
	open, ok := openBranches.Pop()
	if !ok {
		panic("dsl: End() with no open branch scope")
	}
	endIdx := emit(ir.Branch{BKind: ir.BranchEnd, Cond: ir.NoIndex, FailTo: ir.NoIndex})

	buf := activeBuffer()
	b := buf.Atoms[open].Kind.(ir.Branch)
	b.FailTo = endIdx
	buf.Atoms[open] = ir.Atom{Kind: b}
}

// Ret records a void return from the enclosing procedure.
func Ret() {
	emit(ir.Return{Value: ir.NoIndex, Type: ir.NoIndex})
}

// RetValue records a return of v, with v's declared type.
func RetValue(v Value, ty ir.Index) {
	emit(ir.Return{Value: v.index(), Type: ty})
}
