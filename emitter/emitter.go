// Package emitter implements the process-wide, goroutine-scoped stack
// of active recording Buffers that every DSL operation emits into as a
// side effect.
//
// On program start the stack is empty for every goroutine; pushing
// before emission is required. Scheduling is single-threaded per
// goroutine's own stack — a buffer is never shared across goroutines
// during recording, and no promise is made about concurrent recording
// on the same buffer.
package emitter

import (
	"errors"

	"github.com/gogpu/thunder/internal/gls"
	"github.com/gogpu/thunder/ir"
)

// ErrStackUnderflow is returned by Pop when the calling goroutine has
// no active buffer.
var ErrStackUnderflow = errors.New("emitter: pop on empty stack")

var stack = gls.NewStack[*ir.Buffer]()

// Push installs buf as the active emission target for the calling
// goroutine.
func Push(buf *ir.Buffer) {
	stack.Push(buf)
}

// Pop removes the calling goroutine's active buffer. It returns
// ErrStackUnderflow if none is active.
func Pop() error {
	if _, ok := stack.Pop(); !ok {
		return ErrStackUnderflow
	}
	return nil
}

// MustPop pops and panics on underflow. Scoped recording helpers that
// own the push on construction and the pop on destruction use this in
// a defer, since an underflow there means the push/pop pairing itself
// is broken — a programmer error, not a recoverable condition. The pop
// must still happen even if body evaluation panics or errors.
func MustPop() {
	if err := Pop(); err != nil {
		panic(err)
	}
}

// Top returns the calling goroutine's active buffer, or nil if none is
// pushed.
func Top() *ir.Buffer {
	b, ok := stack.Top()
	if !ok {
		return nil
	}
	return b
}

// Depth reports how many buffers are active on the calling goroutine's
// stack.
func Depth() int {
	return stack.Len()
}

// Emit appends k to the calling goroutine's active buffer and returns
// its new index. It panics if no buffer is active — pushing before
// emission is required.
func Emit(k ir.AtomKind) ir.Index {
	buf := Top()
	if buf == nil {
		panic("emitter: emit with no active buffer; call Push before recording")
	}
	return buf.Emit(k)
}

// Builder is an explicit, non-global recording handle: an alternative
// to the goroutine-local stack, so tests and transformations can build
// IR directly into a chosen Buffer without installing it as any
// goroutine's active target.
type Builder struct {
	buf *ir.Buffer
}

// NewBuilder wraps buf for direct recording.
func NewBuilder(buf *ir.Buffer) *Builder {
	return &Builder{buf: buf}
}

// Emit appends k to the wrapped buffer and returns its new index.
func (b *Builder) Emit(k ir.AtomKind) ir.Index {
	return b.buf.Emit(k)
}

// Buffer returns the buffer this Builder records into.
func (b *Builder) Buffer() *ir.Buffer {
	return b.buf
}
