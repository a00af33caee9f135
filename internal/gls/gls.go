// Package gls implements a minimal goroutine-local stack, the substrate
// the emitter package uses to give every host goroutine its own
// recording target: one goroutine holds at most one active emitter
// stack, and cross-goroutine recording into the same buffer is
// undefined.
//
// Go has no thread_local storage. The ecosystem-idiomatic way to get
// goroutine-scoped state without plumbing a context value through every
// call (which the DSL's operator-overloading-in-spirit recording style
// cannot do) is to key a map by the calling goroutine's identity, the
// technique used by libraries such as petermattis/goid. That package
// is not part of the retrieved dependency set, so this implements the
// same runtime.Stack-parsing trick directly.
package gls

import (
	"runtime"
	"strconv"
	"sync"
)

// goroutineID extracts the numeric id from the calling goroutine's
// stack trace header, e.g. "goroutine 37 [running]:".
func goroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]

	i := 0
	for i < len(b) && b[i] != ' ' {
		i++
	}
	i++ // skip the space after "goroutine"

	j := i
	for j < len(b) && b[j] != ' ' {
		j++
	}

	id, err := strconv.ParseInt(string(b[i:j]), 10, 64)
	if err != nil {
		// Should not happen given the runtime's stable header format,
		// but a stack that can't be identified must not silently share
		// state with another goroutine.
		panic("gls: could not parse goroutine id: " + err.Error())
	}
	return id
}

// Stack is a goroutine-scoped LIFO stack of values of type T. The zero
// value is not usable; construct with NewStack.
type Stack[T any] struct {
	mu sync.Mutex
	m  map[int64][]T
}

// NewStack returns an empty goroutine-scoped stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{m: make(map[int64][]T)}
}

// Push installs v as the new top of the calling goroutine's stack.
func (s *Stack[T]) Push(v T) {
	id := goroutineID()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[id] = append(s.m[id], v)
}

// Pop removes and returns the calling goroutine's top value. ok is
// false if the goroutine's stack is empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	id := goroutineID()
	s.mu.Lock()
	defer s.mu.Unlock()

	stk := s.m[id]
	if len(stk) == 0 {
		return v, false
	}
	v = stk[len(stk)-1]
	stk = stk[:len(stk)-1]
	if len(stk) == 0 {
		delete(s.m, id)
	} else {
		s.m[id] = stk
	}
	return v, true
}

// Top returns the calling goroutine's current top value without
// removing it. ok is false if the goroutine's stack is empty.
func (s *Stack[T]) Top() (v T, ok bool) {
	id := goroutineID()
	s.mu.Lock()
	defer s.mu.Unlock()

	stk := s.m[id]
	if len(stk) == 0 {
		return v, false
	}
	return stk[len(stk)-1], true
}

// Len reports the depth of the calling goroutine's stack.
func (s *Stack[T]) Len() int {
	id := goroutineID()
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m[id])
}
