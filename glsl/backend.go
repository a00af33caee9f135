// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl implements the sole textual emission target this
// compiler produces: a single pass over a linked, index-addressed
// ir.Buffer that walks atoms in order and prints
// well-formed GLSL, honoring struct aggregation, layout/binding
// qualifiers, and control flow. Binary operations are always fully
// parenthesized rather than following a precedence table — a
// deliberate simplification that happens to reproduce every literal
// scenario once whitespace is normalized.
package glsl

import (
	"fmt"

	"github.com/gogpu/thunder/ir"
)

// Options configures GLSL code generation.
type Options struct {
	// Version is the numeric GLSL version printed in the #version
	// directive header (e.g. 460 for "#version 460").
	Version uint32

	// StructNames optionally maps a struct TypeField's head index to
	// its source-declared name (dsl.StructType.idx → dsl.StructType's
	// own name, not its per-field Names map); without an entry, struct
	// types print as type_<index>.
	StructNames map[ir.Index]string

	// FieldNames optionally maps a struct member TypeField index to
	// its declared field name (dsl.StructType.Names); without an
	// entry, fields print as member_<i>, where i is that member
	// TypeField's atom index.
	FieldNames map[ir.Index]string
}

// DefaultOptions returns GLSL 460 core with no name tables — callers
// building through package dsl and package link should populate
// StructNames/FieldNames from the StructType values they recorded.
func DefaultOptions() Options {
	return Options{Version: 460}
}

// Compile emits buf as one GLSL procedure per proc in procs order,
// honoring opts. It is the sole entry point into this package.
func Compile(buf *ir.Buffer, procs []ProcedureSignature, opts Options) (string, error) {
	if opts.Version == 0 {
		opts.Version = 460
	}
	w := newWriter(buf, opts)
	if err := w.writeProgram(procs); err != nil {
		return "", fmt.Errorf("glsl: %w", err)
	}
	return w.out.String(), nil
}

// ProcedureSignature is the slice of ir.Procedure/link.Procedure the
// GLSL writer actually needs: a name, parameter types in declaration
// order, a return type (NoIndex for void), and the atom range
// [Start, Start+Length) within buf that holds its body.
type ProcedureSignature struct {
	Name           string
	ParameterTypes []ir.Index
	ReturnType     ir.Index
	Start          ir.Index
	Length         int
}
