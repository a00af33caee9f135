// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

// reservedWords are GLSL keywords an emitted identifier must never
// collide with (a small, practically-relevant subset, mirroring the
// teacher's escapeKeyword table).
var reservedWords = map[string]struct{}{
	"in": {}, "out": {}, "inout": {}, "uniform": {}, "buffer": {},
	"struct": {}, "return": {}, "if": {}, "else": {}, "while": {},
	"for": {}, "break": {}, "continue": {}, "discard": {}, "void": {},
	"true": {}, "false": {}, "const": {}, "layout": {}, "shared": {},
}

// canonicalize folds a user-supplied identifier (a struct field name,
// a procedure name) to a form safe for GLSL source: full/half-width
// variants collapsed to their canonical form and case-folded to lower
// camel-case-friendly ASCII, since struct field names recorded through
// the DSL may originate from arbitrary host-language identifiers.
func canonicalize(name string) string {
	folded := width.Fold.String(name)
	folded = cases.Lower(language.Und).String(folded)
	var sb strings.Builder
	for _, r := range folded {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	out := sb.String()
	if out == "" {
		out = "v"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}

// namer assigns unique GLSL identifiers for Construct-local temporaries
// (the `sN` counter), skipping any name already reserved; the writer
// reserves each procedure's parameter names (_argN) before its body.
type namer struct {
	used    map[string]struct{}
	counter uint32
}

func newNamer() *namer {
	return &namer{used: make(map[string]struct{})}
}

func (n *namer) reserve(name string) {
	n.used[name] = struct{}{}
}

func (n *namer) escape(name string) string {
	if _, reserved := reservedWords[name]; reserved {
		return name + "_"
	}
	return name
}

func (n *namer) local() string {
	for {
		candidate := fmt.Sprintf("s%d", n.counter)
		n.counter++
		if _, used := n.used[candidate]; !used {
			n.used[candidate] = struct{}{}
			return candidate
		}
	}
}
