package ir

import (
	"fmt"
	"io"
)

// WriteGraphviz writes buf's atom pool as a DOT digraph: one node per
// atom index, one edge per use-def dependency from Addresses. An
// optional debugging dump, pairing the textual assembly form with a
// graph view that makes recursive type chains and long-range use-def
// edges easier to follow than the linear dump alone.
func (b *Buffer) WriteGraphviz(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph thunder {"); err != nil {
		return err
	}
	for i, atom := range b.Atoms {
		idx := Index(i)
		if _, err := fmt.Fprintf(w, "  N%d [label=%q];\n", idx, dumpBody(idx, atom.Kind)); err != nil {
			return err
		}
	}
	for i, atom := range b.Atoms {
		idx := Index(i)
		for _, used := range Addresses(atom.Kind) {
			if _, err := fmt.Fprintf(w, "  N%d -> N%d;\n", idx, used); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
