// Package ir defines Thunder, the flat, index-addressed intermediate
// representation recorded by the thunder DSL.
//
// Unlike a tree- or SSA-based IR, Thunder is a single append-only pool
// of tagged Atoms per recording scope (a Buffer). Every Atom refers to
// earlier atoms in the same buffer by position (an Index), never by
// pointer, so types, values, and control flow are all expressed as
// indices into one flat array. This makes cyclic and forward type
// references trivial to encode (see Buffer) and keeps reindexing,
// dead-code elimination, and linking mechanical array rewrites instead
// of graph surgery.
package ir
