// Package schema provides the declarative description of a directory tree to
// be materialized. A tree is an ordered mapping of names to nodes, where every
// node is exactly one of [*Directory], [*FileList] or [EmptyFile]. Schemas are
// built once and never mutated by their consumers.
package schema
