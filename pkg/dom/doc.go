// Package dom defines the host-tree capability consumed by the mounter and
// ships an in-memory implementation of it.
//
// The mounter never touches a concrete document type. It creates nodes,
// assigns properties, and appends children exclusively through the Document
// interface, so any tree-shaped host (a browser bridge, a test double, the
// in-memory document here) can stand on the other side.
//
// MemoryDocument is the reference implementation: a plain ordered tree with
// property maps, plus HTML serialization via OuterHTML/InnerHTML.
package dom
