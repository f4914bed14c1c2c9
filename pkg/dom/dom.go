package dom

// Node is an opaque handle to one node owned by a Document implementation.
// Callers never inspect it; they only pass it back to the Document that
// created it.
type Node interface {
	isNode()
}

// Document is the host-tree capability.
//
// Creation cannot fail: unknown tags are accepted verbatim and surface as
// whatever the host makes of them. SetProperty and AppendChild return the
// host's own errors; callers up the stack propagate them untranslated.
type Document interface {
	// CreateElement creates a detached tagged node.
	CreateElement(tag string) Node

	// CreateText creates a detached text node.
	CreateText() Node

	// SetProperty assigns one property on a node.
	SetProperty(n Node, key string, value any) error

	// AppendChild attaches child as the last child of parent, after any
	// existing children.
	AppendChild(parent, child Node) error
}
