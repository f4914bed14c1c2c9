package dom

import (
	"errors"
	"fmt"
)

var (
	// ErrNilNode is returned when a nil node handle is passed to the document.
	ErrNilNode = errors.New("dom: nil node")

	// ErrAttached is returned when appending a node that already has a parent.
	ErrAttached = errors.New("dom: node already attached to a parent")

	// ErrCycle is returned when appending a node under one of its own descendants.
	ErrCycle = errors.New("dom: append would create a cycle")
)

// MemoryNode is one node in a MemoryDocument tree.
type MemoryNode struct {
	tag      string
	text     bool
	props    map[string]any
	parent   *MemoryNode
	children []*MemoryNode
}

func (*MemoryNode) isNode() {}

// Tag returns the node's tag name; empty for text nodes.
func (n *MemoryNode) Tag() string { return n.tag }

// IsText reports whether this is a text node.
func (n *MemoryNode) IsText() bool { return n.text }

// Prop returns the value of one property, or nil if unset.
func (n *MemoryNode) Prop(key string) any { return n.props[key] }

// Props returns a copy of the node's property map.
func (n *MemoryNode) Props() map[string]any {
	out := make(map[string]any, len(n.props))
	for k, v := range n.props {
		out[k] = v
	}
	return out
}

// Parent returns the node's parent, or nil for detached nodes.
func (n *MemoryNode) Parent() *MemoryNode { return n.parent }

// Children returns the node's children in document order.
func (n *MemoryNode) Children() []*MemoryNode { return n.children }

// MemoryDocument is an in-memory Document implementation. It is the
// reference host for tests, the step harness, and server-side rendering.
//
// MemoryDocument is not safe for concurrent use; like a real document it
// expects a single mutating context.
type MemoryDocument struct {
	created int
}

// NewMemoryDocument creates an empty in-memory document.
func NewMemoryDocument() *MemoryDocument {
	return &MemoryDocument{}
}

// Created returns the number of nodes this document has created.
func (d *MemoryDocument) Created() int { return d.created }

// CreateElement creates a detached tagged node. The tag is not validated;
// unknown tags are stored verbatim.
func (d *MemoryDocument) CreateElement(tag string) Node {
	d.created++
	return &MemoryNode{tag: tag, props: make(map[string]any)}
}

// CreateText creates a detached text node.
func (d *MemoryDocument) CreateText() Node {
	d.created++
	return &MemoryNode{text: true, props: make(map[string]any)}
}

// SetProperty assigns one property on a node.
func (d *MemoryDocument) SetProperty(n Node, key string, value any) error {
	mn, err := d.own(n)
	if err != nil {
		return err
	}
	mn.props[key] = value
	return nil
}

// AppendChild attaches child as the last child of parent. A node can only
// ever be attached once, and never under its own descendants.
func (d *MemoryDocument) AppendChild(parent, child Node) error {
	p, err := d.own(parent)
	if err != nil {
		return err
	}
	c, err := d.own(child)
	if err != nil {
		return err
	}
	if c.parent != nil {
		return ErrAttached
	}
	for anc := p; anc != nil; anc = anc.parent {
		if anc == c {
			return ErrCycle
		}
	}
	c.parent = p
	p.children = append(p.children, c)
	return nil
}

// own checks that a handle is a live node of this document.
func (d *MemoryDocument) own(n Node) (*MemoryNode, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	mn, ok := n.(*MemoryNode)
	if !ok {
		return nil, fmt.Errorf("dom: foreign node handle %T", n)
	}
	return mn, nil
}
