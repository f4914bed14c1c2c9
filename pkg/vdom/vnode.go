package vdom

// TextValueProp is the reserved prop carrying the scalar content of a text
// node. The mounter copies it onto the host text node like any other prop.
const TextValueProp = "value"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement VKind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// VNode is one immutable node description in an element tree.
//
// A VNode is built once by CreateElement (or the tag factories) and never
// modified afterwards. Every entry in Children is itself a well-formed
// VNode; scalars are wrapped as text nodes at construction time.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div"); empty for text nodes
	Props    Props    // Attributes and event handlers
	Children []*VNode // Child nodes
}

// Props holds attributes and event handlers.
type Props map[string]any

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// TextValue returns the scalar carried by a text node and whether the node
// is a text node at all.
func (v *VNode) TextValue() (any, bool) {
	if v == nil || v.Kind != KindText {
		return nil, false
	}
	return v.Props[TextValueProp], true
}
