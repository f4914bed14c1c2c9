package vdom

import "fmt"

// Text wraps a scalar as a text node. The scalar is carried in the "value"
// prop; the mounter copies it onto the host text node.
func Text(value any) *VNode {
	return &VNode{
		Kind:  KindText,
		Props: Props{TextValueProp: value},
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return nil
}

// Map renders a slice of items to a slice of nodes.
//
// Example:
//
//	Ul(Map(items, func(it Item) *VNode { return Li(it.Name) }))
func Map[T any](items []T, render func(T) *VNode) []*VNode {
	nodes := make([]*VNode, 0, len(items))
	for _, item := range items {
		if n := render(item); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}
