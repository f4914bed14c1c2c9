// Package vdom provides the immutable element descriptions consumed by the
// incremental mounter.
//
// # Core Types
//
// VNode is the fundamental building block representing elements and text.
// Props holds attributes and event handlers. Attr is used to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P("Content"),
//	)
//
// or directly via CreateElement, which additionally accepts a prop map:
//
//	CreateElement("div", Props{"id": "main"}, "Content")
//
// Scalar children are wrapped as text nodes during construction, so a
// well-formed tree only ever contains VNode children. Nodes are never
// mutated after construction; the mounter in package sched walks them
// read-only.
package vdom
