package vdom

// CreateElement builds an element description from a tag, an optional prop
// map, and a variadic list of children.
//
// The prop map is copied, never aliased, and a reserved "children" key is
// discarded so it can never collide with the real child list. Children that
// are not already *VNode are wrapped as text nodes carrying the scalar in
// their "value" prop. Nil children are skipped, which allows conditional
// construction with If/When.
//
// No validation is performed on the tag; unknown tags flow through verbatim
// to the host document at mount time.
func CreateElement(tag string, props Props, children ...any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props, len(props)),
		Children: make([]*VNode, 0, len(children)),
	}

	for key, value := range props {
		if key == "children" {
			continue
		}
		node.Props[key] = value
	}

	for _, child := range children {
		appendChild(node, child)
	}

	return node
}

// element creates a VNode with the given tag and mixed arguments.
// Arguments can be: nil, Attr, []Attr, Props, *VNode, []*VNode, or any
// scalar (wrapped as a text node). This powers the tag factories below.
func element(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			if !v.IsEmpty() {
				node.Props[v.Key] = v.Value
			}

		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					node.Props[a.Key] = a.Value
				}
			}

		case Props:
			for key, value := range v {
				if key != "children" {
					node.Props[key] = value
				}
			}

		default:
			appendChild(node, arg)
		}
	}

	return node
}

// appendChild normalizes one child argument onto node.Children.
func appendChild(node *VNode, child any) {
	switch v := child.(type) {
	case nil:

	case *VNode:
		if v != nil {
			node.Children = append(node.Children, v)
		}

	case []*VNode:
		for _, c := range v {
			if c != nil {
				node.Children = append(node.Children, c)
			}
		}

	default:
		node.Children = append(node.Children, Text(v))
	}
}

// Standard element factories. Each accepts any mix of Attr, Props, *VNode,
// and scalar children.

// Div creates a <div> element.
func Div(args ...any) *VNode { return element("div", args) }

// Span creates a <span> element.
func Span(args ...any) *VNode { return element("span", args) }

// P creates a <p> element.
func P(args ...any) *VNode { return element("p", args) }

// A creates an <a> element.
func A(args ...any) *VNode { return element("a", args) }

// H1 creates an <h1> element.
func H1(args ...any) *VNode { return element("h1", args) }

// H2 creates an <h2> element.
func H2(args ...any) *VNode { return element("h2", args) }

// H3 creates an <h3> element.
func H3(args ...any) *VNode { return element("h3", args) }

// Ul creates a <ul> element.
func Ul(args ...any) *VNode { return element("ul", args) }

// Ol creates an <ol> element.
func Ol(args ...any) *VNode { return element("ol", args) }

// Li creates an <li> element.
func Li(args ...any) *VNode { return element("li", args) }

// Button creates a <button> element.
func Button(args ...any) *VNode { return element("button", args) }

// Input creates an <input> element.
func Input(args ...any) *VNode { return element("input", args) }

// Form creates a <form> element.
func Form(args ...any) *VNode { return element("form", args) }

// Label creates a <label> element.
func Label(args ...any) *VNode { return element("label", args) }

// Img creates an <img> element.
func Img(args ...any) *VNode { return element("img", args) }

// Section creates a <section> element.
func Section(args ...any) *VNode { return element("section", args) }

// Article creates an <article> element.
func Article(args ...any) *VNode { return element("article", args) }

// Header creates a <header> element.
func Header(args ...any) *VNode { return element("header", args) }

// Footer creates a <footer> element.
func Footer(args ...any) *VNode { return element("footer", args) }

// Nav creates a <nav> element.
func Nav(args ...any) *VNode { return element("nav", args) }

// Main creates a <main> element.
func Main(args ...any) *VNode { return element("main", args) }

// Strong creates a <strong> element.
func Strong(args ...any) *VNode { return element("strong", args) }

// Em creates an <em> element.
func Em(args ...any) *VNode { return element("em", args) }

// Pre creates a <pre> element.
func Pre(args ...any) *VNode { return element("pre", args) }

// Code creates a <code> element.
func Code(args ...any) *VNode { return element("code", args) }

// Br creates a <br> element.
func Br() *VNode { return element("br", nil) }

// Hr creates an <hr> element.
func Hr() *VNode { return element("hr", nil) }
