package dom

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hungrypc/recreate-framework/pkg/vdom"
)

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// OuterHTML serializes the subtree rooted at n, including n itself.
// The node must belong to a MemoryDocument.
func OuterHTML(n Node) (string, error) {
	var b strings.Builder
	if err := writeHTML(&b, n, true); err != nil {
		return "", err
	}
	return b.String(), nil
}

// InnerHTML serializes only the children of n, in document order. This is
// the usual way to inspect a mount container.
func InnerHTML(n Node) (string, error) {
	var b strings.Builder
	if err := writeHTML(&b, n, false); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeHTML(w io.Writer, n Node, includeSelf bool) error {
	if n == nil {
		return ErrNilNode
	}
	mn, ok := n.(*MemoryNode)
	if !ok {
		return fmt.Errorf("dom: foreign node handle %T", n)
	}
	if includeSelf {
		return writeNode(w, mn)
	}
	for _, child := range mn.children {
		if err := writeNode(w, child); err != nil {
			return err
		}
	}
	return nil
}

func writeNode(w io.Writer, n *MemoryNode) error {
	if n.text {
		_, err := io.WriteString(w, escapeHTML(formatValue(n.props[vdom.TextValueProp])))
		return err
	}

	if _, err := io.WriteString(w, "<"+n.tag); err != nil {
		return err
	}
	if err := writeAttrs(w, n.props); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if voidElements[n.tag] {
		return nil
	}

	for _, child := range n.children {
		if err := writeNode(w, child); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</"+n.tag+">")
	return err
}

// writeAttrs writes the node's properties as HTML attributes in a stable
// order. Event handlers and nil values have no HTML form and are skipped;
// boolean properties render as bare attributes when true and disappear when
// false.
func writeAttrs(w io.Writer, props map[string]any) error {
	keys := make([]string, 0, len(props))
	for key := range props {
		if vdom.IsEventProp(key) || props[key] == nil {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := props[key]
		if b, ok := value.(bool); ok {
			if b {
				if _, err := io.WriteString(w, " "+key); err != nil {
					return err
				}
			}
			continue
		}
		s := " " + key + `="` + escapeAttr(formatValue(value)) + `"`
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}

// formatValue renders a property value as text.
func formatValue(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// escapeAttr escapes text for safe inclusion in HTML attribute values.
// In addition to the standard HTML entities, it also escapes whitespace
// characters that could break attribute parsing.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
