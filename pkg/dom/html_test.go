package dom

import (
	"strings"
	"testing"

	"github.com/hungrypc/recreate-framework/pkg/vdom"
)

// build assembles a small tree by hand:
// <div id="root"><a href="/x">hi</a><br></div>
func buildSample(t *testing.T) (doc *MemoryDocument, root Node) {
	t.Helper()
	doc = NewMemoryDocument()

	root = doc.CreateElement("div")
	if err := doc.SetProperty(root, "id", "root"); err != nil {
		t.Fatal(err)
	}

	a := doc.CreateElement("a")
	if err := doc.SetProperty(a, "href", "/x"); err != nil {
		t.Fatal(err)
	}
	txt := doc.CreateText()
	if err := doc.SetProperty(txt, vdom.TextValueProp, "hi"); err != nil {
		t.Fatal(err)
	}
	br := doc.CreateElement("br")

	for _, pair := range [][2]Node{{a, txt}, {root, a}, {root, br}} {
		if err := doc.AppendChild(pair[0], pair[1]); err != nil {
			t.Fatal(err)
		}
	}
	return doc, root
}

func TestOuterHTML(t *testing.T) {
	_, root := buildSample(t)

	got, err := OuterHTML(root)
	if err != nil {
		t.Fatalf("OuterHTML: %v", err)
	}
	want := `<div id="root"><a href="/x">hi</a><br></div>`
	if got != want {
		t.Errorf("OuterHTML = %s, want %s", got, want)
	}
}

func TestInnerHTML(t *testing.T) {
	_, root := buildSample(t)

	got, err := InnerHTML(root)
	if err != nil {
		t.Fatalf("InnerHTML: %v", err)
	}
	want := `<a href="/x">hi</a><br>`
	if got != want {
		t.Errorf("InnerHTML = %s, want %s", got, want)
	}
}

func TestHTMLEscaping(t *testing.T) {
	doc := NewMemoryDocument()
	el := doc.CreateElement("p")
	if err := doc.SetProperty(el, "title", `a "quoted" <tag>`); err != nil {
		t.Fatal(err)
	}
	txt := doc.CreateText()
	if err := doc.SetProperty(txt, vdom.TextValueProp, `<script>&`); err != nil {
		t.Fatal(err)
	}
	if err := doc.AppendChild(el, txt); err != nil {
		t.Fatal(err)
	}

	got, err := OuterHTML(el)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("content not escaped: %s", got)
	}
	want := `<p title="a &quot;quoted&quot; &lt;tag&gt;">&lt;script&gt;&amp;</p>`
	if got != want {
		t.Errorf("OuterHTML = %s, want %s", got, want)
	}
}

func TestHTMLAttributeRendering(t *testing.T) {
	doc := NewMemoryDocument()
	el := doc.CreateElement("input")
	props := map[string]any{
		"type":     "checkbox",
		"checked":  true,
		"disabled": false,
		"onclick":  func() {},
		"count":    3,
		"ghost":    nil,
	}
	for k, v := range props {
		if err := doc.SetProperty(el, k, v); err != nil {
			t.Fatal(err)
		}
	}

	got, err := OuterHTML(el)
	if err != nil {
		t.Fatal(err)
	}
	// Attributes are sorted; handlers, nil, and false booleans are dropped;
	// input is void so there is no closing tag.
	want := `<input checked count="3" type="checkbox">`
	if got != want {
		t.Errorf("OuterHTML = %s, want %s", got, want)
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("br") || !IsVoidElement("img") {
		t.Error("br/img should be void")
	}
	if IsVoidElement("div") {
		t.Error("div should not be void")
	}
}
