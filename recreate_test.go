package recreate

import (
	"testing"

	"github.com/hungrypc/recreate-framework/pkg/vdom"
)

func TestRender(t *testing.T) {
	tree := CreateElement("app", nil,
		vdom.Div(vdom.Class("card"),
			vdom.H1("Title"),
			vdom.P("Content ", vdom.Strong("matters")),
		),
	)

	html, err := Render(tree)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := `<div class="card"><h1>Title</h1><p>Content <strong>matters</strong></p></div>`
	if html != want {
		t.Errorf("Render = %s, want %s", html, want)
	}
}

func TestRenderScalarChildren(t *testing.T) {
	html, err := Render(CreateElement("root", nil,
		CreateElement("p", nil, "n = ", 42),
	))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if html != `<p>n = 42</p>` {
		t.Errorf("Render = %s", html)
	}
}
