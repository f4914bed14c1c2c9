package sched

import (
	"errors"
	"testing"
	"time"

	"github.com/hungrypc/recreate-framework/pkg/dom"
	"github.com/hungrypc/recreate-framework/pkg/vdom"
)

// recordingDoc records the creation order of host nodes.
type recordingDoc struct {
	*dom.MemoryDocument
	created []string
}

func newRecordingDoc() *recordingDoc {
	return &recordingDoc{MemoryDocument: dom.NewMemoryDocument()}
}

func (r *recordingDoc) CreateElement(tag string) dom.Node {
	r.created = append(r.created, tag)
	return r.MemoryDocument.CreateElement(tag)
}

func (r *recordingDoc) CreateText() dom.Node {
	r.created = append(r.created, "#text")
	return r.MemoryDocument.CreateText()
}

var errProp = errors.New("host rejected property")

// failingDoc fails SetProperty for one poisoned key.
type failingDoc struct {
	*dom.MemoryDocument
	failKey string
}

func (f *failingDoc) SetProperty(n dom.Node, key string, value any) error {
	if key == f.failKey {
		return errProp
	}
	return f.MemoryDocument.SetProperty(n, key, value)
}

// sampleTree builds div → [h1 → [p, a], h2].
func sampleTree() *vdom.VNode {
	return vdom.CreateElement("div", nil,
		vdom.CreateElement("h1", nil,
			vdom.CreateElement("p", nil),
			vdom.CreateElement("a", nil),
		),
		vdom.CreateElement("h2", nil),
	)
}

func TestMountOneFiberPerZeroBudgetSlice(t *testing.T) {
	doc := newRecordingDoc()
	idler := NewManual()
	s := New(doc, idler)

	container := doc.CreateElement("body")
	doc.created = nil // ignore the container itself
	s.Mount(sampleTree(), container)

	// Each zero-budget slice must process exactly one fiber.
	wantProcessed := []int{1, 2, 3, 4, 5}
	for i, want := range wantProcessed {
		if !idler.Step(0) {
			t.Fatalf("step %d: no pending idle callback", i)
		}
		if got := s.Processed(); got != want {
			t.Fatalf("step %d: processed = %d, want %d", i, got, want)
		}
	}

	if s.Pending() {
		t.Error("cursor still pending after all fibers processed")
	}

	// The root fiber materializes nothing; creation order is the pre-order
	// document order of its descendants.
	want := []string{"h1", "p", "a", "h2"}
	if len(doc.created) != len(want) {
		t.Fatalf("created %v, want %v", doc.created, want)
	}
	for i := range want {
		if doc.created[i] != want[i] {
			t.Fatalf("created %v, want %v", doc.created, want)
		}
	}

	// Extra slices are granted but visit nothing twice.
	idler.Step(0)
	idler.Step(0)
	if got := s.Processed(); got != 5 {
		t.Errorf("processed after idle slices = %d, want 5", got)
	}
	if len(doc.created) != 4 {
		t.Errorf("idle slices created extra nodes: %v", doc.created)
	}
}

func TestMountBuildsHostTree(t *testing.T) {
	doc := dom.NewMemoryDocument()
	idler := NewManual()
	s := New(doc, idler)

	tree := vdom.CreateElement("app", nil,
		vdom.CreateElement("h1", vdom.Props{"id": "title", "class": "big"}, "Hello"),
		vdom.CreateElement("p", nil, "world"),
	)
	container := doc.CreateElement("body")
	s.Mount(tree, container)

	for idler.Step(time.Second) && s.Pending() {
	}

	if s.Pending() || s.Err() != nil {
		t.Fatalf("pass did not complete cleanly: pending=%v err=%v", s.Pending(), s.Err())
	}

	// One host node per non-root element, under the right parents: the
	// "app" root itself is not reproduced.
	body := container.(*dom.MemoryNode)
	if len(body.Children()) != 2 {
		t.Fatalf("container children = %d, want 2", len(body.Children()))
	}

	h1 := body.Children()[0]
	if h1.Tag() != "h1" || h1.Prop("id") != "title" || h1.Prop("class") != "big" {
		t.Errorf("h1 = %q props %v", h1.Tag(), h1.Props())
	}
	if _, ok := h1.Props()["children"]; ok {
		t.Error("reserved children key copied onto host node")
	}
	if len(h1.Children()) != 1 || !h1.Children()[0].IsText() {
		t.Fatalf("h1 children = %v, want one text node", h1.Children())
	}
	if got := h1.Children()[0].Prop(vdom.TextValueProp); got != "Hello" {
		t.Errorf("h1 text = %v, want Hello", got)
	}

	p := body.Children()[1]
	if p.Tag() != "p" || len(p.Children()) != 1 {
		t.Fatalf("p = %q with %d children", p.Tag(), len(p.Children()))
	}

	html, err := dom.InnerHTML(container)
	if err != nil {
		t.Fatal(err)
	}
	want := `<h1 class="big" id="title">Hello</h1><p>world</p>`
	if html != want {
		t.Errorf("InnerHTML = %s, want %s", html, want)
	}
}

func TestMountTwiceDuplicatesSubtrees(t *testing.T) {
	doc := dom.NewMemoryDocument()
	idler := NewManual()
	s := New(doc, idler)
	container := doc.CreateElement("body")

	runToIdle := func() {
		for idler.Step(time.Second) && s.Pending() {
		}
	}

	s.Mount(sampleTree(), container)
	runToIdle()
	s.Mount(sampleTree(), container)
	runToIdle()

	// No reconciliation: the second pass appends a second, overlapping
	// subtree rather than replacing the first.
	children := container.(*dom.MemoryNode).Children()
	if len(children) != 4 {
		t.Fatalf("container children = %d, want 4 (h1,h2,h1,h2)", len(children))
	}
	wantTags := []string{"h1", "h2", "h1", "h2"}
	for i, c := range children {
		if c.Tag() != wantTags[i] {
			t.Errorf("child %d = %q, want %q", i, c.Tag(), wantTags[i])
		}
	}
}

func TestHostErrorAbortsPass(t *testing.T) {
	doc := &failingDoc{MemoryDocument: dom.NewMemoryDocument(), failKey: "boom"}
	idler := NewManual()
	s := New(doc, idler)

	tree := vdom.CreateElement("root", nil,
		vdom.CreateElement("a", vdom.Props{"id": "ok"}),
		vdom.CreateElement("b", vdom.Props{"boom": true}),
		vdom.CreateElement("c", nil),
	)
	container := doc.CreateElement("body")
	s.Mount(tree, container)

	for idler.Step(time.Second) && s.Pending() && s.Err() == nil {
	}

	// The host's error surfaces untranslated and the pass never resumes:
	// the cursor stays parked on the failed fiber.
	if !errors.Is(s.Err(), errProp) {
		t.Fatalf("Err() = %v, want errProp", s.Err())
	}
	if !s.Pending() {
		t.Error("cursor cleared after failure; pass should be stuck")
	}
	processed := s.Processed()

	idler.Step(time.Second)
	idler.Step(time.Second)
	if s.Processed() != processed {
		t.Error("scheduler resumed after an unhandled failure")
	}

	// Nothing after the failed fiber was mounted, and the failed fiber's
	// node was never attached.
	children := container.(*dom.MemoryNode).Children()
	if len(children) != 1 || children[0].Tag() != "a" {
		t.Errorf("container children = %v, want only a", children)
	}

	select {
	case <-s.Done():
	default:
		t.Error("Done() not closed after failed pass")
	}
}

func TestMountWhilePendingAbandonsPreviousPass(t *testing.T) {
	doc := dom.NewMemoryDocument()
	idler := NewManual()
	s := New(doc, idler)
	container := doc.CreateElement("body")

	s.Mount(sampleTree(), container)
	idler.Step(0) // process only the root fiber of the first pass

	s.Mount(vdom.CreateElement("other", nil, vdom.CreateElement("em", nil)), container)
	for idler.Step(time.Second) && s.Pending() {
	}

	if s.Err() != nil {
		t.Fatalf("Err() = %v after fresh mount", s.Err())
	}
	children := container.(*dom.MemoryNode).Children()
	if len(children) != 1 || children[0].Tag() != "em" {
		t.Errorf("container children = %v, want only em from the second pass", children)
	}
}

func TestDoneChannel(t *testing.T) {
	doc := dom.NewMemoryDocument()
	idler := NewManual()
	s := New(doc, idler)

	select {
	case <-s.Done():
	default:
		t.Fatal("Done() before any mount should be closed")
	}

	container := doc.CreateElement("body")
	s.Mount(sampleTree(), container)
	done := s.Done()
	select {
	case <-done:
		t.Fatal("Done() closed while pass still pending")
	default:
	}

	for idler.Step(time.Second) && s.Pending() {
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Done() not closed after pass completed")
	}
}

func TestSchedulerRearmsWhileIdle(t *testing.T) {
	doc := dom.NewMemoryDocument()
	idler := NewManual()
	s := New(doc, idler)

	if idler.Pending() != 1 {
		t.Fatalf("pending after New = %d, want 1", idler.Pending())
	}

	// Even with nothing mounted, every granted slice re-arms the next one;
	// a mount issued later is picked up without extra wiring.
	idler.Step(time.Second)
	idler.Step(time.Second)
	if idler.Pending() != 1 {
		t.Fatalf("pending after idle slices = %d, want 1", idler.Pending())
	}

	container := doc.CreateElement("body")
	s.Mount(sampleTree(), container)
	for idler.Step(time.Second) && s.Pending() {
	}
	if s.Pending() {
		t.Error("late mount never processed")
	}
}
