package schedtest

import (
	"time"

	"github.com/hungrypc/recreate-framework/pkg/dom"
	"github.com/hungrypc/recreate-framework/pkg/sched"
	"github.com/hungrypc/recreate-framework/pkg/vdom"
)

// TextVisit is the marker recorded for text-node creation.
const TextVisit = "#text"

// RecordingDocument wraps a MemoryDocument and records the order in which
// host nodes are created — which, for a first mount, is the fiber visit
// order minus the root.
type RecordingDocument struct {
	*dom.MemoryDocument
	created []string
}

// NewRecordingDocument creates an empty recording document.
func NewRecordingDocument() *RecordingDocument {
	return &RecordingDocument{MemoryDocument: dom.NewMemoryDocument()}
}

// CreateElement records the tag and delegates.
func (r *RecordingDocument) CreateElement(tag string) dom.Node {
	r.created = append(r.created, tag)
	return r.MemoryDocument.CreateElement(tag)
}

// CreateText records a text visit and delegates.
func (r *RecordingDocument) CreateText() dom.Node {
	r.created = append(r.created, TextVisit)
	return r.MemoryDocument.CreateText()
}

// Created returns the recorded creation order.
func (r *RecordingDocument) Created() []string {
	out := make([]string, len(r.created))
	copy(out, r.created)
	return out
}

// Reset clears the recorded order. Existing nodes are untouched.
func (r *RecordingDocument) Reset() {
	r.created = nil
}

// Harness drives one scheduler over a recording document with hand-granted
// idle slices.
type Harness struct {
	doc       *RecordingDocument
	idler     *sched.Manual
	scheduler *sched.Scheduler
	container dom.Node
}

// NewHarness creates a harness with a fresh document, a "container" root
// node, and an armed scheduler.
func NewHarness(opts ...sched.Option) *Harness {
	h := &Harness{
		doc:   NewRecordingDocument(),
		idler: sched.NewManual(),
	}
	h.scheduler = sched.New(h.doc, h.idler, opts...)
	h.container = h.doc.CreateElement("container")
	h.doc.Reset()
	return h
}

// Mount starts mounting node into the harness container.
func (h *Harness) Mount(node *vdom.VNode) *Harness {
	h.scheduler.Mount(node, h.container)
	return h
}

// StepOne grants a zero-budget idle slice, which processes exactly one
// fiber when one is pending. It reports whether a fiber was processed.
func (h *Harness) StepOne() bool {
	before := h.scheduler.Processed()
	if !h.idler.Step(0) {
		return false
	}
	return h.scheduler.Processed() != before
}

// RunToIdle grants generous slices until no fiber is pending or the pass
// has failed.
func (h *Harness) RunToIdle() *Harness {
	for h.idler.Step(time.Second) && h.scheduler.Pending() && h.scheduler.Err() == nil {
	}
	return h
}

// Visits returns the host-node creation order so far.
func (h *Harness) Visits() []string {
	return h.doc.Created()
}

// HTML serializes the container's children.
func (h *Harness) HTML() (string, error) {
	return dom.InnerHTML(h.container)
}

// Container returns the mount container node.
func (h *Harness) Container() *dom.MemoryNode {
	return h.container.(*dom.MemoryNode)
}

// Document returns the underlying recording document.
func (h *Harness) Document() *RecordingDocument {
	return h.doc
}

// Scheduler returns the harness scheduler.
func (h *Harness) Scheduler() *sched.Scheduler {
	return h.scheduler
}
