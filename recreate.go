// Package recreate provides the public API for the incremental mounter.
//
// This is the recommended import for most applications:
//
//	import recreate "github.com/hungrypc/recreate-framework"
//
// Usage:
//
//	tree := recreate.CreateElement("app", nil,
//	    vdom.H1("Hello"),
//	    vdom.P("incrementally mounted"),
//	)
//	html, err := recreate.Render(tree)
//
// For incremental mounting against your own host document, wire a
// sched.Scheduler directly; Render is the synchronous convenience wrapper
// over the same engine.
package recreate

import (
	"time"

	"github.com/hungrypc/recreate-framework/pkg/dom"
	"github.com/hungrypc/recreate-framework/pkg/sched"
	"github.com/hungrypc/recreate-framework/pkg/vdom"
)

// VNode is one immutable node description in an element tree.
type VNode = vdom.VNode

// Props holds attributes and event handlers.
type Props = vdom.Props

// Attr represents a single attribute.
type Attr = vdom.Attr

// Scheduler drives mount passes across host-granted idle slices.
type Scheduler = sched.Scheduler

// CreateElement builds an element description; scalar children are wrapped
// as text nodes.
func CreateElement(tag string, props Props, children ...any) *VNode {
	return vdom.CreateElement(tag, props, children...)
}

// Text wraps a scalar as a text node.
func Text(value any) *VNode {
	return vdom.Text(value)
}

// NewScheduler creates an armed scheduler over the given document and
// idler.
func NewScheduler(doc dom.Document, idler sched.Idler, opts ...sched.Option) *Scheduler {
	return sched.New(doc, idler, opts...)
}

// Render mounts node into a fresh in-memory document and returns the
// container's HTML once the pass completes. The node itself is the mount
// root, so only its descendants appear in the output.
func Render(node *VNode, opts ...sched.Option) (string, error) {
	doc := dom.NewMemoryDocument()
	container := doc.CreateElement("container")

	idler := sched.NewManual()
	s := sched.New(doc, idler, opts...)
	s.Mount(node, container)
	for idler.Step(time.Second) && s.Pending() && s.Err() == nil {
	}
	if err := s.Err(); err != nil {
		return "", err
	}
	return dom.InnerHTML(container)
}
