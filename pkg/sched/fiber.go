package sched

import (
	"github.com/hungrypc/recreate-framework/pkg/dom"
	"github.com/hungrypc/recreate-framework/pkg/vdom"
)

// Fiber is the mutable work unit mirroring one VNode during a mount pass.
//
// Each fiber owns at most one host node, which it creates, configures, and
// attaches under its parent fiber's host node exactly once. The root fiber
// is the exception: it materializes nothing of its own and carries the
// mount container, which stands in as the host parent for its children.
type Fiber struct {
	node *vdom.VNode
	host dom.Node

	parent  *Fiber
	child   *Fiber // first child
	sibling *Fiber // next sibling, owned by the shared parent's child list
}

// Node returns the element description this fiber mirrors.
func (f *Fiber) Node() *vdom.VNode { return f.node }

// Host returns the host node attached for this fiber. For the root fiber
// this is the mount container.
func (f *Fiber) Host() dom.Node { return f.host }

// Parent returns the parent fiber, nil for the root.
func (f *Fiber) Parent() *Fiber { return f.parent }

// expand creates one child fiber per child VNode, linking the first as
// f.child and each subsequent one as the previous child's sibling. A fiber
// with no children keeps child unset.
func (f *Fiber) expand() {
	var prev *Fiber
	for _, node := range f.node.Children {
		cf := &Fiber{node: node, parent: f}
		if prev == nil {
			f.child = cf
		} else {
			prev.sibling = cf
		}
		prev = cf
	}
}

// next picks the following unit of work in pre-order: descend to the first
// child if there is one, otherwise climb parent links and take the first
// ancestor sibling (the uncle rule). Nil means the pass is complete.
func (f *Fiber) next() *Fiber {
	if f.child != nil {
		return f.child
	}
	for n := f; n != nil; n = n.parent {
		if n.sibling != nil {
			return n.sibling
		}
	}
	return nil
}
