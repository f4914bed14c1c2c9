// Package sched implements the incremental mounter: a fiber tree mirroring
// an element tree, walked one fiber at a time by a cooperative scheduler
// inside host-granted idle slices.
//
// # Fibers
//
// A Fiber is the mutable work unit for one vdom.VNode. Fibers link through
// parent/child/sibling pointers rather than child slices, so the traversal
// can stop after any fiber and resume later from a single saved pointer.
//
// # Scheduling
//
// The Scheduler holds one cursor, the next pending fiber. Each time the
// host's Idler grants it a slice, it processes fibers until the slice's
// Deadline runs low, then re-arms the Idler and returns. Processing one
// fiber is atomic: its host node is created, fully configured, and attached
// before control can yield, so observers only ever see missing descendants,
// never half-built nodes.
//
// Two Idler implementations ship with the package: Loop, a single-goroutine
// run loop granting fixed budgets, and Manual, a hand-stepped idler for
// tests.
//
//	doc := dom.NewMemoryDocument()
//	container := doc.CreateElement("body")
//	loop := sched.NewLoop()
//	defer loop.Close()
//
//	s := sched.New(doc, loop)
//	s.Mount(vdom.CreateElement("app", nil, vdom.H1("hello")), container)
//	<-s.Done()
package sched
