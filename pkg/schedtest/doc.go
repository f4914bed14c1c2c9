// Package schedtest provides a step-by-step harness for exercising the
// incremental mounter in tests.
//
// A Harness bundles an in-memory document, a hand-stepped idler, and a
// scheduler, and lets a test drive a mount pass one fiber at a time:
//
//	h := schedtest.NewHarness().Mount(tree)
//	for h.StepOne() {
//	    // inspect h.HTML() mid-mount
//	}
package schedtest
