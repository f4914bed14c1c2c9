package sched

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hungrypc/recreate-framework/pkg/dom"
	"github.com/hungrypc/recreate-framework/pkg/vdom"
)

// sliceThreshold is the minimum remaining budget worth starting another
// fiber for. The first fiber of a slice is processed regardless, so even a
// zero budget makes monotonic progress.
const sliceThreshold = time.Millisecond

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the scheduler's logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// WithMetrics attaches Prometheus metrics to the scheduler.
func WithMetrics(m *Metrics) Option {
	return func(s *Scheduler) {
		s.metrics = m
	}
}

// WithTracerName enables OpenTelemetry tracing with one span per mount
// pass, resolved from the global tracer provider.
func WithTracerName(name string) Option {
	return func(s *Scheduler) {
		s.tracer = otel.Tracer(name)
	}
}

// Scheduler drives one mount pass at a time across host-granted idle
// slices.
//
// The cursor — the single "next pending fiber" — is the only traversal
// state; everything else needed to resume lives in the fiber links
// themselves. The scheduler is created armed: New requests the first idle
// slice immediately and the work loop re-arms on every return, so a Mount
// issued at any later time gets picked up by the next slice.
//
// Concurrency: the Idler invokes the work loop from its own scheduling
// context while Mount arrives from the caller's goroutine; one mutex over
// the scheduler state keeps fiber processing non-preemptible either way.
type Scheduler struct {
	doc     dom.Document
	idler   Idler
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer

	mu        sync.Mutex
	cursor    *Fiber
	err       error
	active    bool
	processed int
	started   time.Time
	span      trace.Span
	doneCh    chan struct{}
}

// New creates a scheduler over the given document and arms its first idle
// slice.
func New(doc dom.Document, idler Idler, opts ...Option) *Scheduler {
	s := &Scheduler{
		doc:    doc,
		idler:  idler,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.idler.RequestIdleSlice(s.workLoop)
	return s
}

// Mount begins mounting node into container and returns immediately; the
// actual mounting happens asynchronously across subsequent idle slices.
//
// The node itself is the root fiber: it materializes no host node of its
// own (the container already exists and stands in as its host parent), so
// its tag and props are not reproduced in the host tree — only its
// descendants are.
//
// Mounting twice into the same container is not reconciled: the second
// pass appends a fresh subtree alongside whatever the first one produced.
// Calling Mount while a pass is still pending abandons that pass's
// remaining work; nodes it already attached stay where they are.
func (s *Scheduler) Mount(node *vdom.VNode, container dom.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		s.logger.Warn("mount requested while a pass is pending; abandoning previous pass")
		s.finishLocked(context.Canceled)
	}

	s.cursor = &Fiber{node: node, host: container}
	s.err = nil
	s.active = true
	s.processed = 0
	s.started = time.Now()
	s.doneCh = make(chan struct{})
	if s.tracer != nil {
		_, s.span = s.tracer.Start(context.Background(), "sched.mount",
			trace.WithAttributes(attribute.String("sched.root_tag", node.Tag)),
			trace.WithTimestamp(s.started),
		)
	}
	s.metrics.mountStarted()
	s.logger.Debug("mount pass started", "root_tag", node.Tag)
}

// Done returns a channel closed when the current mount pass completes or
// fails. Before any Mount, and after completion, the returned channel is
// already closed.
func (s *Scheduler) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doneCh == nil || !s.active {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return s.doneCh
}

// Err returns the sticky error of the last pass, if any. A failed pass
// never resumes: the cursor is left in place and only a new Mount clears
// the error.
func (s *Scheduler) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Pending reports whether a fiber is waiting to be processed.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor != nil
}

// Processed returns the number of fibers processed in the current or most
// recent pass.
func (s *Scheduler) Processed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processed
}

// workLoop runs one idle slice: it processes at least one pending fiber,
// keeps going while the deadline allows, then re-arms the idler. The
// re-arm is unconditional — an idle scheduler keeps a cheap subscription
// alive so a later Mount needs no extra wiring.
func (s *Scheduler) workLoop(d Deadline) {
	s.mu.Lock()
	for first := true; s.cursor != nil && s.err == nil; first = false {
		if !first && d.Remaining() <= sliceThreshold {
			break
		}
		next, err := s.processFiber(s.cursor)
		if err != nil {
			// Host failure: propagate untranslated, leave the cursor where
			// it is, and never resume this pass.
			s.finishLocked(err)
			break
		}
		s.cursor = next
		s.processed++
		s.metrics.fiberProcessed()
	}
	if s.cursor == nil && s.active {
		s.finishLocked(nil)
	}
	s.metrics.sliceGranted()
	s.mu.Unlock()

	s.idler.RequestIdleSlice(s.workLoop)
}

// processFiber performs the three sub-steps for one fiber — materialize its
// host node, expand its children into fibers, select the next unit of work.
// The steps run to completion or not at all from the caller's perspective;
// there is no suspension point inside.
func (s *Scheduler) processFiber(f *Fiber) (*Fiber, error) {
	if f.parent != nil {
		if err := s.materialize(f); err != nil {
			return nil, err
		}
	}
	f.expand()
	return f.next(), nil
}

// materialize creates and attaches the fiber's host node: a text node for
// text fibers, a tagged node otherwise, with every prop copied before the
// node is appended under the parent fiber's host node.
func (s *Scheduler) materialize(f *Fiber) error {
	var n dom.Node
	if f.node.Kind == vdom.KindText {
		n = s.doc.CreateText()
	} else {
		n = s.doc.CreateElement(f.node.Tag)
	}

	for key, value := range f.node.Props {
		if key == "children" {
			continue
		}
		if err := s.doc.SetProperty(n, key, value); err != nil {
			return err
		}
	}

	if err := s.doc.AppendChild(f.parent.host, n); err != nil {
		return err
	}
	f.host = n
	return nil
}

// finishLocked closes out the current pass. Callers hold s.mu.
func (s *Scheduler) finishLocked(err error) {
	if !s.active {
		return
	}
	s.active = false
	s.err = err
	elapsed := time.Since(s.started)

	if err != nil {
		s.metrics.mountFailed()
		s.logger.Error("mount pass failed", "error", err, "fibers", s.processed)
	} else {
		s.metrics.mountCompleted(elapsed)
		s.logger.Debug("mount pass complete", "fibers", s.processed, "elapsed", elapsed)
	}

	if s.span != nil {
		s.span.SetAttributes(attribute.Int("sched.fibers", s.processed))
		if err != nil {
			s.span.RecordError(err)
			s.span.SetStatus(codes.Error, err.Error())
		} else {
			s.span.SetStatus(codes.Ok, "")
		}
		s.span.End()
		s.span = nil
	}

	if s.doneCh != nil {
		close(s.doneCh)
	}
}
