package snapmeta

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// record is the fixed-shape annotation record held for each tracked node.
// The set of annotation kinds is closed, so each kind gets a dedicated field
// instead of an open-ended bag: field access is compile-time checked and
// there is no dynamic-kind lookup.
type record struct {
	generation  *GenerationMarker
	constrained bool
	crossRef    *CrossReference
}

// empty reports whether the record carries no annotation of any kind.
func (r *record) empty() bool {
	return r.generation == nil && !r.constrained && r.crossRef == nil
}

// Store is an identity-keyed side table of node annotations. One Store is
// owned by one merge pass; it performs no internal locking and must not be
// shared across goroutines.
//
// Nodes are keyed by object identity, so the Store holds a reference to every
// node it has annotated. Drivers that recycle nodes mid-pass should call
// Discard (or Reset between passes) to release them.
type Store struct {
	records map[Node]*record

	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *storeMetrics
	now     func() time.Time
}

// New creates an empty Store configured by the given options.
func New(opts ...Option) *Store {
	cfg := storeConfig{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Store{
		records: make(map[Node]*record),
		logger:  cfg.logger,
		now:     cfg.now,
	}

	if cfg.tracerProvider != nil {
		s.tracer = cfg.tracerProvider.Tracer(instrumentationName)
	}

	if cfg.meterProvider != nil {
		metrics, err := newStoreMetrics(cfg.meterProvider.Meter(instrumentationName))
		if err != nil {
			// Observability is best-effort: a store without instruments
			// still annotates correctly.
			s.logger.Warn("failed to create metric instruments, metrics disabled", "error", err)
		} else {
			s.metrics = metrics
		}
	}

	return s
}

// Kind describes one of the fixed annotation kinds and how it maps onto the
// record's fields. The accessor functions are unexported, so the three
// package-defined kinds (GenerationKind, ConstraintKind, CrossReferenceKind)
// are the only kinds that can exist.
type Kind[T any] struct {
	name string

	get func(*record) (T, bool)
	// set stores a value and reports whether a live value was replaced.
	set   func(*record, T) bool
	clear func(*record)
}

// Name returns the kind's name, used in log output.
func (k Kind[T]) Name() string { return k.name }

// Attach records v as node's annotation of kind k, replacing any live value
// of that kind. It silently does nothing when node is nil, so it can be
// chained off optional lookup paths.
func Attach[T any](s *Store, node Node, k Kind[T], v T) {
	if node == nil {
		return
	}
	rec, ok := s.records[node]
	if !ok {
		rec = &record{}
		s.records[node] = rec
	}
	if replaced := k.set(rec, v); replaced {
		s.logger.Debug("annotation replaced", "kind", k.name)
	}
}

// Has reports whether node carries an annotation of kind k. It returns false,
// not an error, when node is nil.
func Has[T any](s *Store, node Node, k Kind[T]) bool {
	if node == nil {
		return false
	}
	rec, ok := s.records[node]
	if !ok {
		return false
	}
	_, ok = k.get(rec)
	return ok
}

// Get returns node's annotation of kind k. The second return value is false
// when node is nil or carries no value of that kind.
func Get[T any](s *Store, node Node, k Kind[T]) (T, bool) {
	var zero T
	if node == nil {
		return zero, false
	}
	rec, ok := s.records[node]
	if !ok {
		return zero, false
	}
	return k.get(rec)
}

// RemoveAll removes node's annotation of kind k, if any. It silently does
// nothing when node is nil.
func RemoveAll[T any](s *Store, node Node, k Kind[T]) {
	if node == nil {
		return
	}
	rec, ok := s.records[node]
	if !ok {
		return
	}
	k.clear(rec)
	if rec.empty() {
		delete(s.records, node)
	}
}

// Discard drops every annotation for node, releasing the Store's reference
// to it. No-op when node is nil or untracked.
func (s *Store) Discard(node Node) {
	if node == nil {
		return
	}
	delete(s.records, node)
}

// Reset drops all annotations, leaving the Store ready for another pass.
func (s *Store) Reset() {
	clear(s.records)
}

// Len returns the number of nodes currently carrying at least one annotation.
func (s *Store) Len() int {
	return len(s.records)
}
