// Package snapmeta provides out-of-band bookkeeping for snapshot generation:
// transient, per-node annotations that a structure-merging process attaches to
// element trees while it combines a base tree with a differential tree into a
// materialized snapshot tree.
//
// The annotations never appear in the domain model's own fields. They record
// three facts the merge driver needs while walking the trees:
//
//   - whether a snapshot node was freshly generated or copied from a
//     pre-existing snapshot (GenerationMarker)
//   - whether a node's current value was actually overridden by the
//     differential during the merge (ConstraintMarker)
//   - which generated snapshot node a differential node produced
//     (CrossReference), so later passes can jump to "my counterpart"
//     without re-matching trees
//
// # The Store
//
// All annotations live in a Store, an identity-keyed side table owned by the
// merge pass. The store never modifies the nodes themselves; a node carries an
// annotation exactly as long as the store tracks it.
//
//	store := snapmeta.New()
//
//	store.MarkGenerated(node)
//	if store.IsGenerated(node) {
//	    // freshly synthesized, may need full reprocessing
//	}
//
//	store.MarkConstrainedByDifferential(node)
//	if err := store.ClearConstrainedByDifferentialDeep(ctx, root); err != nil {
//	    // nil root: caller bug, surfaced immediately
//	}
//
//	if err := store.SetCrossReference(diffNode, snapNode); err != nil {
//	    // nil snapshot target: caller bug
//	}
//	snap, ok := store.CrossReference(diffNode)
//
// # Node Contract
//
// The store is generic over the caller's tree. A node only has to implement
// the Node interface (an ordered, nil-free child sequence) and be comparable,
// since annotations are keyed by object identity: two structurally identical
// nodes are tracked independently.
//
// Root-level accessors additionally understand a Definition: a structure
// definition shaped root whose optional differential component exposes the
// differential root element. See SetRootCrossReference.
//
// # Absent Nodes
//
// Single-node operations tolerate a nil node and silently do nothing, so they
// can be chained off optional lookup paths ("the first child of a possibly
// absent parent") without presence checks at every step. The recursive and
// root-level operations are different: calling them with a nil node or nil
// slice is always a caller bug and fails with a KindInvalidArgument Error.
//
// # Observability
//
// A Store optionally emits OpenTelemetry metrics and traces:
//
//	store := snapmeta.New(
//	    snapmeta.WithLogger(logger),
//	    snapmeta.WithMeterProvider(meterProvider),
//	    snapmeta.WithTracerProvider(tracerProvider),
//	)
//
// When unconfigured, every observability path is skipped silently.
//
// # Concurrency
//
// A Store is intended for the single sequential merge pass that owns its
// trees. It performs no internal locking; concurrent use of one Store from
// multiple goroutines is not supported.
package snapmeta
