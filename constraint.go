package snapmeta

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ConstraintMarker tags a node whose current value is attributable to the
// differential input: the differential actually overrode something during the
// merge. Presence is the whole payload.
type ConstraintMarker struct{}

// ConstraintKind is the annotation kind holding a node's ConstraintMarker.
var ConstraintKind = Kind[ConstraintMarker]{
	name: "constraint",
	get: func(r *record) (ConstraintMarker, bool) {
		return ConstraintMarker{}, r.constrained
	},
	set: func(r *record, _ ConstraintMarker) bool {
		// A tag has no value to replace; re-marking is idempotent.
		r.constrained = true
		return false
	},
	clear: func(r *record) {
		r.constrained = false
	},
}

// MarkConstrainedByDifferential tags node as overridden by the differential.
// Silently does nothing when node is nil.
func (s *Store) MarkConstrainedByDifferential(node Node) {
	if node == nil {
		return
	}
	Attach(s, node, ConstraintKind, ConstraintMarker{})
	if s.metrics != nil {
		s.metrics.constraintMarks.Add(context.Background(), 1)
	}
}

// ClearConstrainedByDifferential removes the differential-constraint tag from
// node. Silently does nothing when node is nil or untagged.
func (s *Store) ClearConstrainedByDifferential(node Node) {
	if node == nil {
		return
	}
	if s.metrics != nil && Has(s, node, ConstraintKind) {
		s.metrics.constraintClears.Add(context.Background(), 1)
	}
	RemoveAll(s, node, ConstraintKind)
}

// IsConstrainedByDifferential reports whether node carries the
// differential-constraint tag. Returns false, not an error, when node is nil.
func (s *Store) IsConstrainedByDifferential(node Node) bool {
	return Has(s, node, ConstraintKind)
}

// ClearConstrainedByDifferentialDeep removes the differential-constraint tag
// from node and from every descendant in its child sequence, recursively.
//
// Unlike the single-node operations, a nil node here is a caller contract
// violation and fails with a KindInvalidArgument Error: the recursive clear is
// a top-level driver operation ("reset this whole subtree before
// reprocessing"), not a link in an optional chain. Children are recursed into
// unconditionally; the child sequence must not contain nil entries.
//
// ctx carries trace context for the emitted span only. The walk is
// unconditional once started and is never cancelled through ctx.
func (s *Store) ClearConstrainedByDifferentialDeep(ctx context.Context, node Node) error {
	const op = "Store.ClearConstrainedByDifferentialDeep"
	if node == nil {
		return newInvalidArgumentError(op, ErrNilNode)
	}

	var span trace.Span
	if s.tracer != nil {
		ctx, span = s.tracer.Start(ctx, "snapmeta.clear_constrained_deep")
		defer span.End()
	}

	visited, cleared := s.clearConstraintDeep(node)

	if span != nil {
		span.SetAttributes(
			attribute.Int("snapmeta.nodes_visited", visited),
			attribute.Int("snapmeta.tags_cleared", cleared),
		)
	}
	if s.metrics != nil {
		s.metrics.deepClearNodes.Add(ctx, int64(visited))
		s.metrics.constraintClears.Add(ctx, int64(cleared))
	}
	s.logger.Debug("cleared differential constraints", "nodes", visited, "cleared", cleared)

	return nil
}

// clearConstraintDeep clears node's tag and recurses into its children,
// returning the number of nodes visited and of live tags removed.
func (s *Store) clearConstraintDeep(node Node) (visited, cleared int) {
	if Has(s, node, ConstraintKind) {
		cleared++
	}
	RemoveAll(s, node, ConstraintKind)
	visited = 1
	for _, child := range node.ChildNodes() {
		v, c := s.clearConstraintDeep(child)
		visited += v
		cleared += c
	}
	return visited, cleared
}

// ClearConstrainedByDifferentialDeepAll applies
// ClearConstrainedByDifferentialDeep to every node in nodes, in order,
// stopping at the first failure. A nil slice is a caller contract violation
// and fails with a KindInvalidArgument Error; an empty slice is a successful
// no-op.
func (s *Store) ClearConstrainedByDifferentialDeepAll(ctx context.Context, nodes []Node) error {
	const op = "Store.ClearConstrainedByDifferentialDeepAll"
	if nodes == nil {
		return newInvalidArgumentError(op, ErrNilNodeList)
	}
	for _, node := range nodes {
		if err := s.ClearConstrainedByDifferentialDeep(ctx, node); err != nil {
			return err
		}
	}
	return nil
}
