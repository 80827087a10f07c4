package snapmeta

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// GenerationMarker records that a node was synthesized by the snapshot
// generator, independent of the node's content. Immutable once attached.
type GenerationMarker struct {
	// ID uniquely identifies the generation event, so drivers can correlate
	// log lines across passes.
	ID string

	// CreatedAt is when the node was generated.
	CreatedAt time.Time
}

// GenerationKind is the annotation kind holding a node's GenerationMarker.
var GenerationKind = Kind[GenerationMarker]{
	name: "generation",
	get: func(r *record) (GenerationMarker, bool) {
		if r.generation == nil {
			return GenerationMarker{}, false
		}
		return *r.generation, true
	},
	set: func(r *record, v GenerationMarker) bool {
		replaced := r.generation != nil
		r.generation = &v
		return replaced
	},
	clear: func(r *record) {
		r.generation = nil
	},
}

// MarkGenerated attaches a fresh GenerationMarker to node, recording that it
// was produced by the generation process rather than copied from an existing
// snapshot. Silently does nothing when node is nil. Marking an already-marked
// node refreshes the marker; IsGenerated remains true either way.
func (s *Store) MarkGenerated(node Node) {
	if node == nil {
		return
	}
	Attach(s, node, GenerationKind, GenerationMarker{
		ID:        uuid.NewString(),
		CreatedAt: s.now(),
	})
	if s.metrics != nil {
		s.metrics.generatedMarks.Add(context.Background(), 1)
	}
}

// IsGenerated reports whether node was marked as generated. Returns false,
// not an error, when node is nil.
func (s *Store) IsGenerated(node Node) bool {
	return Has(s, node, GenerationKind)
}

// Generation returns node's GenerationMarker, exposing the generation ID and
// timestamp. The second return value is false when node is nil or was never
// marked.
func (s *Store) Generation(node Node) (GenerationMarker, bool) {
	return Get(s, node, GenerationKind)
}
