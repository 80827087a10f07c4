package snapmeta

import "context"

// CrossReference is a directed link from a differential node to the generated
// snapshot node it produced during the merge. It lets a later pass jump from
// "this differential node" to "its snapshot counterpart" in O(1) instead of
// re-running tree matching.
type CrossReference struct {
	// Target is the generated snapshot node. Never nil.
	Target Node
}

// NewCrossReference creates a CrossReference to target. A cross-reference is
// never created pointing at nothing: a nil target fails with a
// KindInvalidArgument Error.
func NewCrossReference(target Node) (CrossReference, error) {
	if target == nil {
		return CrossReference{}, newInvalidArgumentError("NewCrossReference", ErrNilCrossReferenceTarget)
	}
	return CrossReference{Target: target}, nil
}

// CrossReferenceKind is the annotation kind holding a differential node's
// CrossReference.
var CrossReferenceKind = Kind[CrossReference]{
	name: "cross-reference",
	get: func(r *record) (CrossReference, bool) {
		if r.crossRef == nil {
			return CrossReference{}, false
		}
		return *r.crossRef, true
	},
	set: func(r *record, v CrossReference) bool {
		replaced := r.crossRef != nil
		r.crossRef = &v
		return replaced
	},
	clear: func(r *record) {
		r.crossRef = nil
	},
}

// SetCrossReference records that diff produced the generated snapshot node
// snap. A nil diff is a silent no-op, so the call can sit at the end of an
// optional lookup chain. A nil snap violates the cross-reference construction
// invariant and fails with a KindInvalidArgument Error, even when diff is
// also nil.
func (s *Store) SetCrossReference(diff, snap Node) error {
	const op = "Store.SetCrossReference"
	ref, err := NewCrossReference(snap)
	if err != nil {
		return newInvalidArgumentError(op, ErrNilCrossReferenceTarget)
	}
	if diff == nil {
		return nil
	}
	Attach(s, diff, CrossReferenceKind, ref)
	if s.metrics != nil {
		s.metrics.crossReferences.Add(context.Background(), 1)
	}
	return nil
}

// CrossReference returns the snapshot node that diff produced. The second
// return value is false when diff is nil or carries no cross-reference.
func (s *Store) CrossReference(diff Node) (Node, bool) {
	ref, ok := Get(s, diff, CrossReferenceKind)
	if !ok {
		return nil, false
	}
	return ref.Target, true
}

// SetRootCrossReference resolves the first differential element of def and
// records that it produced the snapshot root snap. The whole call is a silent
// no-op when any link of the chain is absent: def itself, its differential
// component, or the differential's first element. Once the chain resolves,
// the call delegates to SetCrossReference, so a nil snap still fails with a
// KindInvalidArgument Error.
func (s *Store) SetRootCrossReference(def Definition, snap Node) error {
	diff := differentialRoot(def)
	if diff == nil {
		return nil
	}
	return s.SetCrossReference(diff, snap)
}

// RootCrossReference returns the snapshot node recorded for the first
// differential element of def. The second return value is false when any link
// of the resolution chain is absent or no cross-reference was recorded.
func (s *Store) RootCrossReference(def Definition) (Node, bool) {
	diff := differentialRoot(def)
	if diff == nil {
		return nil, false
	}
	return s.CrossReference(diff)
}

// differentialRoot walks the optional chain def -> differential -> first
// element, returning nil as soon as any link is absent.
func differentialRoot(def Definition) Node {
	if def == nil {
		return nil
	}
	d := def.Differential()
	if d == nil {
		return nil
	}
	elements := d.Elements()
	if len(elements) == 0 || elements[0] == nil {
		return nil
	}
	return elements[0]
}
