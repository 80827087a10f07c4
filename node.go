package snapmeta

// Node is the contract a caller's tree nodes must satisfy to carry
// annotations. Implementations must be comparable — annotations are keyed by
// object identity, so pointer receivers are the expected shape.
type Node interface {
	// ChildNodes returns the node's children in order. The returned slice
	// must never contain nil entries; recursive operations rely on this.
	ChildNodes() []Node
}

// Definition is the structure-definition shaped root consumed by the
// root-level cross-reference accessors. Its differential component is
// optional.
type Definition interface {
	// Differential returns the definition's differential component, or nil
	// when the definition has none.
	Differential() Differential
}

// Differential is the "only the overrides" side of a definition: an ordered
// sequence of elements whose first entry, when present, is the differential
// root node.
type Differential interface {
	Elements() []Node
}
