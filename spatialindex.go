package bvh

// Indexer is the interface a host (a collision system, a picking routine,
// a visibility culler) programs against rather than the concrete *Tree,
// so callers can swap broad-phase implementations without touching call
// sites. Tree is the only implementation this module provides.
type Indexer interface {
	Insert(aabb AABB, userData interface{}) (Index, error)
	Remove(index Index)
	Move(index Index, aabb AABB)
	Get(index Index) Node
	FindOverlaps(query AABB, out []Index) []Index
	FindOverlapsLeaf(index Index, out []Index) []Index
	Raycast(x0, y0, x1, y1 float64, out []Index) []Index
	Quality() float64
	Empty() bool
	Clear()
}

var _ Indexer = (*Tree)(nil)
