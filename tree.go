package bvh

import (
	"log/slog"
	"math/rand"
)

// Tree is a dynamic 2D bounding-volume hierarchy: a binary tree of AABBs
// over a fixed-capacity arena of nodes, addressed by stable Index values.
//
// A Tree is not safe for concurrent use; the caller owns exclusion.
type Tree struct {
	nodes    []Node
	live     []bool
	freeList Index
	root     Index

	growth float64

	rng    *rand.Rand
	logger *slog.Logger

	// siblingHeap is scratch space reused by the best-sibling search so Insert
	// does not allocate on its hot path; see heap.go.
	siblingHeap siblingHeap
}

// Option configures a Tree at construction time.
type Option func(*Tree)

// WithRand sets the RNG used by Optimize's random walk. Supplying a seeded
// source makes Optimize deterministic across runs, which the host needs for
// reproducible benchmarking and property tests.
func WithRand(rng *rand.Rand) Option {
	return func(t *Tree) { t.rng = rng }
}

// WithLogger installs a structured logger used for the one event the core
// logs on its own: capacity exhaustion at Insert. The hot insert/remove/
// move/query paths never log; that would defeat the point of an amortized
// O(log N) broad-phase.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tree) { t.logger = logger }
}

// New constructs an empty Tree with a fixed node capacity and a fat-AABB
// growth factor applied to every leaf's stored bounds.
func New(capacity int, growth float64, opts ...Option) *Tree {
	if capacity <= 0 {
		capacity = 1
	}
	t := &Tree{
		nodes:  make([]Node, capacity),
		live:   make([]bool, capacity),
		growth: growth,
		rng:    rand.New(rand.NewSource(1)),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.clearArena()
	return t
}

// Capacity returns the fixed number of nodes the arena can hold.
func (t *Tree) Capacity() int {
	return len(t.nodes)
}

// Growth returns the fat-AABB growth factor leaves are expanded by.
func (t *Tree) Growth() float64 {
	return t.growth
}

// Empty reports whether the tree holds no live nodes.
func (t *Tree) Empty() bool {
	return t.root == Invalid
}

// Root returns the index of the root node. Undefined (returns Invalid) if
// the tree is empty.
func (t *Tree) Root() Index {
	return t.root
}

// Get returns a copy of the node stored at i. The caller must not pass an
// index that is not currently live; see validate_debug.go for the debug
// check.
func (t *Tree) Get(i Index) Node {
	checkLiveIndex(t, i)
	return t.nodes[i]
}

// UserData returns the opaque reference stored at Insert for the leaf at i.
func (t *Tree) UserData(i Index) interface{} {
	checkLiveIndex(t, i)
	return t.nodes[i].UserData
}

// AABB returns the node's stored AABB (the fat AABB, for a leaf).
func (t *Tree) AABB(i Index) AABB {
	checkLiveIndex(t, i)
	return t.nodes[i].AABB
}

// IsLeaf reports whether the node at i is a leaf.
func (t *Tree) IsLeaf(i Index) bool {
	checkLiveIndex(t, i)
	return t.nodes[i].isLeaf()
}

// Clear drops every node and resets the free list in O(capacity).
func (t *Tree) Clear() {
	t.clearArena()
}

func (t *Tree) clearArena() {
	n := len(t.nodes)
	for i := 0; i < n; i++ {
		t.nodes[i] = Node{Child: [2]Index{Index(i + 1), Invalid}, Parent: Invalid}
		t.live[i] = false
	}
	t.nodes[n-1].Child[0] = Invalid
	t.freeList = 0
	t.root = Invalid
}

// allocate pops the free-list head, returning ErrCapacityExceeded when the
// arena has no free node.
func (t *Tree) allocate() (Index, error) {
	if t.freeList == Invalid {
		if t.logger != nil {
			t.logger.Warn("bvh: arena exhausted", "capacity", len(t.nodes))
		}
		return Invalid, &Error{Kind: CapacityExceeded, Msg: "no free node in arena"}
	}
	i := t.freeList
	t.freeList = t.nodes[i].Child[0]
	t.nodes[i] = Node{Parent: Invalid, Child: [2]Index{Invalid, Invalid}}
	t.live[i] = true
	return i, nil
}

// free pushes i onto the free-list head, threaded through Child[0].
func (t *Tree) free(i Index) {
	t.nodes[i].Child[0] = t.freeList
	t.nodes[i].Child[1] = Invalid
	t.nodes[i].Parent = Invalid
	t.live[i] = false
	t.freeList = i
}
