package bvh

// Move updates a leaf's geometry. If the leaf's current fat AABB already
// contains newAABB, this is a no-op: the hysteresis exists to absorb small
// jitter without the cost of a re-insertion. When the leaf has moved out
// of its fat bounds, it is unlinked, grown by the configured growth
// factor, and re-inserted with the normal best-sibling rules.
func (t *Tree) Move(index Index, newAABB AABB) {
	checkLiveLeaf(t, index)

	if t.nodes[index].AABB.Contains(newAABB) {
		return
	}

	t.unlink(index)
	t.nodes[index].AABB = newAABB.Grow(t.growth)
	t.nodes[index].Parent = Invalid
	// unlink always frees at least as many nodes as insertLeaf can need to
	// allocate here, so this can't fail with ErrCapacityExceeded.
	if err := t.insertLeaf(index); err != nil {
		panic(err)
	}

	validate(t, t.root)
}
