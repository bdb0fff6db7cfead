package bvh

// Remove frees the leaf at index, collapsing its former parent out of the
// tree and refitting ancestors. index must refer to a currently live leaf;
// violating that is a programmer error and is only checked in debug
// builds.
func (t *Tree) Remove(index Index) {
	checkLiveLeaf(t, index)
	t.unlink(index)
	t.free(index)
	validate(t, t.root)
}

// unlink removes a leaf's topological presence from the tree without
// freeing its node. The sibling is always dereferenced as a node index
// (p0.sibling(leaf)), never left as a bare child-slot number: using the
// slot number by mistake would splice the wrong node into the parent's
// place.
func (t *Tree) unlink(leaf Index) {
	if leaf == t.root {
		// Case A: leaf was the sole node in the tree.
		t.root = Invalid
		return
	}

	p0 := t.nodes[leaf].Parent

	if t.nodes[p0].Parent == Invalid {
		// Case B: p0 is the root. Promote leaf's sibling into the root.
		sib := t.nodes[p0].sibling(leaf)
		t.root = sib
		t.nodes[sib].Parent = Invalid
		t.free(p0)
		return
	}

	// Case C: general case. Promote leaf's sibling into p0's old slot
	// under p1, then refit from p1 upward. The removal path does not
	// rotate; only insertion does.
	p1 := t.nodes[p0].Parent
	sib := t.nodes[p0].sibling(leaf)

	if t.nodes[p1].Child[0] == p0 {
		t.nodes[p1].Child[0] = sib
	} else {
		t.nodes[p1].Child[1] = sib
	}
	t.nodes[sib].Parent = p1

	t.free(p0)
	t.refitNoRotate(p1)
}

// refitNoRotate is the removal-path refit: it recomputes ancestor AABBs
// without invoking the rotator. Rotation only runs on the insertion path.
func (t *Tree) refitNoRotate(start Index) {
	n := start
	for n != Invalid {
		a, b := t.nodes[n].Child[0], t.nodes[n].Child[1]
		t.nodes[n].AABB = t.nodes[a].AABB.Union(t.nodes[b].AABB)
		n = t.nodes[n].Parent
	}
}
