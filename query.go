package bvh

// FindOverlaps appends to out the index of every leaf whose stored (fat)
// AABB overlaps query, using an iterative depth-first traversal with an
// explicit stack. Output order is depth-first but otherwise
// unspecified.
func (t *Tree) FindOverlaps(query AABB, out []Index) []Index {
	if t.root == Invalid {
		return out
	}

	stack := make([]Index, 0, 64)
	stack = append(stack, t.root)

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := &t.nodes[n]
		if !node.AABB.Overlaps(query) {
			continue
		}
		if node.isLeaf() {
			out = append(out, n)
			continue
		}
		stack = append(stack, node.Child[0], node.Child[1])
	}

	return out
}

// FindOverlapsLeaf appends every leaf overlapping the fat AABB of the
// leaf at index, including the leaf itself; the caller is responsible for
// filtering out self-matches if it doesn't want them.
func (t *Tree) FindOverlapsLeaf(index Index, out []Index) []Index {
	checkLiveLeaf(t, index)
	return t.FindOverlaps(t.nodes[index].AABB, out)
}

// Raycast appends to out the index of every leaf whose fat AABB is
// intersected by the segment (x0,y0)-(x1,y1), using the same traversal as
// FindOverlaps but pruning with the slab test instead of AABB overlap.
func (t *Tree) Raycast(x0, y0, x1, y1 float64, out []Index) []Index {
	if t.root == Invalid {
		return out
	}

	p0 := Vector{x0, y0}
	p1 := Vector{x1, y1}

	stack := make([]Index, 0, 64)
	stack = append(stack, t.root)

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := &t.nodes[n]
		if !node.AABB.IntersectsSegment(p0, p1) {
			continue
		}
		if node.isLeaf() {
			out = append(out, n)
			continue
		}
		stack = append(stack, node.Child[0], node.Child[1])
	}

	return out
}
