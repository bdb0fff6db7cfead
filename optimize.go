package bvh

// Optimize performs one pass of the rotation-based rebalancer: it
// walks a random leaf-ward path from the root, then invokes the per-node
// rotator on every interior node on the way back up. It is the only
// operation that consults the tree's RNG (see WithRand); everything else
// is deterministic given its inputs.
func (t *Tree) Optimize() {
	if t.root == Invalid || t.nodes[t.root].isLeaf() {
		return
	}

	var path []Index
	n := t.root
	for !t.nodes[n].isLeaf() {
		path = append(path, n)
		if t.rng.Intn(2) == 0 {
			n = t.nodes[n].Child[0]
		} else {
			n = t.nodes[n].Child[1]
		}
	}

	for i := len(path) - 1; i >= 0; i-- {
		t.rotate(path[i])
	}
}

// rotate tries the two rotation candidates on each side of interior node n:
// first treating Child[0] as the node whose grandchildren might
// swap with Child[1], then the symmetric case with the roles reversed.
func (t *Tree) rotate(n Index) {
	if t.nodes[n].isLeaf() {
		return
	}
	t.tryRotateSide(n, 0)
	t.tryRotateSide(n, 1)
}

// tryRotateSide considers swapping one of the grandchildren under
// n.Child[side] with n.Child[1-side], applying whichever of the two
// candidate swaps strictly reduces n.Child[side]'s AABB area, if either
// does. n.AABB itself is left stale; the refit walk that invoked rotate
// retightens it one step later.
func (t *Tree) tryRotateSide(n Index, side int) {
	other := 1 - side
	c := t.nodes[n].Child[side]
	o := t.nodes[n].Child[other]

	if t.nodes[c].isLeaf() {
		return
	}

	x0, x1 := t.nodes[c].Child[0], t.nodes[c].Child[1]
	current := t.nodes[c].AABB.Area()

	// Rotation 1: swap x0 and o -> c's new children are (o, x1).
	area1 := t.nodes[o].AABB.UnionArea(t.nodes[x1].AABB)
	// Rotation 2: swap x1 and o -> c's new children are (x0, o).
	area2 := t.nodes[x0].AABB.UnionArea(t.nodes[o].AABB)

	switch {
	case area1 < current && area1 <= area2:
		t.nodes[c].Child[0] = o
		t.nodes[n].Child[other] = x0
		t.nodes[o].Parent = c
		t.nodes[x0].Parent = n
		t.nodes[c].AABB = t.nodes[o].AABB.Union(t.nodes[x1].AABB)
	case area2 < current:
		t.nodes[c].Child[1] = o
		t.nodes[n].Child[other] = x1
		t.nodes[o].Parent = c
		t.nodes[x1].Parent = n
		t.nodes[c].AABB = t.nodes[x0].AABB.Union(t.nodes[o].AABB)
	}
}

// Quality returns the sum of interior-node (excluding the root) AABB
// areas, the metric Optimize is meant to reduce. It is zero for an empty
// tree or a tree with a single leaf.
func (t *Tree) Quality() float64 {
	if t.root == Invalid {
		return 0
	}

	sum := 0.0
	stack := make([]Index, 0, 64)
	stack = append(stack, t.root)

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := &t.nodes[n]
		if node.isLeaf() {
			continue
		}
		if n != t.root {
			sum += node.AABB.Area()
		}
		stack = append(stack, node.Child[0], node.Child[1])
	}

	return sum
}
