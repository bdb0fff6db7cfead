//go:build bvhdebug

package bvh

// This file is compiled only with -tags bvhdebug. It gives the full
// invariant checks and index-liveness checks at zero cost to a release
// binary, which simply doesn't compile this file in.

// validate panics with the *Error Tree.Validate() returns, if any. It is
// wired into Insert/Remove/Move so every public mutation self-checks in a
// debug build.
func validate(t *Tree, root Index) {
	if err := t.Validate(); err != nil {
		panic(err)
	}
}

// checkLiveIndex panics with *Error{Kind: InvalidIndex} unless i addresses
// a currently-allocated node.
func checkLiveIndex(t *Tree, i Index) {
	if i < 0 || int(i) >= len(t.nodes) || !t.live[i] {
		panic(&Error{Kind: InvalidIndex, Msg: "index out of range or not live"})
	}
}

// checkLiveLeaf panics with *Error{Kind: InvalidIndex} unless i addresses
// a currently-allocated leaf.
func checkLiveLeaf(t *Tree, i Index) {
	checkLiveIndex(t, i)
	if !t.nodes[i].isLeaf() {
		panic(&Error{Kind: InvalidIndex, Msg: "index does not address a leaf"})
	}
}
