//go:build !bvhdebug

package bvh

// Release builds elide every self-check: calling Get/Remove/Move with a
// bad index, or letting the tree's invariants slip, is undefined behavior
// rather than a checked panic. Build with -tags bvhdebug during
// development and in CI to get the checks back.

func validate(*Tree, Index) {}

func checkLiveIndex(*Tree, Index) {}

func checkLiveLeaf(*Tree, Index) {}
