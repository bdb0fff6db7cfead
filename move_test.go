package bvh

import "testing"

func TestTree_MoveHysteresisIsANoOp(t *testing.T) {
	tree := New(8, 16)
	a, _ := tree.Insert(NewAABB(0, 0, 10, 10), nil)
	_, _ = tree.Insert(NewAABB(100, 100, 110, 110), nil)

	before := tree.Get(a)
	rootBefore := tree.Get(tree.Root())

	// A tiny nudge that stays inside the fat AABB must change nothing.
	tree.Move(a, NewAABB(1, 1, 11, 11))

	after := tree.Get(a)
	rootAfter := tree.Get(tree.Root())

	if before.AABB != after.AABB {
		t.Fatalf("leaf AABB changed under hysteresis: before=%+v after=%+v", before.AABB, after.AABB)
	}
	if before.Parent != after.Parent {
		t.Fatal("leaf topology changed under hysteresis")
	}
	if rootBefore.AABB != rootAfter.AABB {
		t.Fatal("root AABB changed under hysteresis")
	}
}

func TestTree_MoveBeyondFatAABBReinserts(t *testing.T) {
	tree := New(8, 4)
	a, _ := tree.Insert(NewAABB(0, 0, 10, 10), nil)
	_, _ = tree.Insert(NewAABB(100, 100, 110, 110), nil)

	fatBefore := tree.AABB(a)
	tree.Move(a, NewAABB(500, 500, 510, 510))
	fatAfter := tree.AABB(a)

	if fatBefore == fatAfter {
		t.Fatal("expected fat AABB to change after moving well outside it")
	}
	want := NewAABB(500, 500, 510, 510).Grow(4)
	if fatAfter != want {
		t.Fatalf("fat AABB after move = %+v, want %+v", fatAfter, want)
	}
	if err := tree.Validate(); err != nil {
		t.Fatalf("tree invalid after move: %v", err)
	}
}
