package bvh

import "testing"

func TestVector_Sub(t *testing.T) {
	a := Vector{5, 7}
	b := Vector{2, 3}
	got := a.Sub(b)
	if got != (Vector{3, 4}) {
		t.Errorf("Sub() = %v, want {3 4}", got)
	}
}

func TestVector_Mult(t *testing.T) {
	v := Vector{2, -3}
	got := v.Mult(2.5)
	if got != (Vector{5, -7.5}) {
		t.Errorf("Mult() = %v, want {5 -7.5}", got)
	}
}
