package bvh

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestTree_StressDriverMaintainsInvariants runs a seeded random mix of
// insert/remove/move mutations against a bounded live-set window, with
// a full Validate() after every single mutation.
func TestTree_StressDriverMaintainsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	tree := New(512, 16, WithRand(rng))

	const (
		iterations = 20_000
		liveMin    = 64
		liveMax    = 256
	)

	live := make([]Index, 0, liveMax)
	randAABB := func() AABB {
		x := rng.Float64() * 1024
		y := rng.Float64() * 1024
		return NewAABB(x, y, x+rng.Float64()*256, y+rng.Float64()*256)
	}

	for i := 0; i < iterations; i++ {
		switch rng.Intn(4) {
		case 0:
			if len(live) < liveMax {
				idx, err := tree.Insert(randAABB(), i)
				require.NoError(t, err)
				live = append(live, idx)
				break
			}
			fallthrough
		case 1:
			if len(live) > liveMin {
				j := rng.Intn(len(live))
				tree.Remove(live[j])
				live[j] = live[len(live)-1]
				live = live[:len(live)-1]
			}
		case 2, 3:
			if len(live) > 0 {
				j := rng.Intn(len(live))
				current := tree.AABB(live[j])
				dx := rng.Float64()*64 - 32
				dy := rng.Float64()*64 - 32
				tree.Move(live[j], AABB{current.MinX + dx, current.MinY + dy, current.MaxX + dx, current.MaxY + dy})
			}
		}

		require.NoError(t, tree.Validate(), "invariants broken at iteration %d (live=%d)", i, len(live))
		require.LessOrEqual(t, len(live), liveMax)
		require.GreaterOrEqual(t, tree.Quality(), 0.0)
	}

	if len(live) > 1 {
		require.Greater(t, tree.Quality(), 0.0)
	}
}

// TestTree_QualityZeroForOneLeafPositiveForThree checks that Quality() is
// zero for an empty tree or a tree with a single leaf, and positive once
// three leaves put an interior node below the root (Quality excludes the
// root, which is the only interior node of a two-leaf tree).
func TestTree_QualityZeroForOneLeafPositiveForThree(t *testing.T) {
	tree := New(8, 16)
	require.Equal(t, 0.0, tree.Quality())

	a, err := tree.Insert(NewAABB(0, 0, 1, 1), nil)
	require.NoError(t, err)
	require.Equal(t, 0.0, tree.Quality())

	b, err := tree.Insert(NewAABB(5, 5, 6, 6), nil)
	require.NoError(t, err)
	_, err = tree.Insert(NewAABB(50, 50, 51, 51), nil)
	require.NoError(t, err)
	require.Greater(t, tree.Quality(), 0.0)

	tree.Remove(a)
	tree.Remove(b)
	require.Equal(t, 0.0, tree.Quality()) // one leaf remains and is now the root itself
}
