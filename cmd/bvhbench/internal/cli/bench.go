package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/foldedspace/bvh2d"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure FindOverlaps and Raycast throughput on a filled tree",
	RunE:  runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	tree := bvh.New(cfg.Capacity, cfg.Growth, bvh.WithRand(rng))

	n := cfg.LiveMax
	if n > cfg.Capacity-1 {
		n = cfg.Capacity - 1
	}
	for i := 0; i < n; i++ {
		if _, err := tree.Insert(randomAABB(rng), nil); err != nil {
			return fmt.Errorf("seed insert: %w", err)
		}
	}
	tree.Optimize()

	const queries = 10_000
	out := make([]bvh.Index, 0, 64)

	start := time.Now()
	for i := 0; i < queries; i++ {
		out = tree.FindOverlaps(randomAABB(rng), out[:0])
	}
	overlapElapsed := time.Since(start)

	start = time.Now()
	for i := 0; i < queries; i++ {
		x0, y0 := rng.Float64()*1024, rng.Float64()*1024
		x1, y1 := rng.Float64()*1024, rng.Float64()*1024
		out = tree.Raycast(x0, y0, x1, y1, out[:0])
	}
	raycastElapsed := time.Since(start)

	fmt.Printf("leaves=%d quality=%.1f overlap=%v/query raycast=%v/query\n",
		n, tree.Quality(), overlapElapsed/queries, raycastElapsed/queries)
	return nil
}
