package cli

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/foldedspace/bvh2d"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the insert/remove/move stress driver",
	Long: `run is the headless descendant of the original random test
harness: each iteration picks insert, remove, or move, weighted so the
live leaf count stays within [live-min, live-max].`,
	RunE: runDriver,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func randomAABB(rng *rand.Rand) bvh.AABB {
	minx := rng.Float64() * 1024
	miny := rng.Float64() * 1024
	return bvh.NewAABB(minx, miny, minx+rng.Float64()*256, miny+rng.Float64()*256)
}

func jitterAABB(rng *rand.Rand, a bvh.AABB) bvh.AABB {
	dx := rng.Float64()*64 - 32
	dy := rng.Float64()*64 - 32
	return bvh.AABB{MinX: a.MinX + dx, MinY: a.MinY + dy, MaxX: a.MaxX + dx, MaxY: a.MaxY + dy}
}

func runDriver(cmd *cobra.Command, args []string) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	tree := bvh.New(cfg.Capacity, cfg.Growth, bvh.WithRand(rng))

	live := make([]bvh.Index, 0, cfg.LiveMax)
	start := time.Now()

	for i := 0; i < cfg.Iterations; i++ {
		switch rng.Intn(4) {
		case 0:
			if len(live) < cfg.LiveMax {
				idx, err := tree.Insert(randomAABB(rng), nil)
				if err != nil {
					return fmt.Errorf("insert at iteration %d: %w", i, err)
				}
				live = append(live, idx)
				break
			}
			fallthrough
		case 1:
			if len(live) > cfg.LiveMin {
				j := rng.Intn(len(live))
				tree.Remove(live[j])
				live[j] = live[len(live)-1]
				live = live[:len(live)-1]
			}
		case 2, 3:
			if len(live) > 0 {
				j := rng.Intn(len(live))
				current := tree.Get(live[j]).AABB
				tree.Move(live[j], jitterAABB(rng, current))
			}
		}

		if cfg.OptimizeEvery > 0 && i%cfg.OptimizeEvery == 0 {
			tree.Optimize()
		}

		if i > 0 && i%100_000 == 0 {
			slog.Info("driver progress",
				"iteration", i,
				"live", len(live),
				"quality", tree.Quality(),
				"elapsed", time.Since(start))
		}
	}

	slog.Info("driver complete",
		"seed", cfg.Seed,
		"iterations", cfg.Iterations,
		"live", len(live),
		"quality", tree.Quality(),
		"elapsed", time.Since(start))
	return nil
}
