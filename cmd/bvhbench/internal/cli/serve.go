package cli

import (
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/foldedspace/bvh2d"
	"github.com/foldedspace/bvh2d/bvhmetrics"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the stress driver in the background and serve its metrics over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":9090", "address to serve /metrics on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	tree := bvh.New(cfg.Capacity, cfg.Growth, bvh.WithRand(rng))
	recorder := bvhmetrics.NewRecorder(tree, "broadphase")

	go driveForever(tree, recorder, rng)

	mux := http.NewServeMux()
	mux.Handle("/metrics", recorder.Handler())
	slog.Info("serving metrics", "addr", serveAddr)
	return fmt.Errorf("serve: %w", http.ListenAndServe(serveAddr, mux))
}

// driveForever runs the same insert/remove/move mix as `run`, unbounded,
// so the served metrics move over time. It does not run the periodic
// Optimize passes that `run` does.
func driveForever(tree *bvh.Tree, recorder *bvhmetrics.Recorder, rng *rand.Rand) {
	live := make([]bvh.Index, 0, cfg.LiveMax)
	for {
		switch rng.Intn(4) {
		case 0:
			if len(live) < cfg.LiveMax {
				idx, err := tree.Insert(randomAABB(rng), nil)
				if err == nil {
					live = append(live, idx)
					recorder.ObserveInsert()
				}
				break
			}
			fallthrough
		case 1:
			if len(live) > cfg.LiveMin {
				j := rng.Intn(len(live))
				tree.Remove(live[j])
				live[j] = live[len(live)-1]
				live = live[:len(live)-1]
				recorder.ObserveRemove()
			}
		case 2, 3:
			if len(live) > 0 {
				j := rng.Intn(len(live))
				current := tree.Get(live[j]).AABB
				tree.Move(live[j], jitterAABB(rng, current))
				recorder.ObserveMove()
			}
		}
		time.Sleep(time.Millisecond)
	}
}
