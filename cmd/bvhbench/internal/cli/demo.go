package cli

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	"github.com/foldedspace/bvh2d"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print a small tree's structure as indented ASCII",
	Long: `demo is the headless, text-mode descendant of the original SDL
rendering demo: it builds a handful of leaves and prints the resulting
tree shape instead of drawing it to a window.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	tree := bvh.New(cfg.Capacity, cfg.Growth, bvh.WithRand(rng))

	for i := 0; i < 16; i++ {
		if _, err := tree.Insert(randomAABB(rng), i); err != nil {
			return err
		}
	}
	tree.Optimize()

	if tree.Empty() {
		fmt.Println("(empty)")
		return nil
	}
	printNode(tree, tree.Root(), 0)
	return nil
}

func printNode(tree *bvh.Tree, i bvh.Index, depth int) {
	node := tree.Get(i)
	indent := strings.Repeat("  ", depth)
	if tree.IsLeaf(i) {
		fmt.Printf("%sleaf#%d aabb=%+v data=%v\n", indent, i, node.AABB, node.UserData)
		return
	}
	fmt.Printf("%snode#%d aabb=%+v\n", indent, i, node.AABB)
	printNode(tree, node.Child[0], depth+1)
	printNode(tree, node.Child[1], depth+1)
}
