// Command bvhbench drives a bvh.Tree the way the original random test
// harness did, minus the SDL window: it is the headless, scriptable
// descendant of that driver, not a physics demo.
package main

import (
	"os"

	"github.com/foldedspace/bvh2d/cmd/bvhbench/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
