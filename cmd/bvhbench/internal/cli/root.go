// Package cli wires the bvhbench subcommands together. Configuration is
// layered flags > environment > bvhbench.yaml, following the same
// cobra+viper pattern Sumatoshi-tech/codefang uses for its own CLI, and
// the PersistentFlags-plus-package-level-struct pattern of
// nil0ka/imagedupfinder's cmd/root.go.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// config holds every tunable the bench driver and its subcommands read.
// Values are resolved once in initConfig and never mutated afterward.
type config struct {
	Capacity      int
	Growth        float64
	Seed          int64
	Iterations    int
	LiveMin       int
	LiveMax       int
	OptimizeEvery int
	LogLevel      string
}

var cfg config

var rootCmd = &cobra.Command{
	Use:   "bvhbench",
	Short: "Exercise and benchmark a 2D dynamic bounding-volume hierarchy",
	Long: `bvhbench drives a bvh.Tree with the same insert/remove/move mix the
original stress harness used, reports query throughput, and can print a
tree's structure or serve its live metrics.

Example usage:
  bvhbench run --iterations 1000000 --seed 7
  bvhbench bench --capacity 4096
  bvhbench demo`,
	PersistentPreRunE: initConfig,
}

// Execute runs the root command, logging any top-level error before
// returning it so main can set the process exit code.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("bvhbench failed", "err", err)
		return err
	}
	return nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int("capacity", 4096, "fixed arena capacity (node count)")
	flags.Float64("growth", 16.0, "fat-AABB growth factor, in world units")
	flags.Int64("seed", 1, "RNG seed, for reproducible runs")
	flags.Int("iterations", 1_000_000, "number of driver iterations for `run`")
	flags.Int("live-min", 64, "minimum live leaf count the driver maintains")
	flags.Int("live-max", 256, "maximum live leaf count the driver maintains")
	flags.Int("optimize-every", 64, "run one Optimize pass every N driver iterations (0 disables)")
	flags.String("log-level", "info", "slog level: debug, info, warn, error")

	for _, name := range []string{"capacity", "growth", "seed", "iterations", "live-min", "live-max", "optimize-every", "log-level"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %q: %v", name, err))
		}
	}
}

func initConfig(cmd *cobra.Command, args []string) error {
	viper.SetConfigName("bvhbench")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("BVHBENCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return fmt.Errorf("read config: %w", err)
		}
	}

	cfg = config{
		Capacity:      viper.GetInt("capacity"),
		Growth:        viper.GetFloat64("growth"),
		Seed:          viper.GetInt64("seed"),
		Iterations:    viper.GetInt("iterations"),
		LiveMin:       viper.GetInt("live-min"),
		LiveMax:       viper.GetInt("live-max"),
		OptimizeEvery: viper.GetInt("optimize-every"),
		LogLevel:      viper.GetString("log-level"),
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("parse log-level: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	return nil
}
