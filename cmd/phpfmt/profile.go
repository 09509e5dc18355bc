package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"phpfmt/internal/prof"
)

func addProfileFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("cpu-profile", "", "write CPU profile to file")
	cmd.PersistentFlags().String("mem-profile", "", "write heap profile to file on exit")
	cmd.PersistentFlags().String("runtime-trace", "", "write Go runtime trace to file")
}

// setupProfiling inspects persistent profiling flags and enables the
// corresponding profilers. It returns a cleanup function that is safe to call
// multiple times.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	root := cmd.Root()

	cpuProfile, err := root.PersistentFlags().GetString("cpu-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	memProfile, err := root.PersistentFlags().GetString("mem-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	tracePath, err := root.PersistentFlags().GetString("runtime-trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}

	cfg := prof.Config{CPU: cpuProfile, Mem: memProfile, Trace: tracePath}
	if !cfg.Enabled() {
		return func() {}, nil
	}
	profiler, err := prof.Start(cfg)
	if err != nil {
		return nil, err
	}
	return func() {
		if err := profiler.Stop(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write profile: %v\n", err)
		}
	}, nil
}
