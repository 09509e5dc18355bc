package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"phpfmt/internal/config"
	"phpfmt/internal/driver"
	"phpfmt/internal/pass"
	"phpfmt/internal/passes"
)

// addFormatFlags registers the flags format and refactor share.
func addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("check", false, "report files that would change and exit non-zero")
	cmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	cmd.Flags().String("config", "", "config file (default: nearest .phpfmt.toml or .phpfmt.yaml)")
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	cmd.Flags().Bool("no-cache", false, "disable the on-disk result cache")
	cmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
}

// loadConfig honours --config, else discovers a file above the first path.
func loadConfig(cmd *cobra.Command, paths []string) (*config.Config, error) {
	explicit, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if explicit != "" {
		return config.Load(explicit)
	}

	start := "."
	if len(paths) > 0 && paths[0] != "-" {
		start = paths[0]
		if filepath.Ext(start) != "" {
			start = filepath.Dir(start)
		}
	}
	cfg, err := config.Discover(start)
	if errors.Is(err, config.ErrNotFound) {
		return config.Default(), nil
	}
	return cfg, err
}

// parsePassList splits "A,B:variant" into specs. Variants may not contain
// commas; use the config file for those.
func parsePassList(s string) []pass.Spec {
	var specs []pass.Spec
	for _, item := range strings.Split(s, ",") {
		if strings.TrimSpace(item) == "" {
			continue
		}
		specs = append(specs, pass.ParseSpec(item))
	}
	return specs
}

// formatOptions merges the config with command flags; flags win.
func formatOptions(cmd *cobra.Command, cfg *config.Config) (driver.FormatOptions, error) {
	opts := driver.FormatOptions{
		Exclude:          cfg.Format.Exclude,
		ExcludeBase:      cfg.Dir(),
		Jobs:             cfg.Format.Jobs,
		PreserveComments: cfg.Format.PreserveComments,
	}
	var err error
	if opts.Check, err = cmd.Flags().GetBool("check"); err != nil {
		return opts, err
	}
	if opts.Stdout, err = cmd.Flags().GetBool("stdout"); err != nil {
		return opts, err
	}
	if opts.Check && opts.Stdout {
		return opts, fmt.Errorf("--stdout cannot be used with --check")
	}
	if cmd.Flags().Changed("jobs") {
		if opts.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return opts, err
		}
	}
	if f := cmd.Flags().Lookup("preserve-comments"); f != nil && f.Changed {
		if opts.PreserveComments, err = cmd.Flags().GetBool("preserve-comments"); err != nil {
			return opts, err
		}
	}

	opts.Specs = cfg.PassSpecs(passes.DefaultNames)
	if f := cmd.Flags().Lookup("passes"); f != nil && f.Changed {
		rulesOnly := *cfg
		rulesOnly.Format.Passes = nil
		opts.Specs = append(parsePassList(f.Value.String()), rulesOnly.PassSpecs(nil)...)
	}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return opts, err
	}
	if !noCache && cfg.CacheEnabled() {
		dir, err := cfg.CacheDir()
		if err == nil {
			opts.Cache, err = driver.OpenDiskCache(dir)
		}
		if err != nil {
			warnf(cmd, "cache disabled: %v", err)
		}
	}
	return opts, nil
}

func warnf(cmd *cobra.Command, format string, args ...any) {
	if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); quiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "phpfmt: "+format+"\n", args...)
}
