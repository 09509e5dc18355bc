package main

import (
	"encoding/json"
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"phpfmt/internal/pass"
	"phpfmt/internal/passes"
)

var passesCmd = &cobra.Command{
	Use:   "passes",
	Short: "List the available passes",
	Args:  cobra.NoArgs,
	RunE:  runPasses,
}

func init() {
	passesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

// variantPasses cannot be built without a variant; their help is kept here.
var variantPasses = map[string]struct{ usage, desc string }{
	"LeftWordWrap": {"LeftWordWrap:<width>", "Wrap long lines to the given column."},
	"Lua":          {"Lua:<script.lua>", "Run a Lua script's format(tokens) function."},
	"Refactor":     {"Refactor:<from> => <to>", "Rewrite every match of a token pattern."},
}

type passInfo struct {
	Name        string `json:"name"`
	Usage       string `json:"usage"`
	Description string `json:"description"`
	Default     bool   `json:"default"`
}

func collectPasses(r *pass.Registry) []passInfo {
	names := r.Names()
	out := make([]passInfo, 0, len(names))
	for _, name := range names {
		info := passInfo{Name: name, Usage: name, Default: slices.Contains(passes.DefaultNames, name)}
		if v, ok := variantPasses[name]; ok {
			info.Usage, info.Description = v.usage, v.desc
		} else if p, err := r.Lookup(name, ""); err == nil {
			info.Description = pass.Describe(p)
		}
		out = append(out, info)
	}
	return out
}

func runPasses(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	infos := collectPasses(passes.DefaultRegistry())

	switch format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	case "pretty":
		mark := color.New(color.FgGreen).Sprint("*")
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, info := range infos {
			prefix := " "
			if info.Default {
				prefix = mark
			}
			fmt.Fprintf(tw, "%s %s\t%s\n", prefix, info.Usage, info.Description)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\n* runs by default")
		return nil
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}
