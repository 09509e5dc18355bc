package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"phpfmt/internal/driver"
	"phpfmt/internal/observ"
	"phpfmt/internal/pass"
)

var formatCmd = &cobra.Command{
	Use:     "format [flags] [path...]",
	Aliases: []string{"fmt"},
	Short:   "Format PHP source files",
	Long:    `Format rewrites files in place. With no path, or "-", it reads stdin and writes stdout.`,
	RunE:    runFormat,
}

func init() {
	addFormatFlags(formatCmd)
	formatCmd.Flags().String("format", "text", "output format (text|json)")
	formatCmd.Flags().String("passes", "", "comma-separated pass list, e.g. ReindentBlocks,LeftWordWrap:100")
	formatCmd.Flags().Bool("step", false, "pause after every pass (single file only)")
	formatCmd.Flags().Bool("preserve-comments", false, "restore every comment's original text after formatting")
}

func runFormat(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	return formatWith(cmd, args, nil)
}

// formatWith runs the format flow; a non-nil specs replaces the resolved pass list.
func formatWith(cmd *cobra.Command, args []string, specs []pass.Spec) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	opts, err := formatOptions(cmd, cfg)
	if err != nil {
		return err
	}
	if specs != nil {
		opts.Specs = specs
	}

	outputFormat := "text"
	if f := cmd.Flags().Lookup("format"); f != nil {
		outputFormat = f.Value.String()
	}
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
	if opts.Stdout && outputFormat != "text" {
		return fmt.Errorf("--stdout is only supported with text output")
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}
	var timer *observ.Timer
	if timings {
		timer = observ.NewTimer()
		opts.Timer = timer
		defer func() { fmt.Fprint(cmd.ErrOrStderr(), timer.Summary()) }()
	}

	step := optionalBool(cmd, "step")
	if step {
		if len(args) != 1 || args[0] == "-" {
			return fmt.Errorf("--step needs exactly one file path")
		}
		stepper, err := newStepper(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer stepper.Close()
		opts.StepHook = stepper.hook
		opts.Jobs = 1
	}

	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		return formatStdin(cmd, opts, outputFormat)
	}

	var results []driver.FormatResult
	idx := -1
	if timer != nil {
		idx = timer.Begin("format")
	}
	uiMode, err := readUIModeFlag(cmd)
	if err != nil {
		return err
	}
	if !step && !quiet && !opts.Stdout && shouldUseTUI(uiMode) {
		results, err = runFormatWithUI(cmd.Context(), args, opts)
	} else {
		results, err = driver.FormatPaths(cmd.Context(), args, opts)
	}
	if timer != nil {
		timer.End(idx, fmt.Sprintf("%d files", len(results)))
	}
	if err != nil {
		return err
	}

	var hasErrors, hasChanges bool
	switch {
	case opts.Stdout:
		renderFormatStdout(cmd, results, &hasErrors)
	case outputFormat == "json":
		if err := renderFormatJSON(cmd.OutOrStdout(), results, opts.Check); err != nil {
			return err
		}
		for _, res := range results {
			hasErrors = hasErrors || res.Err != nil
			hasChanges = hasChanges || res.Changed
		}
	default:
		renderFormatText(cmd, results, opts.Check, quiet, &hasErrors, &hasChanges)
	}

	if hasErrors {
		return fmt.Errorf("failed to format some files")
	}
	if opts.Check && hasChanges {
		return fmt.Errorf("formatting changes required")
	}
	return nil
}

func formatStdin(cmd *cobra.Command, opts driver.FormatOptions, outputFormat string) error {
	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	res := driver.FormatSource(cmd.Context(), "<stdin>", src, opts)
	if outputFormat == "json" {
		if err := renderFormatJSON(cmd.OutOrStdout(), []driver.FormatResult{res}, opts.Check); err != nil {
			return err
		}
	}
	if res.Err != nil {
		return res.Err
	}
	if opts.Check {
		if res.Changed {
			return fmt.Errorf("formatting changes required")
		}
		return nil
	}
	if outputFormat == "text" {
		_, err = cmd.OutOrStdout().Write(res.Formatted)
	}
	return err
}

func renderFormatStdout(cmd *cobra.Command, results []driver.FormatResult, hasErrors *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(cmd.ErrOrStderr(), "format: %v\n", res.Err)
			continue
		}
		_, _ = cmd.OutOrStdout().Write(res.Formatted)
	}
}

func renderFormatText(cmd *cobra.Command, results []driver.FormatResult, check, quiet bool, hasErrors, hasChanges *bool) {
	changedColor := color.New(color.FgGreen)
	checkColor := color.New(color.FgYellow)
	errColor := color.New(color.FgRed, color.Bold)
	out := cmd.OutOrStdout()

	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", errColor.Sprint("error:"), res.Err)
			continue
		}
		if !res.Changed {
			continue
		}
		*hasChanges = true
		if quiet {
			continue
		}
		if check {
			fmt.Fprintf(out, "%s %s\n", checkColor.Sprint("would reformat"), res.Path)
		} else {
			fmt.Fprintf(out, "%s %s\n", changedColor.Sprint("reformatted"), res.Path)
		}
	}
}

func renderFormatJSON(w io.Writer, results []driver.FormatResult, check bool) error {
	type jsonResult struct {
		Path     string  `json:"path"`
		Changed  bool    `json:"changed"`
		Cached   bool    `json:"cached,omitempty"`
		Error    string  `json:"error,omitempty"`
		CheckRun bool    `json:"check"`
		Millis   float64 `json:"ms"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{
			Path:     res.Path,
			Changed:  res.Changed,
			Cached:   res.Cached,
			CheckRun: check,
			Millis:   float64(res.Elapsed.Microseconds()) / 1000,
		}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

// optionalBool reads a flag that only some commands define.
func optionalBool(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	return err == nil && v
}
