package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"phpfmt/internal/pass"
)

var refactorCmd = &cobra.Command{
	Use:   "refactor --from PATTERN --to PATTERN [flags] [path...]",
	Short: "Rewrite code matching a token pattern",
	Long: `Refactor replaces every occurrence of the --from token pattern with --to.
Whitespace and comments in the text are ignored while matching. A variable
in --from ($x) matches any variable and may be reused in --to. /*skipUntil:T*/
matches everything up to the text T, and /*skip*/ in --to copies it back.`,
	Example: `  phpfmt refactor --from 'sizeof($a)' --to 'count($a)' src/`,
	RunE:    runRefactor,
}

func init() {
	addFormatFlags(refactorCmd)
	refactorCmd.Flags().String("from", "", "pattern to search for")
	refactorCmd.Flags().String("to", "", "replacement pattern")
	_ = refactorCmd.MarkFlagRequired("from")
	_ = refactorCmd.MarkFlagRequired("to")
}

func runRefactor(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	from, err := cmd.Flags().GetString("from")
	if err != nil {
		return err
	}
	to, err := cmd.Flags().GetString("to")
	if err != nil {
		return err
	}
	if from == "" {
		return fmt.Errorf("--from must not be empty")
	}
	return formatWith(cmd, args, []pass.Spec{{Name: "Refactor", Variant: from + " => " + to}})
}
