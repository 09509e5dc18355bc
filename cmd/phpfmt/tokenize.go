package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"phpfmt/internal/diagfmt"
	"phpfmt/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.php",
	Short: "Tokenize a PHP source file",
	Long:  `Tokenize breaks down a PHP source file into the tokens the passes operate on. Use - for stdin.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	filePath := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	// Выполняем токенизацию
	var result *driver.TokenizeResult
	if filePath == "-" {
		src, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("read stdin: %w", readErr)
		}
		result = driver.TokenizeSource("<stdin>", src, maxDiagnostics)
	} else {
		result, err = driver.Tokenize(filePath, maxDiagnostics)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}

	// Выводим диагностику в stderr, если есть
	if result.Bag.Len() > 0 {
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color: !color.NoColor && isTerminal(os.Stderr),
		})
	}

	// Выводим токены в выбранном формате
	if format == "json" {
		err = diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	} else {
		err = diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return errSilent
	}
	return nil
}
