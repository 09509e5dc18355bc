package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"phpfmt/internal/pipeline"
)

const stepHelp = `  enter, n   apply the next pass
  p          print the text after this pass
  b          print the text before this pass
  c          run the remaining passes without stopping
  q          stop here and keep the text so far
`

// stepper pauses the pipeline after every pass and asks what to do.
type stepper struct {
	rl      *readline.Instance
	out     io.Writer
	running bool
}

func newStepper(out io.Writer) (*stepper, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "step> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "q",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("next"),
			readline.PcItem("print"),
			readline.PcItem("before"),
			readline.PcItem("continue"),
			readline.PcItem("quit"),
		),
		Stdout: out,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return &stepper{rl: rl, out: out}, nil
}

func (s *stepper) Close() error { return s.rl.Close() }

func (s *stepper) hook(info pipeline.StepInfo) error {
	fmt.Fprintln(s.out, describeStep(info))
	if s.running {
		return nil
	}
	for {
		line, err := s.rl.Readline()
		if err != nil { // io.EOF, readline.ErrInterrupt
			return pipeline.ErrStopSteps
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "", "n", "next":
			return nil
		case "p", "print":
			fmt.Fprint(s.out, info.After)
		case "b", "before":
			fmt.Fprint(s.out, info.Before)
		case "c", "continue":
			s.running = true
			return nil
		case "q", "quit":
			return pipeline.ErrStopSteps
		case "h", "help", "?":
			fmt.Fprint(s.out, stepHelp)
		default:
			fmt.Fprintf(s.out, "unknown command %q, try help\n", line)
		}
	}
}

func describeStep(info pipeline.StepInfo) string {
	head := color.New(color.Bold).Sprintf("[%d/%d] %s", info.Index+1, info.Total, info.Pass)
	switch {
	case info.Skipped:
		return head + " " + color.New(color.FgHiBlack).Sprint("skipped")
	case info.Changed():
		return fmt.Sprintf("%s %s (%d lines touched, %s)", head,
			color.New(color.FgGreen).Sprint("changed"), touchedLines(info.Before, info.After), info.Elapsed)
	default:
		return fmt.Sprintf("%s unchanged (%s)", head, info.Elapsed)
	}
}

// touchedLines counts lines that differ once the common prefix and suffix
// are stripped.
func touchedLines(before, after string) int {
	a := strings.Split(before, "\n")
	b := strings.Split(after, "\n")
	for len(a) > 0 && len(b) > 0 && a[0] == b[0] {
		a, b = a[1:], b[1:]
	}
	for len(a) > 0 && len(b) > 0 && a[len(a)-1] == b[len(b)-1] {
		a, b = a[:len(a)-1], b[:len(b)-1]
	}
	return max(len(a), len(b))
}
