package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"phpfmt/internal/driver"
	"phpfmt/internal/ui"
)

type formatOutcome struct {
	results []driver.FormatResult
	err     error
}

func runFormatWithUI(ctx context.Context, paths []string, opts driver.FormatOptions) ([]driver.FormatResult, error) {
	files, err := driver.CollectFiles(ctx, paths, opts.Exclude, opts.ExcludeBase)
	if err != nil {
		return nil, err
	}
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan formatOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.FormatPaths(ctx, paths, optsCopy)
		outcomeCh <- formatOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("formatting", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	if uiErr != nil {
		// keep the workers from blocking on a channel nobody reads
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
