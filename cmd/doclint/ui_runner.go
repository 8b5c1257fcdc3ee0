package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"doclint/internal/engine"
	"doclint/internal/ui"
)

type checkOutcome struct {
	results []engine.Result
	err     error
}

func runCheckWithUI(ctx context.Context, title string, paths []string, runner *engine.Runner) ([]engine.Result, error) {
	events := make(chan engine.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		r := *runner
		r.Sink = engine.ChannelSink{Ch: events}
		results, err := r.Check(ctx, paths)
		outcomeCh <- checkOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewCheckModel(title, paths, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
