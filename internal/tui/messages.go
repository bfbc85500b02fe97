package tui

import (
	"context"

	"flowdeck/internal/flow"
	"flowdeck/internal/flowservice"
	tea "github.com/charmbracelet/bubbletea"
)

// namesLoadedMsg reports a successful instance-name list fetch for one
// load cycle. gen identifies the cycle so completions from a superseded
// reload are discarded.
type namesLoadedMsg struct {
	gen   int
	names []string
}

// namesFailedMsg reports a failed instance-name list fetch.
type namesFailedMsg struct {
	gen int
	err error
}

// detailLoadedMsg reports one completed detail fetch.
type detailLoadedMsg struct {
	gen      int
	instance flow.Instance
}

// detailFailedMsg reports one failed detail fetch.
type detailFailedMsg struct {
	gen  int
	name string
	err  error
}

// deleteResultMsg reports the outcome of a confirmed delete request.
// Deletions are not generation-scoped: a delete confirmed before a reload
// still reconciles against whatever the reload brought back.
type deleteResultMsg struct {
	name string
	err  error
}

// Commands

// loadNames returns a command that fetches the instance-name list.
func loadNames(ctx context.Context, svc flowservice.Service, gen int) tea.Cmd {
	return func() tea.Msg {
		names, err := svc.ListInstanceNames(ctx)
		if err != nil {
			return namesFailedMsg{gen: gen, err: err}
		}
		return namesLoadedMsg{gen: gen, names: names}
	}
}

// fetchDetail returns a command that fetches one instance's details.
// The load orchestration batches one of these per name with no concurrency
// cap; completions arrive in whatever order the service answers.
func fetchDetail(ctx context.Context, svc flowservice.Service, gen int, name string) tea.Cmd {
	return func() tea.Msg {
		inst, err := svc.GetInstanceDetails(ctx, name)
		if err != nil {
			return detailFailedMsg{gen: gen, name: name, err: err}
		}
		return detailLoadedMsg{gen: gen, instance: inst}
	}
}

// deleteInstance returns a command that issues the delete request for a
// confirmed deletion.
func deleteInstance(ctx context.Context, svc flowservice.Service, name string) tea.Cmd {
	return func() tea.Msg {
		return deleteResultMsg{name: name, err: svc.DeleteInstance(ctx, name)}
	}
}
