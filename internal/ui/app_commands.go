package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"rosterview/internal/roster"
)

// fetchRosterCmd returns a command that fetches and groups the roster.
// The grouping runs off the UI goroutine so the swap on arrival is a single
// assignment.
func fetchRosterCmd(ctx context.Context, f roster.Fetcher, seq int) tea.Cmd {
	return func() tea.Msg {
		records, err := f.Fetch(ctx)
		if err != nil {
			return RosterFailedMsg{Seq: seq, Err: err}
		}
		return RosterLoadedMsg{Seq: seq, Grouped: roster.GroupByDate(records)}
	}
}
