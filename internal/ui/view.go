package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition: a screen region or modal with its own
// Elm-style Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
