package ui

import "rosterview/internal/roster"

// RefreshMsg starts a new roster fetch (r, ctrl+r, SPC r).
type RefreshMsg struct{}

// RosterLoadedMsg carries a successful fetch, already grouped by date.
// Seq identifies the fetch; results from superseded fetches are dropped.
type RosterLoadedMsg struct {
	Seq     int
	Grouped *roster.Grouped
}

// RosterFailedMsg carries a failed fetch.
type RosterFailedMsg struct {
	Seq int
	Err error
}

// SelectDutyMsg is sent when the user opens a duty row (Enter).
type SelectDutyMsg struct {
	Record roster.DutyRecord
}

// DismissModalMsg closes the topmost modal (Esc, Backspace, Left).
type DismissModalMsg struct{}
