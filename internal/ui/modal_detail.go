package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"rosterview/internal/roster"
)

// detailDismissKeys close the detail modal. Backspace and left stand in for
// a platform back gesture.
var detailDismissKeys = []string{"esc", "backspace", "left", "h"}

// DetailModal shows every populated field of one duty.
type DetailModal struct {
	Record *roster.DutyRecord
	styles Styles
	width  int
}

// Ensure DetailModal implements View.
var _ View = (*DetailModal)(nil)

// NewDetailModal creates a detail modal for rec. A nil rec renders the
// fixed rows with empty values.
func NewDetailModal(rec *roster.DutyRecord, styles Styles) *DetailModal {
	return &DetailModal{Record: rec, styles: styles, width: defaultWidth}
}

// NewDetailOverlay wraps a detail modal with its dismiss keys.
func NewDetailOverlay(rec *roster.DutyRecord, styles Styles) Overlay {
	return Overlay{View: NewDetailModal(rec, styles), Dismiss: detailDismissKeys}
}

// Init implements View.
func (m *DetailModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *DetailModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
	}
	return m, nil
}

// View implements View.
func (m *DetailModal) View() string {
	inner := max(m.width-4, 20)
	header := m.styles.Header.Width(inner).Render("‹  Schedule Details")

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	for _, row := range roster.DetailRows(m.Record) {
		b.WriteString(m.styles.DetailLabel.Render(row.Label))
		b.WriteString(m.styles.DetailValue.Render(row.Value))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Hint.Render("esc/backspace: back"))
	return m.styles.ModalBox.Render(b.String())
}
