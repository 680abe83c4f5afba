package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"rosterview/internal/roster"
	"rosterview/internal/ui/apptext"
	"rosterview/internal/ui/textutil"
)

const (
	defaultWidth  = 60
	defaultHeight = 20
)

// iconGlyphs maps duty icons to terminal glyphs.
var iconGlyphs = map[roster.Icon]string{
	roster.IconPlane:     "✈",
	roster.IconSuitcase:  "⌂",
	roster.IconPowerOff:  "⏻",
	roster.IconClipboard: "▣",
}

// IconGlyph returns the glyph for icon, falling back to the clipboard glyph.
func IconGlyph(icon roster.Icon) string {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return iconGlyphs[roster.IconClipboard]
}

// navKeys are the schedule's cursor bindings.
type navKeys struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	PageUp key.Binding
	PageDn key.Binding
	Open   key.Binding
}

func defaultNavKeys() navKeys {
	return navKeys{
		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		PageUp: key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDn: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	}
}

// scheduleRow is one selectable duty in display order.
type scheduleRow struct {
	Date   string
	Record roster.DutyRecord
}

// ScheduleView renders the grouped roster as date sections with a cursor.
type ScheduleView struct {
	styles   Styles
	keys     navKeys
	grouped  *roster.Grouped
	rows     []scheduleRow
	cursor   int
	viewport viewport.Model
}

// Ensure ScheduleView implements View.
var _ View = (*ScheduleView)(nil)

// NewScheduleView creates an empty schedule.
func NewScheduleView(styles Styles) *ScheduleView {
	return &ScheduleView{
		styles:   styles,
		keys:     defaultNavKeys(),
		viewport: viewport.New(defaultWidth, defaultHeight),
	}
}

// SetRoster replaces the displayed roster. The cursor stays on the same
// index when it still exists.
func (s *ScheduleView) SetRoster(g *roster.Grouped) {
	s.grouped = g
	s.rows = s.rows[:0]
	g.Each(func(date string, recs []roster.DutyRecord) {
		for _, rec := range recs {
			s.rows = append(s.rows, scheduleRow{Date: date, Record: rec})
		}
	})
	if s.cursor >= len(s.rows) {
		s.cursor = max(len(s.rows)-1, 0)
	}
	s.viewport.SetYOffset(0)
}

// Roster returns the displayed grouping.
func (s *ScheduleView) Roster() *roster.Grouped {
	return s.grouped
}

// Cursor returns the index of the highlighted duty in display order.
func (s *ScheduleView) Cursor() int {
	return s.cursor
}

// Selected returns the duty under the cursor.
func (s *ScheduleView) Selected() (roster.DutyRecord, bool) {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return roster.DutyRecord{}, false
	}
	return s.rows[s.cursor].Record, true
}

// SetSize sets the area available to the list.
func (s *ScheduleView) SetSize(width, height int) {
	s.viewport.Width = width
	s.viewport.Height = max(height, 1)
}

// Init implements View.
func (s *ScheduleView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (s *ScheduleView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || len(s.rows) == 0 {
		return s, nil
	}
	page := max(s.viewport.Height/2, 1)
	switch {
	case key.Matches(km, s.keys.Down):
		s.move(1)
	case key.Matches(km, s.keys.Up):
		s.move(-1)
	case key.Matches(km, s.keys.Top):
		s.cursor = 0
	case key.Matches(km, s.keys.Bottom):
		s.cursor = len(s.rows) - 1
	case key.Matches(km, s.keys.PageDn):
		s.move(page)
	case key.Matches(km, s.keys.PageUp):
		s.move(-page)
	case key.Matches(km, s.keys.Open):
		rec := s.rows[s.cursor].Record
		return s, func() tea.Msg { return SelectDutyMsg{Record: rec} }
	}
	return s, nil
}

func (s *ScheduleView) move(delta int) {
	s.cursor = min(max(s.cursor+delta, 0), len(s.rows)-1)
}

// View implements View.
func (s *ScheduleView) View() string {
	if s.grouped.Len() == 0 {
		return s.styles.Empty.Render("No data found")
	}
	content, cursorTop, cursorBottom := s.render()
	s.viewport.SetContent(content)
	s.scrollTo(cursorTop, cursorBottom)
	return s.viewport.View()
}

// scrollTo moves the viewport the least amount that shows lines top..bottom.
func (s *ScheduleView) scrollTo(top, bottom int) {
	h := s.viewport.Height
	switch {
	case top < s.viewport.YOffset:
		s.viewport.SetYOffset(top)
	case bottom >= s.viewport.YOffset+h:
		s.viewport.SetYOffset(bottom - h + 1)
	}
}

// render builds the full list and reports the line span of the cursor row,
// including the section header when the row is first in its section.
func (s *ScheduleView) render() (content string, cursorTop, cursorBottom int) {
	width := s.viewport.Width
	var lines []string
	idx := 0
	s.grouped.Each(func(date string, recs []roster.DutyRecord) {
		headerLine := len(lines)
		lines = append(lines, s.styles.SectionHeader.Width(width).Render(apptext.Render(date, apptext.Bold)))
		for i, rec := range recs {
			if idx == s.cursor {
				cursorTop = len(lines)
				if i == 0 {
					// Keep the date visible above the first duty of a section.
					cursorTop = headerLine
				}
			}
			lines = append(lines, s.renderRow(rec, idx == s.cursor, width)...)
			if idx == s.cursor {
				cursorBottom = len(lines) - 1
			}
			idx++
		}
	})
	return strings.Join(lines, "\n"), cursorTop, cursorBottom
}

// renderRow lays out one duty:
//
//	› ✈  AMS - MAD                 06:55 - 09:40
//	     MAD                          Match Crew
func (s *ScheduleView) renderRow(rec roster.DutyRecord, selected bool, width int) []string {
	d := roster.Present(rec)
	rowStyle := s.styles.Row
	marker := "  "
	if selected {
		rowStyle = s.styles.RowSelected
		marker = s.styles.Cursor.Render("›") + " "
	}
	inner := max(width-5, 10)

	primary := textutil.SpaceBetween(
		apptext.Render(d.Primary, apptext.Bold), d.Primary,
		apptext.Render(d.Times, apptext.Red, apptext.Small),
		inner,
	)
	lines := []string{
		rowStyle.Width(width).Render(marker + s.styles.Icon.Render(IconGlyph(d.Icon)) + "  " + primary),
	}

	if d.HasSecondary || d.MatchCrew {
		hint := ""
		if d.MatchCrew {
			hint = apptext.Render("Match Crew", apptext.Small, apptext.Grey)
		}
		secondary := textutil.SpaceBetween(
			apptext.Render(d.Secondary, apptext.Grey), d.Secondary,
			hint,
			inner,
		)
		lines = append(lines, rowStyle.Width(width).Render("     "+secondary))
	}
	return lines
}

// ShortHelp implements help.KeyMap.
func (k navKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open}
}

// FullHelp implements help.KeyMap.
func (k navKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Top, k.Bottom}, {k.PageUp, k.PageDn, k.Open}}
}
