package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rosterview/internal/logging"
	"rosterview/internal/roster"
	"rosterview/internal/theme"
)

// chromeHeight is the number of lines taken by the header and footer.
const chromeHeight = 3

// AppModel is the root model: one schedule screen plus the detail modal.
type AppModel struct {
	Mode       AppMode
	Load       LoadState
	Err        error              // set when Load is LoadFailed
	Selected   *roster.DutyRecord // last opened duty; survives modal dismissal
	Schedule   *ScheduleView
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Fetcher    roster.Fetcher
	Log        logging.Logger
	Styles     Styles

	seq     int
	cancel  context.CancelFunc
	spinner spinner.Model
	help    help.Model
	appKeys appKeys
	width   int
	height  int
}

// appKeys are the screen-level bindings shown in the footer.
type appKeys struct {
	Refresh key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model. The first fetch starts in Init.
func NewAppModel(f roster.Fetcher, log logging.Logger, p theme.Palette) *AppModel {
	if log == nil {
		log = logging.Nop()
	}
	styles := NewStyles(p)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	h := help.New()
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.Hint
	h.Styles.ShortSeparator = styles.Hint

	refresh := func() tea.Msg { return RefreshMsg{} }
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	// Refresh is not available behind the detail modal.
	scheduleOnly := []AppMode{ModeSchedule}
	reg.BindWithDescForMode("r", refresh, "Refresh", scheduleOnly)
	reg.BindWithDescForMode("ctrl+r", refresh, "Refresh", scheduleOnly)
	reg.BindWithDescForMode("SPC r", refresh, "Refresh roster", scheduleOnly)
	reg.BindWithDescForMode("SPC b", func() tea.Msg { return DismissModalMsg{} }, "Back", []AppMode{ModeDetail})

	return &AppModel{
		Mode:       ModeSchedule,
		Load:       LoadLoading,
		Schedule:   NewScheduleView(styles),
		KeyHandler: NewKeyHandler(reg),
		Fetcher:    f,
		Log:        log,
		Styles:     styles,
		spinner:    s,
		help:       h,
		appKeys: appKeys{
			Refresh: key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "refresh")),
			Back:    key.NewBinding(key.WithKeys(detailDismissKeys...), key.WithHelp("esc", "back")),
			Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		},
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// ModalVisible reports whether the detail modal is open.
func (m *AppModel) ModalVisible() bool {
	return m.Overlays.Len() > 0
}

// Seq returns the sequence number of the most recently started fetch.
func (m *AppModel) Seq() int {
	return m.seq
}

// Close cancels any fetch still in flight.
func (m *AppModel) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// startFetch supersedes any in-flight fetch and starts a new one.
// Only the result carrying the new sequence number will be applied.
func (m *AppModel) startFetch() tea.Cmd {
	m.Close()
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.seq++
	m.Load = LoadLoading
	m.Err = nil
	m.Log.Debug("roster fetch started", "seq", m.seq)
	return tea.Batch(m.spinner.Tick, fetchRosterCmd(ctx, m.Fetcher, m.seq))
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.startFetch()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.Schedule.SetSize(msg.Width, msg.Height-chromeHeight)
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	case RefreshMsg:
		return a, a.startFetch()
	case RosterLoadedMsg:
		return a.handleRosterLoaded(msg)
	case RosterFailedMsg:
		return a.handleRosterFailed(msg)
	case SelectDutyMsg:
		return a.handleSelectDuty(msg)
	case DismissModalMsg:
		return a.handleDismissModal()
	case spinner.TickMsg:
		if a.Load != LoadLoading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *appModelAdapter) handleRosterLoaded(msg RosterLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != a.seq {
		a.Log.Debug("dropping superseded roster", "seq", msg.Seq, "current", a.seq)
		return a, nil
	}
	a.Close()
	a.Load = LoadReady
	a.Err = nil
	a.Schedule.SetRoster(msg.Grouped)
	a.Log.Info("roster displayed", "seq", msg.Seq, "dates", msg.Grouped.Len(), "duties", msg.Grouped.Total())
	return a, nil
}

func (a *appModelAdapter) handleRosterFailed(msg RosterFailedMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != a.seq {
		a.Log.Debug("dropping superseded fetch error", "seq", msg.Seq, "current", a.seq, "error", msg.Err)
		return a, nil
	}
	a.Close()
	a.Load = LoadFailed
	a.Err = msg.Err
	a.Log.Error("roster unavailable", "seq", msg.Seq, "error", msg.Err)
	return a, nil
}

func (a *appModelAdapter) handleSelectDuty(msg SelectDutyMsg) (tea.Model, tea.Cmd) {
	rec := msg.Record
	a.Selected = &rec
	if a.Overlays.Len() > 0 {
		a.Overlays.Pop()
	}
	o := NewDetailOverlay(a.Selected, a.Styles)
	if a.width > 0 {
		o.View.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	}
	a.Overlays.Push(o)
	a.Mode = ModeDetail
	return a, o.View.Init()
}

// handleDismissModal hides the modal. The selected duty is kept.
func (a *appModelAdapter) handleDismissModal() (tea.Model, tea.Cmd) {
	a.Overlays.Pop()
	if a.Overlays.Len() == 0 {
		a.Mode = ModeSchedule
	}
	return a, nil
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if top, ok := a.Overlays.Peek(); ok && !a.KeyHandler.LeaderWaiting && top.IsDismissKey(msg.String()) {
		return a, func() tea.Msg { return DismissModalMsg{} }
	}
	if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
		return a, cmd
	}
	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}
	if a.Load != LoadReady {
		return a, nil
	}
	v, cmd := a.Schedule.Update(msg)
	if s, ok := v.(*ScheduleView); ok {
		a.Schedule = s
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	switch {
	case a.Overlays.Len() > 0:
		top, _ := a.Overlays.Peek()
		b.WriteString(top.View.View())
	case a.Load == LoadLoading:
		b.WriteString(a.loadingView())
	case a.Load == LoadFailed:
		b.WriteString(a.header("Schedule") + "\n")
		b.WriteString(a.errorView())
	default:
		b.WriteString(a.header("Schedule") + "\n")
		b.WriteString(a.Schedule.View())
	}
	b.WriteString("\n" + a.footer())
	if hint := RenderKeybindHelp(a.KeyHandler, a.Mode, a.Styles); hint != "" {
		b.WriteString("\n" + hint)
	}
	return b.String()
}

func (a *appModelAdapter) header(title string) string {
	w := a.width
	if w == 0 {
		w = defaultWidth
	}
	return a.Styles.Header.Width(w).Align(lipgloss.Center).Render(title)
}

func (a *appModelAdapter) loadingView() string {
	content := a.spinner.View() + " Loading roster…"
	if a.width == 0 || a.height == 0 {
		return content
	}
	return lipgloss.Place(a.width, max(a.height-chromeHeight, 1), lipgloss.Center, lipgloss.Center,
		a.Styles.Screen.Render(content),
		lipgloss.WithWhitespaceBackground(a.Styles.Screen.GetBackground()))
}

func (a *appModelAdapter) errorView() string {
	title := a.Styles.TitleWarning.Render("Could not load roster")
	kind := "error"
	var fe *roster.FetchError
	if errors.As(a.Err, &fe) {
		kind = fe.Kind.String()
	}
	details := kind
	if a.Err != nil {
		details += ": " + a.Err.Error()
	}
	content := title + "\n\n" + a.Styles.Details.Render(details) + "\n\n" + a.Styles.Hint.Render("r: retry  q: quit")
	return a.Styles.BoxDanger.Render(content)
}

func (a *appModelAdapter) footer() string {
	var bindings []key.Binding
	switch {
	case a.Overlays.Len() > 0:
		bindings = []key.Binding{a.appKeys.Back, a.appKeys.Quit}
	case a.Load == LoadReady:
		bindings = append(a.Schedule.keys.ShortHelp(), a.appKeys.Refresh, a.appKeys.Quit)
	default:
		bindings = []key.Binding{a.appKeys.Refresh, a.appKeys.Quit}
	}
	return a.help.ShortHelpView(bindings)
}
