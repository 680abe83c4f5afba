package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient hint bar shown after SPC.
// Returns "" when the handler is idle or nothing is bound below the prefix.
func RenderKeybindHelp(h *KeyHandler, mode AppMode, s Styles) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	currentSeq := strings.Join(h.Buffer, " ")
	hints := h.Registry.LeaderHints(currentSeq, mode)
	if len(hints) == 0 {
		return ""
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	bindings = append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))

	hm := help.New()
	hm.Styles.ShortKey = s.HelpKey
	hm.Styles.ShortDesc = s.Hint
	hm.Styles.ShortSeparator = s.Hint

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.accent).
		Padding(0, 1).
		MarginTop(1)

	return boxStyle.Render(s.Hint.Render(currentSeq) + " " + hm.ShortHelpView(bindings))
}
