package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jan-chat/internal/domain/history"
	"jan-chat/internal/domain/message"
	"jan-chat/internal/domain/navigator"
)

const (
	headerHeight = 2
	inputHeight  = 3
	footerHeight = 2
)

var panelLabels = map[navigator.Panel]string{
	navigator.PanelLeft:  "History",
	navigator.PanelChat:  "Chat",
	navigator.PanelRight: "Settings",
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.app.Navigator().ActivePanel() {
	case navigator.PanelLeft:
		body = m.historyView()
	case navigator.PanelRight:
		body = m.settingsView()
	default:
		body = m.chatView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), body, m.footerView())
}

func (m *Model) headerView() string {
	nav := m.app.Navigator()
	tabs := make([]string, 0, navigator.PanelCount)
	for i := 0; i < navigator.PanelCount; i++ {
		label := panelLabels[navigator.Panel(i)]
		if i == nav.Active() {
			tabs = append(tabs, m.styles.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}
	title := m.styles.Title.Render(m.app.Session().Title())
	user := m.styles.Muted.Render("@" + m.app.UserKey())
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "  " + title + "  " + user + "\n"
}

func (m *Model) chatView() string {
	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if files := m.app.PendingAttachments(); len(files) > 0 {
		names := make([]string, 0, len(files))
		for _, f := range files {
			names = append(names, f.Filename)
		}
		b.WriteString(m.styles.Attachment.Render("attached: "+strings.Join(names, ", ")) + "\n")
	}
	if m.app.Awaiting() {
		b.WriteString(m.styles.AssistantLabel.Render("Jan") + " " + m.spin.View() + m.styles.Muted.Render("thinking") + "\n")
	}
	b.WriteString(m.input.View())
	return b.String()
}

// renderTranscript draws the session messages. System messages are not shown.
func (m *Model) renderTranscript() string {
	width := max(m.viewport.Width-2, 20)
	var blocks []string

	for _, msg := range m.app.Session().Messages() {
		var label string
		switch msg.Role {
		case message.RoleUser:
			label = m.styles.UserLabel.Render("You")
		case message.RoleAssistant:
			label = m.styles.AssistantLabel.Render("Jan")
		default:
			continue
		}
		lines := []string{label}
		for _, frag := range message.Render(msg) {
			lines = append(lines, m.renderFragment(frag, width))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	if len(blocks) == 0 {
		return m.styles.Muted.Render("Start a conversation below. Type /help for commands.")
	}
	return strings.Join(blocks, "\n\n")
}

func (m *Model) renderFragment(frag message.Fragment, width int) string {
	switch frag.Kind {
	case message.FragmentReference:
		return m.styles.Reference.Width(width).Render(fmt.Sprintf("[%d] %s", frag.Index, frag.Text))
	case message.FragmentAttachment:
		return m.styles.Attachment.Render(fmt.Sprintf("[%s] %s %s", frag.FileExt, frag.Text, frag.URL))
	case message.FragmentDownload:
		return m.styles.Download.Render("Download " + frag.Text)
	}
	return m.styles.Text.Width(width).Render(frag.Text)
}

func (m *Model) historyView() string {
	chats := m.app.History()
	var b strings.Builder

	if len(chats) == 0 {
		b.WriteString(m.styles.Muted.Render("No saved chats yet. Finished chats are saved when you start a new one."))
	}
	for i, c := range chats {
		line := fmt.Sprintf("%-40s %d messages", c.DisplayTitle(), len(c.Messages))
		if i == m.selected {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString("  " + m.styles.Text.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.keyHints("enter", "open", "d", "delete", "a", "archive all", "D", "delete all", "r", "refresh"))
	return m.styles.Panel.Width(max(m.width-2, 20)).Render(b.String())
}

func (m *Model) settingsView() string {
	prefs := m.app.Preferences()
	valueOr := func(v string) string {
		if strings.TrimSpace(v) == "" {
			return m.styles.Muted.Render("(not set)")
		}
		return m.styles.Text.Render(v)
	}

	rows := []string{
		m.styles.Title.Render("AI persona"),
		"Mood:         " + valueOr(prefs.AIMood),
		"Instructions: " + valueOr(prefs.AIInstructions),
		"",
		m.styles.Title.Render("Appearance"),
		"Theme:        " + m.styles.Text.Render(string(m.app.Theme().Theme())),
		"",
		m.styles.Muted.Render("Change these from the chat panel with /mood, /instructions and /theme."),
		m.styles.Muted.Render("Reach the team with /contact <email> <message>."),
		"",
		m.keyHints("ctrl+t", "toggle theme"),
	}
	return m.styles.Panel.Width(max(m.width-2, 20)).Render(strings.Join(rows, "\n"))
}

func (m *Model) footerView() string {
	var notices []string
	for _, n := range m.notices {
		if n.Level == history.LevelError {
			notices = append(notices, m.styles.Error.Render(n.Text))
		} else {
			notices = append(notices, m.styles.Info.Render(n.Text))
		}
	}
	status := strings.Join(notices, m.styles.Muted.Render(" | "))
	hints := m.keyHints("tab", "panels", "ctrl+n", "new chat", "ctrl+t", "theme", "ctrl+c", "quit")
	return status + "\n" + hints
}

func (m *Model) keyHints(pairs ...string) string {
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, m.styles.Key.Render(pairs[i])+" "+m.styles.Muted.Render(pairs[i+1]))
	}
	return strings.Join(parts, "  ")
}
