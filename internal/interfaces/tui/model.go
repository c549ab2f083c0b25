// Package tui is the terminal front end of the chat client. It draws the three
// panels (history, chat, settings) and turns key presses into chatapp calls.
package tui

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"jan-chat/internal/application/chatapp"
	"jan-chat/internal/domain/history"
	"jan-chat/internal/domain/navigator"
	"jan-chat/internal/domain/usersettings"
)

const maxNotices = 3

type jobDoneMsg struct {
	result chatapp.Result
}

type fileReadMsg struct {
	name string
	data []byte
	err  error
}

type Model struct {
	app     *chatapp.App
	timeout time.Duration
	log     zerolog.Logger

	input    textinput.Model
	viewport viewport.Model
	spin     spinner.Model
	styles   Styles

	width    int
	height   int
	selected int
	notices  []chatapp.Alert
	quitting bool
}

// New builds the root model. timeout bounds every server call.
func New(app *chatapp.App, timeout time.Duration, log zerolog.Logger) *Model {
	in := textinput.New()
	in.Placeholder = "Ask Jan anything, or type /help"
	in.Prompt = "> "
	in.CharLimit = 0
	in.Width = 60
	in.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := &Model{
		app:      app,
		timeout:  timeout,
		log:      log.With().Str("component", "tui").Logger(),
		input:    in,
		viewport: viewport.New(80, 20),
		spin:     s,
		styles:   NewStyles(app.Theme().Theme()),
	}
	app.Theme().Subscribe(func(theme usersettings.Theme) {
		m.styles = NewStyles(theme)
	})
	return m
}

// Run starts the full-screen program and blocks until the user quits.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	job := m.app.Mount(context.Background())
	m.refreshTranscript()
	return tea.Batch(textinput.Blink, m.spin.Tick, m.run(job))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case jobDoneMsg:
		m.app.Apply(msg.result)
		m.clampSelection()
		m.refreshTranscript()

	case fileReadMsg:
		if msg.err != nil {
			m.app.UploadFailed(msg.name, msg.err)
		} else {
			cmds = append(cmds, m.run(m.app.Upload(msg.name, msg.data)))
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			cmds = append(cmds, cmd)
			break
		}
		if m.app.Navigator().ActivePanel() == navigator.PanelChat {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.collectAlerts()
	if m.quitting {
		m.app.Unmount()
		return m, tea.Quit
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	nav := m.app.Navigator()

	switch msg.String() {
	case "ctrl+c", "ctrl+q":
		m.quitting = true
		return nil, true
	case "tab":
		nav.Next()
		return m.syncFocus(), true
	case "shift+tab":
		nav.Prev()
		return m.syncFocus(), true
	case "f1", "alt+1":
		nav.SwitchTo(int(navigator.PanelLeft))
		return m.syncFocus(), true
	case "f2", "alt+2":
		nav.SwitchTo(int(navigator.PanelChat))
		return m.syncFocus(), true
	case "f3", "alt+3":
		nav.SwitchTo(int(navigator.PanelRight))
		return m.syncFocus(), true
	case "ctrl+n":
		return m.newChat(), true
	case "ctrl+t":
		_ = m.app.SetTheme(context.Background(), "")
		m.refreshTranscript()
		return nil, true
	}

	switch nav.ActivePanel() {
	case navigator.PanelLeft:
		return m.handleHistoryKey(msg)
	case navigator.PanelChat:
		return m.handleChatKey(msg)
	}
	return nil, false
}

func (m *Model) handleHistoryKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	chats := m.app.History()

	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(chats)-1 {
			m.selected++
		}
	case "enter":
		if m.selected < len(chats) && m.app.OpenChat(chats[m.selected].ID) {
			m.refreshTranscript()
			return m.syncFocus(), true
		}
	case "d", "delete":
		if m.selected < len(chats) {
			return m.run(m.app.DeleteChat(chats[m.selected].ID)), true
		}
	case "a":
		return m.run(m.app.ArchiveAll()), true
	case "D":
		return m.run(m.app.DeleteAll()), true
	case "r":
		return m.run(m.app.RefreshHistory()), true
	default:
		return nil, false
	}
	return nil, true
}

func (m *Model) handleChatKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "enter":
		text := m.input.Value()
		m.input.SetValue("")
		if cmd, ok := parseCommand(text); ok {
			return m.execute(cmd), true
		}
		job := m.app.Send(context.Background(), text)
		m.refreshTranscript()
		return m.run(job), true
	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd, true
	}
	return nil, false
}

func (m *Model) execute(cmd command) tea.Cmd {
	ctx := context.Background()
	alerts := m.app.Alerts()

	switch cmd.name {
	case "new":
		return m.newChat()
	case "mood":
		_ = m.app.SetMood(ctx, cmd.arg)
	case "instructions":
		_ = m.app.SetInstructions(ctx, cmd.arg)
	case "theme":
		_ = m.app.SetTheme(ctx, cmd.arg)
		m.refreshTranscript()
	case "upload":
		if cmd.arg == "" {
			alerts.Alert(history.LevelError, "Usage: /upload <path>")
			return nil
		}
		return readFile(cmd.arg)
	case "contact":
		email, text, ok := splitContact(cmd.arg)
		if !ok {
			alerts.Alert(history.LevelError, "Usage: /contact <email> <message>")
			return nil
		}
		return m.run(m.app.Contact(m.app.UserKey(), email, text))
	case "history":
		m.app.Navigator().SwitchTo(int(navigator.PanelLeft))
		return m.syncFocus()
	case "settings":
		m.app.Navigator().SwitchTo(int(navigator.PanelRight))
		return m.syncFocus()
	case "help":
		alerts.Alert(history.LevelInfo, helpText)
	case "quit", "exit":
		m.quitting = true
	default:
		alerts.Alert(history.LevelError, "Unknown command /"+cmd.name+". Type /help.")
	}
	return nil
}

func (m *Model) newChat() tea.Cmd {
	job := m.app.NewChat()
	m.refreshTranscript()
	return tea.Batch(m.syncFocus(), m.run(job))
}

// run wraps job in a command so it executes away from the update loop.
func (m *Model) run(job chatapp.Job) tea.Cmd {
	if job == nil {
		return nil
	}
	timeout := m.timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return jobDoneMsg{result: job(ctx)}
	}
}

func readFile(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		return fileReadMsg{name: filepath.Base(path), data: data, err: err}
	}
}

func (m *Model) syncFocus() tea.Cmd {
	if m.app.Navigator().ActivePanel() == navigator.PanelChat {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.input.Width = max(width-4, 10)
	m.viewport.Width = max(width-2, 10)
	m.viewport.Height = max(height-headerHeight-inputHeight-footerHeight, 3)
	m.refreshTranscript()
}

func (m *Model) refreshTranscript() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m *Model) clampSelection() {
	n := len(m.app.History())
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *Model) collectAlerts() {
	for _, a := range m.app.Alerts().Drain() {
		if a.Level == history.LevelError {
			m.log.Debug().Str("alert", a.Text).Msg("user alert")
		}
		m.notices = append(m.notices, a)
	}
	if len(m.notices) > maxNotices {
		m.notices = m.notices[len(m.notices)-maxNotices:]
	}
}

// Notices returns the alerts currently shown in the footer.
func (m *Model) Notices() []chatapp.Alert {
	return append([]chatapp.Alert(nil), m.notices...)
}
