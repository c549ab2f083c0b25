package tui

import (
	"github.com/charmbracelet/lipgloss"

	"jan-chat/internal/domain/usersettings"
)

// palette is one colour set; the system theme uses adaptive colours that
// follow the terminal background.
type palette struct {
	primary   lipgloss.TerminalColor
	secondary lipgloss.TerminalColor
	text      lipgloss.TerminalColor
	muted     lipgloss.TerminalColor
	border    lipgloss.TerminalColor
	user      lipgloss.TerminalColor
	assistant lipgloss.TerminalColor
	errorFg   lipgloss.TerminalColor
	success   lipgloss.TerminalColor
}

var (
	darkPalette = palette{
		primary:   lipgloss.Color("#7C3AED"),
		secondary: lipgloss.Color("#06B6D4"),
		text:      lipgloss.Color("#F9FAFB"),
		muted:     lipgloss.Color("#9CA3AF"),
		border:    lipgloss.Color("#374151"),
		user:      lipgloss.Color("#A78BFA"),
		assistant: lipgloss.Color("#22D3EE"),
		errorFg:   lipgloss.Color("#EF4444"),
		success:   lipgloss.Color("#10B981"),
	}
	lightPalette = palette{
		primary:   lipgloss.Color("#6D28D9"),
		secondary: lipgloss.Color("#0E7490"),
		text:      lipgloss.Color("#111827"),
		muted:     lipgloss.Color("#6B7280"),
		border:    lipgloss.Color("#D1D5DB"),
		user:      lipgloss.Color("#7C3AED"),
		assistant: lipgloss.Color("#0891B2"),
		errorFg:   lipgloss.Color("#B91C1C"),
		success:   lipgloss.Color("#047857"),
	}
)

func adaptive(light, dark lipgloss.TerminalColor) lipgloss.TerminalColor {
	return lipgloss.AdaptiveColor{Light: colorString(light), Dark: colorString(dark)}
}

func colorString(c lipgloss.TerminalColor) string {
	if col, ok := c.(lipgloss.Color); ok {
		return string(col)
	}
	return ""
}

func paletteFor(theme usersettings.Theme) palette {
	switch theme {
	case usersettings.ThemeDark:
		return darkPalette
	case usersettings.ThemeLight:
		return lightPalette
	}
	return palette{
		primary:   adaptive(lightPalette.primary, darkPalette.primary),
		secondary: adaptive(lightPalette.secondary, darkPalette.secondary),
		text:      adaptive(lightPalette.text, darkPalette.text),
		muted:     adaptive(lightPalette.muted, darkPalette.muted),
		border:    adaptive(lightPalette.border, darkPalette.border),
		user:      adaptive(lightPalette.user, darkPalette.user),
		assistant: adaptive(lightPalette.assistant, darkPalette.assistant),
		errorFg:   adaptive(lightPalette.errorFg, darkPalette.errorFg),
		success:   adaptive(lightPalette.success, darkPalette.success),
	}
}

// Styles holds every lipgloss style the views draw with.
type Styles struct {
	Theme usersettings.Theme

	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Title     lipgloss.Style
	Panel     lipgloss.Style

	UserLabel      lipgloss.Style
	AssistantLabel lipgloss.Style
	Text           lipgloss.Style
	Muted          lipgloss.Style
	Reference      lipgloss.Style
	Attachment     lipgloss.Style
	Download       lipgloss.Style

	Selected lipgloss.Style
	Info     lipgloss.Style
	Error    lipgloss.Style
	Key      lipgloss.Style
}

// NewStyles builds the styles for theme.
func NewStyles(theme usersettings.Theme) Styles {
	p := paletteFor(theme)
	return Styles{
		Theme: theme,

		Tab:       lipgloss.NewStyle().Foreground(p.muted).Padding(0, 2),
		ActiveTab: lipgloss.NewStyle().Bold(true).Foreground(p.text).Background(p.primary).Padding(0, 2),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(p.secondary),
		Panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 1),

		UserLabel:      lipgloss.NewStyle().Bold(true).Foreground(p.user),
		AssistantLabel: lipgloss.NewStyle().Bold(true).Foreground(p.assistant),
		Text:           lipgloss.NewStyle().Foreground(p.text),
		Muted:          lipgloss.NewStyle().Foreground(p.muted),
		Reference:      lipgloss.NewStyle().Foreground(p.secondary),
		Attachment:     lipgloss.NewStyle().Foreground(p.primary),
		Download:       lipgloss.NewStyle().Bold(true).Underline(true).Foreground(p.success),

		Selected: lipgloss.NewStyle().Bold(true).Foreground(p.text).Background(p.primary),
		Info:     lipgloss.NewStyle().Foreground(p.success),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(p.errorFg),
		Key:      lipgloss.NewStyle().Bold(true).Foreground(p.secondary),
	}
}
