package usersettings

import (
	"context"
	"strings"

	"jan-chat/internal/utils/platformerrors"
)

// Theme is the colour scheme of the whole application.
type Theme string

const (
	ThemeDark   Theme = "dark"
	ThemeLight  Theme = "light"
	ThemeSystem Theme = "system"
)

// ParseTheme accepts dark, light or system in any case.
func ParseTheme(value string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case ThemeDark:
		return ThemeDark, true
	case ThemeLight:
		return ThemeLight, true
	case ThemeSystem:
		return ThemeSystem, true
	}
	return "", false
}

// ThemeContext is the app-wide theme holder. It is created at startup and
// handed to every view that draws; it does not depend on the user.
type ThemeContext struct {
	theme     Theme
	listeners []func(Theme)
}

// NewThemeContext starts with initial, or system when initial is not a theme.
func NewThemeContext(initial string) *ThemeContext {
	theme, ok := ParseTheme(initial)
	if !ok {
		theme = ThemeSystem
	}
	return &ThemeContext{theme: theme}
}

func (t *ThemeContext) Theme() Theme {
	return t.theme
}

// SetTheme switches the theme and notifies subscribers.
func (t *ThemeContext) SetTheme(ctx context.Context, value string) error {
	theme, ok := ParseTheme(value)
	if !ok {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"theme must be dark, light or system", nil, "c3f1d1f2-7e0a-4f35-a2b6-8b1f0c9d7e21")
	}
	t.set(theme)
	return nil
}

// Toggle cycles dark, light, system.
func (t *ThemeContext) Toggle() Theme {
	switch t.theme {
	case ThemeDark:
		t.set(ThemeLight)
	case ThemeLight:
		t.set(ThemeSystem)
	default:
		t.set(ThemeDark)
	}
	return t.theme
}

// Subscribe registers fn to run after every theme change.
func (t *ThemeContext) Subscribe(fn func(Theme)) {
	t.listeners = append(t.listeners, fn)
}

func (t *ThemeContext) set(theme Theme) {
	t.theme = theme
	for _, fn := range t.listeners {
		fn(theme)
	}
}
