package content

import "golang.org/x/text/language"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// State is the per-page UI state: active language and theme. It lives only for
// the duration of one render and is never persisted.
type State struct {
	Lang language.Tag
	Dark bool
}

// NewState builds a state from raw form values, normalizing unknown input.
func NewState(lang, theme string) State {
	return State{Lang: Normalize(lang), Dark: theme == ThemeDark}
}

func (s State) ToggleLanguage() State {
	s.Lang = Toggle(s.Lang)
	return s
}

func (s State) ToggleTheme() State {
	s.Dark = !s.Dark
	return s
}

// RootClass is the class applied to the root element.
func (s State) RootClass() string {
	if s.Dark {
		return ThemeDark
	}
	return ""
}

// Theme returns the form value for the current theme.
func (s State) Theme() string {
	if s.Dark {
		return ThemeDark
	}
	return ThemeLight
}
