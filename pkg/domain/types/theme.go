package types

import "github.com/m-mizutani/goerr/v2"

// Theme is the dashboard color scheme. It lives in a cookie only and
// never touches loaded data or filter state.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// IsValid checks if the theme is valid
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark:
		return true
	default:
		return false
	}
}

// Normalize returns the theme, treating empty as ThemeLight
func (t Theme) Normalize() Theme {
	if t == "" {
		return ThemeLight
	}
	return t
}

// String returns the string representation of the theme
func (t Theme) String() string {
	return string(t)
}

// ParseTheme parses a string into a Theme
func ParseTheme(s string) (Theme, error) {
	t := Theme(s)
	if !t.IsValid() {
		return "", goerr.New("invalid theme", goerr.V("theme", s))
	}
	return t, nil
}
