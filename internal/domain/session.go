package domain

// User identifies the single operator of the dashboard.
type User struct {
	Username string `json:"username"`
}

// Session is the persisted authentication state. An absent session or a false
// IsAuthenticated flag both mean unauthenticated.
type Session struct {
	IsAuthenticated bool  `json:"isAuthenticated"`
	User            *User `json:"user,omitempty"`
}

// Theme is the persisted display preference, independent of the session.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is one of the two supported themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}
