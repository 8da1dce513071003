package request

import "strings"

// LoginForm represents the staff login form
type LoginForm struct {
	Username string `form:"username" validate:"required,max=100"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}

// Normalize trims the username
func (f *LoginForm) Normalize() {
	f.Username = strings.TrimSpace(f.Username)
}

// SafeNext returns the post-login redirect target when it is a local back-office path
func (f *LoginForm) SafeNext(fallback string) string {
	if strings.HasPrefix(f.Next, "/adm/") && !strings.HasPrefix(f.Next, "//") {
		return f.Next
	}
	return fallback
}
