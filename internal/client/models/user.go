package models

import (
	"strings"
	"unicode"
)

// UserProfile is the client-side snapshot of the authenticated user as
// returned by the backend on login/signup and by GET /profile.
type UserProfile struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	IsAdmin       bool   `json:"is_admin"`
	TwoFAEnabled  bool   `json:"two_fa_enabled"`
}

// Initials returns up to two uppercase initials derived from the user's
// name, e.g. "Ann Lee" -> "AL". An empty name yields an empty string.
func (u UserProfile) Initials() string {
	var initials []rune
	for _, word := range strings.Fields(u.Name) {
		initials = append(initials, unicode.ToUpper([]rune(word)[0]))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}
