package domain

import "errors"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrSessionNotFound = errors.New("session not found")
var ErrSessionExpired = errors.New("session expired")
var ErrForbidden = errors.New("access forbidden")

// User is the authenticated identity returned by the upstream API and stored
// alongside the bearer token in the session.
type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the user may reach the admin console.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Session binds an upstream bearer token to the identity it was issued for.
// Token and user are persisted together and destroyed together; a session
// holding only one of them is treated as absent.
type Session struct {
	ID    string `json:"id"`
	Token string `json:"-"`
	User  User   `json:"user"`
}
