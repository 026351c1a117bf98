package handler

import "github.com/pawhaven/adoption-gateway/internal/core/domain"

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	FullName        string `json:"fullName"        validate:"required"`
	Email           string `json:"email"           validate:"required,email"`
	Phone           string `json:"phone"           validate:"required"`
	Password        string `json:"password"        validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// sessionResponse is returned by login and registration. Token is the signed
// session token for clients that prefer the Authorization header over the
// cookie; both carry the same session.
type sessionResponse struct {
	Token      string      `json:"token"`
	User       domain.User `json:"user"`
	RedirectTo string      `json:"redirect_to"`
}

type profileResponse struct {
	User domain.User `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}
