package models

import "time"

// Identity is the authenticated admin carried by a session.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginRequest is the credentials payload of the login form and API.
type LoginRequest struct {
	Email       string `json:"email" form:"email"`
	Password    string `json:"password" form:"password"`
	CallbackURL string `json:"callbackUrl" form:"callbackUrl"`
}

// SessionResponse describes the current session.
type SessionResponse struct {
	User    Identity  `json:"user"`
	Expires time.Time `json:"expires"`
}
