package dto

import (
	"time"
)

// UserOutput is the client-facing account representation. It deliberately
// has no password field, so the hash can never leak into a response body.
type UserOutput struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse is returned by register and login alongside the Set-Cookie.
type AuthResponse struct {
	Success bool       `json:"success"`
	User    UserOutput `json:"user"`
	Token   string     `json:"token"`
}

// MeResponse is returned by the who-am-I endpoint.
type MeResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	User    UserOutput `json:"user"`
}

// MessageResponse covers logout and every error body.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
