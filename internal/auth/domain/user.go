package domain

import "time"

// User is an account record. PasswordHash is the bcrypt hash of the
// password; the plaintext is never persisted.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
