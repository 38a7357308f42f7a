package errors

import (
	"errors"
)

var (
	ErrEmailAndPasswordRequired = errors.New("email and password are required")
	ErrPasswordTooShort         = errors.New("password must be at least 8 characters long")
	ErrEmailAlreadyRegistered   = errors.New("email already registered")
	ErrInvalidCredentials       = errors.New("email or password is incorrect or user does not exist")
	ErrInvalidToken             = errors.New("invalid or expired token")
	ErrUserNotFound             = errors.New("user not found")
)
