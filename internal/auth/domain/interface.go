package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/shivamvijaywargi/auth-service/internal/auth/domain UserRepository

// UserRepository is the persistence boundary for accounts.
// Lookups return (nil, nil) when no row matches.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
}
