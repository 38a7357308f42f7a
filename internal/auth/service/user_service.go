package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/shivamvijaywargi/auth-service/internal/auth/domain"
	"github.com/shivamvijaywargi/auth-service/internal/auth/dto"
	autherror "github.com/shivamvijaywargi/auth-service/internal/errors"
)

const (
	bcryptCost        = 10
	minPasswordLength = 8
)

type UserService struct {
	repo domain.UserRepository
}

func NewUserService(repo domain.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register validates the input, hashes the password, and persists a new
// account. Hashing happens here, explicitly, before the store ever sees
// the record.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, autherror.ErrEmailAndPasswordRequired
	}

	if len(input.Password) < minPasswordLength {
		return nil, autherror.ErrPasswordTooShort
	}

	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyRegistered
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique index on email is the real guard; the lookup above only
	// catches the common case early.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login checks the credentials against the stored hash. An unknown email
// and a wrong password return the same error so callers cannot probe
// which addresses are registered.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, autherror.ErrEmailAndPasswordRequired
	}

	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	return user, nil
}

// GetByID looks up the account a verified token points at. The account
// may have been deleted after the token was issued.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	return user, nil
}
