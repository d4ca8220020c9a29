package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitbook/internal/auth"
	"fitbook/internal/metrics"
)

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*User, error)
	Authenticate(ctx context.Context, email, password string) (*User, error)
	Login(ctx context.Context, req LoginRequest) (string, error)
	GetByID(ctx context.Context, userID int) (*User, error)
	ResolvePrincipal(ctx context.Context, email string) (*auth.Principal, error)
}

type service struct {
	repo      Repository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewService(repo Repository, jwtSecret string, tokenTTL time.Duration) Service {
	return &service{
		repo:      repo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (*User, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		metrics.RecordSignup("duplicate")
		return nil, ErrEmailExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// The UNIQUE constraint catches a concurrent signup that passed the check above.
	user, err := s.repo.Create(ctx, req.Name, req.Email, hashedPassword)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			metrics.RecordSignup("duplicate")
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	metrics.RecordSignup("created")
	return user, nil
}

// Authenticate never tells the caller whether the email or the password was wrong.
func (s *service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.HashedPassword, password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (string, error) {
	user, err := s.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			metrics.RecordLogin("invalid_credentials")
		}
		return "", err
	}

	token, err := auth.GenerateAccessToken(user.Email, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	metrics.RecordLogin("success")
	return token, nil
}

func (s *service) GetByID(ctx context.Context, userID int) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *service) ResolvePrincipal(ctx context.Context, email string) (*auth.Principal, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, auth.ErrUnknownSubject
		}
		return nil, err
	}
	return &auth.Principal{UserID: user.ID, Email: user.Email}, nil
}
