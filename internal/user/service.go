package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Signup registers a customer (or the requested user type) and returns the new id.
func (s *Service) Signup(ctx context.Context, in SignupRequest) (int64, error) {
	email := strings.TrimSpace(in.Email)
	if in.Name == "" || email == "" || in.Phone == "" || in.Password == "" || in.Address == "" {
		return 0, ErrMissingFields
	}
	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return 0, ErrAlreadyExist
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return 0, fmt.Errorf("hash error: %w", err)
	}
	u := &User{
		Name:         in.Name,
		Email:        email,
		Phone:        in.Phone,
		PasswordHash: hash,
		Address:      in.Address,
		UserType:     userTypeOrDefault(in.UserType),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return 0, err
	}
	return u.ID, nil
}

// Login checks the password against the stored hash for the email and user type.
func (s *Service) Login(ctx context.Context, in LoginRequest) (*User, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}
	u, err := s.repo.GetByEmail(ctx, email, userTypeOrDefault(in.UserType))
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("auth error: %w", err)
	}
	if !CheckPassword(u.PasswordHash, in.Password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func userTypeOrDefault(t string) string {
	if t == "" {
		return TypeCustomer
	}
	return t
}
