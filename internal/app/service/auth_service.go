package service

import (
	"context"
	"fmt"
	"regexp"

	"inkpost/internal/common"
	"inkpost/internal/common/security"
	"inkpost/internal/domain/repository"

	"github.com/gosimple/slug"
)

var (
	ErrMissingCredentials = fmt.Errorf("username and password are required: %w", common.ErrValidation)
	ErrBadUsername        = fmt.Errorf("username is not a valid slug: %w", common.ErrValidation)
	ErrWeakPassword       = fmt.Errorf("password must contain letters and numbers: %w", common.ErrValidation)
	ErrUsernameTaken      = fmt.Errorf("username already taken: %w", common.ErrConflict)
)

var (
	hasLetter = regexp.MustCompile(`[A-Za-z]`)
	hasDigit  = regexp.MustCompile(`\d`)
)

type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register validates and stores a new user. The username doubles as a
// directory name and URL path segment, so it must already be in slug form.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrMissingCredentials
	}
	if !slug.IsSlug(username) {
		return ErrBadUsername
	}
	if !hasLetter.MatchString(password) || !hasDigit.MatchString(password) {
		return ErrWeakPassword
	}

	users, err := s.userRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	if _, taken := users[username]; taken {
		return ErrUsernameTaken
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.Append(ctx, username, passwordHash); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// Login checks credentials and returns a signed session token. Unknown user
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", common.ErrUnauthorized
	}

	users, err := s.userRepo.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load users: %w", err)
	}

	passwordHash, ok := users[username]
	if !ok || !security.CheckPasswordHash(password, passwordHash) {
		return "", common.ErrUnauthorized
	}

	token, err := security.GenerateToken(username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
